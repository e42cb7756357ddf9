// Package roi содержит клиентскую арифметику экрана инвестиций: прогноз
// доходности по ставке актива, проверку права на claim и проверку суммы вывода.
// Сервер остаётся владельцем реального начисления, здесь только прогноз и гейты UI.
package roi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrNotActive           = errors.New("investment is not active")
	ErrTooEarly            = errors.New("too early to claim")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Horizon горизонт прогноза.
type Horizon string

const (
	Monthly    Horizon = "monthly"
	Quarterly  Horizon = "quarterly"
	HalfYearly Horizon = "halfYearly"
	Yearly     Horizon = "yearly"
)

// Horizons порядок горизонтов в прогнозе.
var Horizons = []Horizon{Monthly, Quarterly, HalfYearly, Yearly}

var multipliers = map[models.Period][]int64{
	models.PeriodDaily:   {30, 90, 180, 365},
	models.PeriodMonthly: {1, 3, 6, 12},
}

// Multipliers возвращает множители ставки для периода по порядку Horizons.
// Неизвестный период считается месячным.
func Multipliers(p models.Period) []int64 {
	if m, ok := multipliers[p]; ok {
		return m
	}
	return multipliers[models.PeriodMonthly]
}

// Estimate прогноз на один горизонт.
type Estimate struct {
	Horizon Horizon
	// RatePercent ставка за горизонт в процентах: rate × множитель
	RatePercent decimal.Decimal
	// Return доход: amount × rate / 100 × множитель
	Return decimal.Decimal
}

// Projection прогноз по всем горизонтам.
type Projection struct {
	Amount    decimal.Decimal
	Asset     models.Asset
	Period    models.Period
	Estimates []Estimate
}

// Project считает прогноз для суммы, введённой пользователем строкой.
func Project(amount string, asset models.Asset, cfg models.AssetConfig) (Projection, error) {
	const op = "roi.Project"

	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || amt.IsNegative() {
		return Projection{}, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	rate := decimal.NewFromFloat(cfg.Rate)
	hundred := decimal.NewFromInt(100)

	p := Projection{Amount: amt, Asset: asset, Period: cfg.Period}
	for i, m := range Multipliers(cfg.Period) {
		mult := decimal.NewFromInt(m)
		p.Estimates = append(p.Estimates, Estimate{
			Horizon:     Horizons[i],
			RatePercent: rate.Mul(mult),
			Return:      amt.Mul(rate).Div(hundred).Mul(mult),
		})
	}
	return p, nil
}

// Estimate возвращает прогноз для горизонта.
func (p Projection) Estimate(h Horizon) Estimate {
	for _, e := range p.Estimates {
		if e.Horizon == h {
			return e
		}
	}
	return Estimate{Horizon: h}
}

// Return доход за первый (месячный) горизонт.
func (p Projection) Return() decimal.Decimal {
	return p.Estimate(Monthly).Return
}

// MaturityValue сумма вместе с доходом первого горизонта.
func (p Projection) MaturityValue() decimal.Decimal {
	return p.Amount.Add(p.Return())
}

// Format округляет до двух знаков, как на экране.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CanClaim проверяет, что инвестиция активна и с последнего claim прошёл период актива.
// Точкой отсчёта служит LastClaimedAt, иначе CreatedAt.
func CanClaim(inv models.Investment, cfg models.AssetConfig, now time.Time) error {
	if inv.Status != models.InvestmentActive {
		return ErrNotActive
	}
	ref := inv.CreatedAt
	if inv.LastClaimedAt != nil {
		ref = *inv.LastClaimedAt
	}
	if ref.IsZero() {
		return nil
	}
	if now.Sub(ref) <= cfg.Period.Duration() {
		return ErrTooEarly
	}
	return nil
}

// NextClaimAt момент, после которого claim станет доступен.
func NextClaimAt(inv models.Investment, cfg models.AssetConfig) time.Time {
	ref := inv.CreatedAt
	if inv.LastClaimedAt != nil {
		ref = *inv.LastClaimedAt
	}
	return ref.Add(cfg.Period.Duration())
}

// CheckWithdrawal проверяет сумму вывода: обычный вывод ограничен балансом,
// SOS-вывод ограничен вложенной суммой.
func CheckWithdrawal(u models.User, amount float64, isSos bool) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	available := u.Balance
	if isSos {
		available = u.TotalInvested
	}
	if decimal.NewFromFloat(amount).GreaterThan(decimal.NewFromFloat(available)) {
		return ErrInsufficientBalance
	}
	return nil
}

// FormatFloat округляет число до двух знаков.
func FormatFloat(f float64) string {
	return Format(decimal.NewFromFloat(f))
}
