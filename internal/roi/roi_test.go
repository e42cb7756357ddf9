package roi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

func TestProject_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		asset        models.Asset
		cfg          models.AssetConfig
		wantReturn   string
		wantMaturity string
	}{
		{
			name:         "usdt monthly",
			amount:       "100",
			asset:        "USDT",
			cfg:          models.AssetConfig{Rate: 5, Period: models.PeriodMonthly},
			wantReturn:   "5.00",
			wantMaturity: "105.00",
		},
		{
			name:         "btc daily",
			amount:       "100",
			asset:        "BTC",
			cfg:          models.AssetConfig{Rate: 3.1, Period: models.PeriodDaily},
			wantReturn:   "93.00",
			wantMaturity: "193.00",
		},
		{
			name:         "btc monthly",
			amount:       "100",
			asset:        "BTC",
			cfg:          models.AssetConfig{Rate: 3.1, Period: models.PeriodMonthly},
			wantReturn:   "3.10",
			wantMaturity: "103.10",
		},
		{
			name:         "whitespace amount",
			amount:       " 250.5 ",
			asset:        "ETH",
			cfg:          models.AssetConfig{Rate: 4, Period: models.PeriodMonthly},
			wantReturn:   "10.02",
			wantMaturity: "260.52",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Project(tt.amount, tt.asset, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantReturn, Format(p.Return()))
			assert.Equal(t, tt.wantMaturity, Format(p.MaturityValue()))
		})
	}
}

func TestProject_RateMultipliers(t *testing.T) {
	daily, err := Project("100", "USDT", models.AssetConfig{Rate: 2, Period: models.PeriodDaily})
	require.NoError(t, err)
	monthly, err := Project("100", "USDT", models.AssetConfig{Rate: 2, Period: models.PeriodMonthly})
	require.NoError(t, err)

	wantDaily := []string{"60", "180", "360", "730"}
	wantMonthly := []string{"2", "6", "12", "24"}
	for i, h := range Horizons {
		assert.Equal(t, wantDaily[i], daily.Estimate(h).RatePercent.String(), h)
		assert.Equal(t, wantMonthly[i], monthly.Estimate(h).RatePercent.String(), h)
	}
}

func TestProject_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"", "abc", "-5"} {
		_, err := Project(amount, "USDT", models.AssetConfig{Rate: 5, Period: models.PeriodMonthly})
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
	}
}

func TestCanClaim(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	daily := models.AssetConfig{Rate: 1, Period: models.PeriodDaily}
	monthly := models.AssetConfig{Rate: 5, Period: models.PeriodMonthly}
	ago := func(d time.Duration) *time.Time { t := now.Add(-d); return &t }

	tests := []struct {
		name    string
		inv     models.Investment
		cfg     models.AssetConfig
		wantErr error
	}{
		{"pending", models.Investment{Status: models.InvestmentPending}, daily, ErrNotActive},
		{"rejected", models.Investment{Status: models.InvestmentRejected}, daily, ErrNotActive},
		{"daily elapsed", models.Investment{Status: models.InvestmentActive, LastClaimedAt: ago(25 * time.Hour)}, daily, nil},
		{"daily too early", models.Investment{Status: models.InvestmentActive, LastClaimedAt: ago(23 * time.Hour)}, daily, ErrTooEarly},
		{"exactly one period", models.Investment{Status: models.InvestmentActive, LastClaimedAt: ago(24 * time.Hour)}, daily, ErrTooEarly},
		{"monthly from created", models.Investment{Status: models.InvestmentActive, CreatedAt: *ago(31 * 24 * time.Hour)}, monthly, nil},
		{"monthly too early", models.Investment{Status: models.InvestmentActive, CreatedAt: *ago(10 * 24 * time.Hour)}, monthly, ErrTooEarly},
		{"no reference", models.Investment{Status: models.InvestmentActive}, monthly, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanClaim(tt.inv, tt.cfg, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckWithdrawal(t *testing.T) {
	u := models.User{Balance: 50, TotalInvested: 500}

	assert.NoError(t, CheckWithdrawal(u, 50, false))
	assert.ErrorIs(t, CheckWithdrawal(u, 50.01, false), ErrInsufficientBalance)
	assert.NoError(t, CheckWithdrawal(u, 400, true))
	assert.ErrorIs(t, CheckWithdrawal(u, 501, true), ErrInsufficientBalance)
	assert.ErrorIs(t, CheckWithdrawal(u, 0, false), ErrInvalidAmount)
}
