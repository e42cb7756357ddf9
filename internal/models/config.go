package models

import (
	"maps"
	"time"
)

// Asset символ криптоактива, например USDT.
type Asset string

// Network сеть, в которой принимается перевод, например TRC20.
type Network string

// Period период начисления ставки.
type Period string

const (
	PeriodDaily   Period = "Daily"
	PeriodMonthly Period = "Monthly"
)

// Duration возвращает длительность одного периода выплат.
func (p Period) Duration() time.Duration {
	if p == PeriodDaily {
		return 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

// AssetConfig настройки одного актива.
// Networks хранит адреса кошельков для конкретных сетей.
type AssetConfig struct {
	Rate          float64            `json:"rate"`
	Period        Period             `json:"period"`
	WalletAddress string             `json:"walletAddress"`
	Networks      map[Network]string `json:"networks,omitempty"`
}

// WalletFor возвращает адрес для сети, либо адрес по умолчанию.
func (c AssetConfig) WalletFor(network Network) string {
	if addr, ok := c.Networks[network]; ok && addr != "" {
		return addr
	}
	return c.WalletAddress
}

// Clone возвращает глубокую копию.
func (c AssetConfig) Clone() AssetConfig {
	c.Networks = maps.Clone(c.Networks)
	return c
}

// AssetConfigPatch частичное обновление настроек актива.
type AssetConfigPatch struct {
	Rate          *float64           `json:"rate,omitempty"`
	Period        *Period            `json:"period,omitempty"`
	WalletAddress *string            `json:"walletAddress,omitempty"`
	Networks      map[Network]string `json:"networks,omitempty"`
}

// Merge применяет патч к копии настроек.
func (c AssetConfig) Merge(p AssetConfigPatch) AssetConfig {
	c = c.Clone()
	if p.Rate != nil {
		c.Rate = *p.Rate
	}
	if p.Period != nil {
		c.Period = *p.Period
	}
	if p.WalletAddress != nil {
		c.WalletAddress = *p.WalletAddress
	}
	if len(p.Networks) > 0 {
		if c.Networks == nil {
			c.Networks = make(map[Network]string, len(p.Networks))
		}
		for n, addr := range p.Networks {
			c.Networks[n] = addr
		}
	}
	return c
}

// Revert откатывает поля патча p к значениям prev.
// Поле, изменённое после применения p, остаётся как есть.
func (c AssetConfig) Revert(p AssetConfigPatch, prev AssetConfig) AssetConfig {
	c = c.Clone()
	if p.Rate != nil && c.Rate == *p.Rate {
		c.Rate = prev.Rate
	}
	if p.Period != nil && c.Period == *p.Period {
		c.Period = prev.Period
	}
	if p.WalletAddress != nil && c.WalletAddress == *p.WalletAddress {
		c.WalletAddress = prev.WalletAddress
	}
	for n, addr := range p.Networks {
		if c.Networks[n] != addr {
			continue
		}
		if old, ok := prev.Networks[n]; ok {
			c.Networks[n] = old
		} else {
			delete(c.Networks, n)
		}
	}
	return c
}

// IsZero сообщает, что настройки пусты.
func (c AssetConfig) IsZero() bool {
	return c.Rate == 0 && c.Period == "" && c.WalletAddress == "" && len(c.Networks) == 0
}

// RoiRates отображение символа актива в его настройки.
type RoiRates map[Asset]AssetConfig

// Clone возвращает глубокую копию.
func (r RoiRates) Clone() RoiRates {
	if r == nil {
		return nil
	}
	out := make(RoiRates, len(r))
	for a, c := range r {
		out[a] = c.Clone()
	}
	return out
}

// MergeOver накладывает r поверх defaults. Активы, которых нет в r, берутся из defaults.
func (r RoiRates) MergeOver(defaults RoiRates) RoiRates {
	out := defaults.Clone()
	if out == nil {
		out = make(RoiRates, len(r))
	}
	for a, c := range r {
		out[a] = c.Clone()
	}
	return out
}

// DefaultRoiRates встроенные ставки, действующие пока бэкенд их не прислал.
func DefaultRoiRates() RoiRates {
	return RoiRates{
		"USDT": {Rate: 5, Period: PeriodMonthly},
		"BTC":  {Rate: 3.1, Period: PeriodMonthly},
		"ETH":  {Rate: 4.2, Period: PeriodMonthly},
		"BNB":  {Rate: 3.8, Period: PeriodMonthly},
		"SOL":  {Rate: 4.5, Period: PeriodMonthly},
		"TRX":  {Rate: 6, Period: PeriodMonthly},
	}
}

// GlobalConfig ответ GET /config.
type GlobalConfig struct {
	RoiRates    RoiRates   `json:"roiRates"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// ConfigUpdate тело PUT /config.
type ConfigUpdate struct {
	RoiRates map[Asset]AssetConfigPatch `json:"roiRates"`
}
