package load

import (
	"fmt"

	"tms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Rates holds the agreed prices of a load and the figures derived from them.
// Every amount is nullable: a load may be dispatched before it is priced.
type Rates struct {
	customerRate decimal.NullDecimal
	carrierRate  decimal.NullDecimal
	totalRevenue decimal.NullDecimal
	totalCost    decimal.NullDecimal
	profitMargin decimal.NullDecimal
}

// NewRates derives revenue, cost and profit margin from the two rates.
func NewRates(customerRate, carrierRate decimal.NullDecimal) (Rates, error) {
	if customerRate.Valid && customerRate.Decimal.IsNegative() {
		return Rates{}, errs.NewValueIsInvalidErrorWithCause(
			"customer_rate", fmt.Errorf("%s is negative", customerRate.Decimal))
	}
	if carrierRate.Valid && carrierRate.Decimal.IsNegative() {
		return Rates{}, errs.NewValueIsInvalidErrorWithCause(
			"carrier_rate", fmt.Errorf("%s is negative", carrierRate.Decimal))
	}

	r := Rates{
		customerRate: customerRate,
		carrierRate:  carrierRate,
		totalRevenue: customerRate,
		totalCost:    carrierRate,
	}
	if customerRate.Valid && carrierRate.Valid {
		r.profitMargin = decimal.NewNullDecimal(customerRate.Decimal.Sub(carrierRate.Decimal))
	}
	return r, nil
}

// RestoreRates rebuilds rates exactly as persisted, without deriving anything.
func RestoreRates(customerRate, carrierRate, totalRevenue, totalCost, profitMargin decimal.NullDecimal) Rates {
	return Rates{
		customerRate: customerRate,
		carrierRate:  carrierRate,
		totalRevenue: totalRevenue,
		totalCost:    totalCost,
		profitMargin: profitMargin,
	}
}

func (r Rates) CustomerRate() decimal.NullDecimal { return r.customerRate }
func (r Rates) CarrierRate() decimal.NullDecimal { return r.carrierRate }
func (r Rates) TotalRevenue() decimal.NullDecimal { return r.totalRevenue }
func (r Rates) TotalCost() decimal.NullDecimal { return r.totalCost }
func (r Rates) ProfitMargin() decimal.NullDecimal { return r.profitMargin }
