package services

import "github.com/shopspring/decimal"

// AmountPolicy bounds deposit and withdrawal amounts. The bounds are operator
// policy injected from configuration, not a ledger invariant; only amount > 0
// is enforced unconditionally. A zero Min or Max disables that bound.
type AmountPolicy struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Validate checks an amount against the policy.
func (p AmountPolicy) Validate(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !p.Min.IsZero() && amount.LessThan(p.Min) {
		return ErrInvalidAmount
	}
	if !p.Max.IsZero() && amount.GreaterThan(p.Max) {
		return ErrInvalidAmount
	}
	return nil
}
