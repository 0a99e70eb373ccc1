package gateway

import "github.com/shopspring/decimal"

// StripePaymentProcessor charges amounts expressed in major currency units
// and reports the outcome as a boolean.
type StripePaymentProcessor struct {
	minAmount decimal.Decimal
}

func NewStripePaymentProcessor(minAmount decimal.Decimal) *StripePaymentProcessor {
	return &StripePaymentProcessor{minAmount: minAmount}
}

// ProcessPayment returns false when price is below the account minimum.
func (p *StripePaymentProcessor) ProcessPayment(price decimal.Decimal) bool {
	return !price.LessThan(p.minAmount)
}
