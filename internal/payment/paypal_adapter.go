package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

const PaypalName = "paypal"

type paypalGateway interface {
	Pay(price int64) error
}

// PaypalAdapter converts the amount to cents for a gateway that signals
// failure by faulting and returns nothing on success.
type PaypalAdapter struct {
	gateway paypalGateway
}

func NewPaypalAdapter(gateway paypalGateway) *PaypalAdapter {
	return &PaypalAdapter{gateway: gateway}
}

func (a *PaypalAdapter) Name() string {
	return PaypalName
}

func (a *PaypalAdapter) Process(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cents := ToCents(amount)
	if err := a.gateway.Pay(cents); err != nil {
		return &PaymentFailedError{Processor: PaypalName, Reason: err.Error(), Err: err}
	}
	return nil
}

// ToCents converts a major-unit amount to minor units, rounding half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
