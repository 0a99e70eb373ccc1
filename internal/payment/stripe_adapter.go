package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

const StripeName = "stripe"

type stripeGateway interface {
	ProcessPayment(price decimal.Decimal) bool
}

// StripeAdapter passes the major-unit amount through and turns a false
// result into a PaymentFailedError.
type StripeAdapter struct {
	gateway   stripeGateway
	minAmount decimal.Decimal
}

// NewStripeAdapter wires the gateway. minAmount is only used to word the
// failure message.
func NewStripeAdapter(gateway stripeGateway, minAmount decimal.Decimal) *StripeAdapter {
	return &StripeAdapter{gateway: gateway, minAmount: minAmount}
}

func (a *StripeAdapter) Name() string {
	return StripeName
}

func (a *StripeAdapter) Process(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !a.gateway.ProcessPayment(amount) {
		return &PaymentFailedError{
			Processor: StripeName,
			Reason:    "amount is too low (minimum " + a.minAmount.String() + " EUR)",
		}
	}
	return nil
}
