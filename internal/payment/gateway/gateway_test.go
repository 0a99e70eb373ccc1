package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaypalPay(t *testing.T) {
	p := NewPaypalPaymentProcessor(100000)

	assert.NoError(t, p.Pay(11900))
	assert.NoError(t, p.Pay(100000))
	assert.ErrorIs(t, p.Pay(100001), ErrTooHighPrice)
	assert.Error(t, p.Pay(0))
}

func TestStripeProcessPayment(t *testing.T) {
	p := NewStripePaymentProcessor(decimal.NewFromInt(100))

	assert.True(t, p.ProcessPayment(decimal.RequireFromString("119.00")))
	assert.True(t, p.ProcessPayment(decimal.RequireFromString("100.00")))
	assert.False(t, p.ProcessPayment(decimal.RequireFromString("99.99")))
}
