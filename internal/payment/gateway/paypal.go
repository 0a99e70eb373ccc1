// Package gateway holds the client libraries of the external payment
// providers. Each keeps the calling convention of its vendor; the payment
// package adapts them to a single contract.
package gateway

import (
	"errors"
	"fmt"
)

// ErrTooHighPrice is raised by PayPal for amounts above its per-payment limit.
var ErrTooHighPrice = errors.New("too high price")

// PaypalPaymentProcessor charges amounts expressed in minor currency units.
type PaypalPaymentProcessor struct {
	maxCents int64
}

func NewPaypalPaymentProcessor(maxCents int64) *PaypalPaymentProcessor {
	return &PaypalPaymentProcessor{maxCents: maxCents}
}

// Pay charges price cents. It returns nothing on success and faults otherwise.
func (p *PaypalPaymentProcessor) Pay(price int64) error {
	if price <= 0 {
		return fmt.Errorf("invalid price %d", price)
	}
	if price > p.maxCents {
		return ErrTooHighPrice
	}
	return nil
}
