package service

import (
	"fmt"

	"checkout/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount reduces a pre-tax price.
type Discount interface {
	Apply(price decimal.Decimal) decimal.Decimal
}

// FixedDiscount subtracts a flat amount and never goes below zero.
type FixedDiscount struct {
	Amount decimal.Decimal
}

func (d FixedDiscount) Apply(price decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, price.Sub(d.Amount))
}

// PercentDiscount takes Percent percent off. Values above 100 produce a
// negative price; the purchase guard rejects it.
type PercentDiscount struct {
	Percent decimal.Decimal
}

func (d PercentDiscount) Apply(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(d.Percent.Div(hundred)))
}

// DiscountFor maps a stored coupon to its discount rule.
func DiscountFor(coupon *model.Coupon) (Discount, error) {
	if !coupon.Type.Valid() {
		return nil, fmt.Errorf("coupon %q has unsupported type %q", coupon.Code, coupon.Type)
	}
	switch coupon.Type {
	case model.CouponTypeFixed:
		return FixedDiscount{Amount: coupon.Value}, nil
	default:
		return PercentDiscount{Percent: coupon.Value}, nil
	}
}
