package service

import (
	"testing"

	"checkout/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDiscount(t *testing.T) {
	assert.Equal(t, "90.00", FixedDiscount{Amount: dec("10")}.Apply(dec("100")).StringFixed(2))
	assert.Equal(t, "0.00", FixedDiscount{Amount: dec("100")}.Apply(dec("10")).StringFixed(2))
	assert.Equal(t, "0.00", FixedDiscount{Amount: dec("10")}.Apply(dec("10")).StringFixed(2))
}

func TestPercentDiscount(t *testing.T) {
	assert.Equal(t, "94.00", PercentDiscount{Percent: dec("6")}.Apply(dec("100")).StringFixed(2))
	assert.Equal(t, "0.00", PercentDiscount{Percent: dec("100")}.Apply(dec("100")).StringFixed(2))
	assert.Equal(t, "-10.00", PercentDiscount{Percent: dec("110")}.Apply(dec("100")).StringFixed(2))
}

func TestDiscountFor(t *testing.T) {
	d, err := DiscountFor(&model.Coupon{Code: "F10", Type: model.CouponTypeFixed, Value: dec("10")})
	require.NoError(t, err)
	assert.IsType(t, FixedDiscount{}, d)

	d, err = DiscountFor(&model.Coupon{Code: "P10", Type: model.CouponTypePercent, Value: dec("10")})
	require.NoError(t, err)
	assert.IsType(t, PercentDiscount{}, d)

	_, err = DiscountFor(&model.Coupon{Code: "X", Type: "bogus"})
	require.Error(t, err)
	assert.Equal(t, `coupon "X" has unsupported type "bogus"`, err.Error())
}
