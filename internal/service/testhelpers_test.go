package service

import (
	"context"
	"errors"

	"checkout/internal/model"
	"checkout/internal/repository"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() *repository.Catalog {
	return repository.NewMemoryCatalog(
		[]model.Product{
			{ID: 1, Name: "Iphone", Price: dec("100.00")},
			{ID: 2, Name: "Наушники", Price: dec("20.00")},
			{ID: 3, Name: "Чехол", Price: dec("10.00")},
		},
		[]model.Tax{
			{CountryCode: "DE", Rate: dec("19.00"), TaxNumberPattern: `^DE[0-9]{9}$`},
			{CountryCode: "IT", Rate: dec("22.00"), TaxNumberPattern: `^IT[0-9]{11}$`},
			{CountryCode: "FR", Rate: dec("20.00"), TaxNumberPattern: `^FR[A-Z]{2}[0-9]{9}$`},
			{CountryCode: "GR", Rate: dec("24.00"), TaxNumberPattern: `^GR[0-9]{9}$`},
			{CountryCode: "XX", Rate: dec("10.00"), TaxNumberPattern: `[0-9]{3}`},
			{CountryCode: "YY", Rate: dec("10.00"), TaxNumberPattern: `^YY(`},
		},
		[]model.Coupon{
			{Code: "D6", Type: model.CouponTypePercent, Value: dec("6.00")},
			{Code: "D15", Type: model.CouponTypePercent, Value: dec("15.00")},
			{Code: "F10", Type: model.CouponTypeFixed, Value: dec("10.00")},
			{Code: "F100", Type: model.CouponTypeFixed, Value: dec("100.00")},
			{Code: "P100", Type: model.CouponTypePercent, Value: dec("100.00")},
			{Code: "P110", Type: model.CouponTypePercent, Value: dec("110.00")},
			{Code: "BOGUS", Type: model.CouponType("bogus"), Value: dec("1.00")},
		},
	)
}

var errStoreDown = errors.New("connection refused")

// brokenCatalog fails every lookup with a storage error.
type brokenCatalog struct{}

func (brokenCatalog) FindProduct(context.Context, int64) (*model.Product, error) {
	return nil, errStoreDown
}

func (brokenCatalog) FindTax(context.Context, string) (*model.Tax, error) {
	return nil, errStoreDown
}

func (brokenCatalog) FindCoupon(context.Context, string) (*model.Coupon, error) {
	return nil, errStoreDown
}
