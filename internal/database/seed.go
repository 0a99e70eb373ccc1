package database

import (
	"context"
	"fmt"

	"checkout/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedData is the catalog shipped with a fresh installation.
type SeedData struct {
	Products []model.Product
	Taxes    []model.Tax
	Coupons  []model.Coupon
}

// DefaultSeed returns the demo catalog: three products, four coupons and
// the VAT configuration of DE, IT, FR and GR.
func DefaultSeed() SeedData {
	return SeedData{
		Products: []model.Product{
			{ID: 1, Name: "Iphone", Price: decimal.RequireFromString("100.00")},
			{ID: 2, Name: "Наушники", Price: decimal.RequireFromString("20.00")},
			{ID: 3, Name: "Чехол", Price: decimal.RequireFromString("10.00")},
		},
		Coupons: []model.Coupon{
			{Code: "D15", Type: model.CouponTypePercent, Value: decimal.RequireFromString("15.00")},
			{Code: "F10", Type: model.CouponTypeFixed, Value: decimal.RequireFromString("10.00")},
			{Code: "P10", Type: model.CouponTypePercent, Value: decimal.RequireFromString("10.00")},
			{Code: "P100", Type: model.CouponTypePercent, Value: decimal.RequireFromString("100.00")},
		},
		Taxes: []model.Tax{
			{CountryCode: "DE", Rate: decimal.RequireFromString("19.00"), TaxNumberPattern: `^DE[0-9]{9}$`},
			{CountryCode: "IT", Rate: decimal.RequireFromString("22.00"), TaxNumberPattern: `^IT[0-9]{11}$`},
			{CountryCode: "FR", Rate: decimal.RequireFromString("20.00"), TaxNumberPattern: `^FR[A-Z]{2}[0-9]{9}$`},
			{CountryCode: "GR", Rate: decimal.RequireFromString("24.00"), TaxNumberPattern: `^GR[0-9]{9}$`},
		},
	}
}

// Seed inserts the rows of data that are not present yet. Existing rows
// (matched by product name, coupon code or country code) are left untouched.
func Seed(ctx context.Context, db *gorm.DB, data SeedData) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range data.Products {
			p := p
			p.ID = 0
			if err := tx.Where(model.Product{Name: p.Name}).FirstOrCreate(&p).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
			}
		}
		for _, c := range data.Coupons {
			c := c
			if err := tx.Where(model.Coupon{Code: c.Code}).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("failed to seed coupon %q: %w", c.Code, err)
			}
		}
		for _, t := range data.Taxes {
			t := t
			if err := tx.Where(model.Tax{CountryCode: t.CountryCode}).FirstOrCreate(&t).Error; err != nil {
				return fmt.Errorf("failed to seed tax %q: %w", t.CountryCode, err)
			}
		}
		return nil
	})
}
