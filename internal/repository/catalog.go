package repository

import (
	"context"

	"checkout/internal/model"

	"gorm.io/gorm"
)

// Catalog bundles the read-only product, tax and coupon lookups.
type Catalog struct {
	Products ProductRepository
	Taxes    TaxRepository
	Coupons  CouponRepository
}

// NewCatalog wires a gorm-backed catalog.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{
		Products: NewProductRepository(db),
		Taxes:    NewTaxRepository(db),
		Coupons:  NewCouponRepository(db),
	}
}

func (c *Catalog) FindProduct(ctx context.Context, id int64) (*model.Product, error) {
	return c.Products.FindByID(ctx, id)
}

func (c *Catalog) FindTax(ctx context.Context, countryCode string) (*model.Tax, error) {
	return c.Taxes.FindByCountryCode(ctx, countryCode)
}

func (c *Catalog) FindCoupon(ctx context.Context, code string) (*model.Coupon, error) {
	return c.Coupons.FindByCode(ctx, code)
}
