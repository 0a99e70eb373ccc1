package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"checkout/internal/model"
	"checkout/internal/observability"
	"checkout/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MoneyScale is the number of fractional digits of a final price.
const MoneyScale = 2

// --- DTOs ---

type CalculatePriceRequest struct {
	ProductID  int64  `json:"product"`
	TaxNumber  string `json:"taxNumber"`
	CouponCode string `json:"couponCode"`
}

type CalculatePriceResponse struct {
	Price json.Number `json:"price"`
}

// --- Interface ---

// CatalogLookup is read-only access to products, taxes and coupons. Absent
// keys yield repository.ErrNotFound; any other error is a storage failure.
type CatalogLookup interface {
	FindProduct(ctx context.Context, id int64) (*model.Product, error)
	FindTax(ctx context.Context, countryCode string) (*model.Tax, error)
	FindCoupon(ctx context.Context, code string) (*model.Coupon, error)
}

type PriceCalculator interface {
	Calculate(ctx context.Context, req CalculatePriceRequest) (decimal.Decimal, error)
}

type priceCalculator struct {
	catalog   CatalogLookup
	validator *TaxNumberValidator
}

func NewPriceCalculator(catalog CatalogLookup, validator *TaxNumberValidator) PriceCalculator {
	if validator == nil {
		validator = NewTaxNumberValidator()
	}
	return &priceCalculator{catalog: catalog, validator: validator}
}

// --- Implementation ---

// Calculate returns (price - discount) * (1 + rate/100) rounded once to
// MoneyScale digits. Each step stops at its first failure.
func (s *priceCalculator) Calculate(ctx context.Context, req CalculatePriceRequest) (decimal.Decimal, error) {
	log := observability.FromContext(ctx)

	if req.ProductID <= 0 {
		return decimal.Zero, invalidInput("Product ID must be positive")
	}
	taxNumber := strings.TrimSpace(req.TaxNumber)
	if taxNumber == "" {
		return decimal.Zero, invalidInput("Tax number is required")
	}

	product, err := s.catalog.FindProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Zero, &ProductNotFoundError{ProductID: req.ProductID}
		}
		return decimal.Zero, fmt.Errorf("failed to fetch product: %w", err)
	}

	countryCode, err := ExtractCountryCode(taxNumber)
	if err != nil {
		return decimal.Zero, err
	}
	tax, err := s.catalog.FindTax(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Zero, &TaxNotFoundError{CountryCode: countryCode}
		}
		return decimal.Zero, fmt.Errorf("failed to fetch tax: %w", err)
	}

	if !IsAnchored(tax.TaxNumberPattern) {
		log.Warn("tax number pattern is not anchored",
			zap.String("country_code", countryCode),
			zap.String("pattern", tax.TaxNumberPattern))
	}
	ok, err := s.validator.Matches(taxNumber, tax.TaxNumberPattern)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, invalidInput(`Invalid tax number "%s" for country %s`, taxNumber, countryCode)
	}

	var discount Discount
	if code := strings.TrimSpace(req.CouponCode); code != "" {
		coupon, err := s.catalog.FindCoupon(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return decimal.Zero, &CouponNotFoundError{Code: code}
			}
			return decimal.Zero, fmt.Errorf("failed to fetch coupon: %w", err)
		}
		if discount, err = DiscountFor(coupon); err != nil {
			return decimal.Zero, err
		}
	}

	price := ApplyTax(product.Price, discount, tax.Rate)

	log.Debug("price calculated",
		zap.Int64("product_id", product.ID),
		zap.String("country_code", countryCode),
		zap.String("coupon_code", req.CouponCode),
		zap.String("price", price.StringFixed(MoneyScale)))

	return price, nil
}

// MoneyJSON renders a price as a JSON number with MoneyScale digits.
func MoneyJSON(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(MoneyScale))
}

// ApplyTax discounts base (when discount is non-nil), applies ratePercent and
// rounds half away from zero to MoneyScale digits.
func ApplyTax(base decimal.Decimal, discount Discount, ratePercent decimal.Decimal) decimal.Decimal {
	price := base
	if discount != nil {
		price = discount.Apply(price)
	}
	price = price.Mul(decimal.NewFromInt(1).Add(ratePercent.Div(hundred)))
	return price.Round(MoneyScale)
}
