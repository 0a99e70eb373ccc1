package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput matches every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports malformed or missing caller-supplied data.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %d not found", e.ProductID)
}

type TaxNotFoundError struct {
	CountryCode string
}

func (e *TaxNotFoundError) Error() string {
	return fmt.Sprintf("Tax configuration not found for country %s", e.CountryCode)
}

type CouponNotFoundError struct {
	Code string
}

func (e *CouponNotFoundError) Error() string {
	return fmt.Sprintf(`Coupon with code "%s" not found`, e.Code)
}

// InvalidPurchaseError is returned when the calculated price is not positive.
type InvalidPurchaseError struct {
	Price decimal.Decimal
}

func (e *InvalidPurchaseError) Error() string {
	return "Calculated price must be greater than 0"
}

// IsClientError reports whether err was caused by the request data: invalid
// input or a reference to a product, tax or coupon that does not exist.
func IsClientError(err error) bool {
	if errors.Is(err, ErrInvalidInput) {
		return true
	}
	var (
		productErr *ProductNotFoundError
		taxErr     *TaxNotFoundError
		couponErr  *CouponNotFoundError
	)
	return errors.As(err, &productErr) || errors.As(err, &taxErr) || errors.As(err, &couponErr)
}
