package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponType enum
type CouponType string

const (
	CouponTypeFixed   CouponType = "fixed"
	CouponTypePercent CouponType = "percent"
)

// Valid reports whether t is one of the known coupon types.
func (t CouponType) Valid() bool {
	return t == CouponTypeFixed || t == CouponTypePercent
}

// Coupon is a named discount applied before tax
type Coupon struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // case-sensitive
	Type      CouponType      `gorm:"type:varchar(20);not null" json:"type"`             // fixed, percent
	Value     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
