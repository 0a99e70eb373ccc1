package repository

import (
	"context"

	"checkout/internal/model"

	"gorm.io/gorm"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

// FindByCode matches the code exactly; coupon codes are case-sensitive.
func (r *couponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, translateError(err)
	}
	return &coupon, nil
}
