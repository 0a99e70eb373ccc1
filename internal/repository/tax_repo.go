package repository

import (
	"context"

	"checkout/internal/model"

	"gorm.io/gorm"
)

type TaxRepository interface {
	FindByCountryCode(ctx context.Context, countryCode string) (*model.Tax, error)
	List(ctx context.Context) ([]model.Tax, error)
}

type taxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) TaxRepository {
	return &taxRepository{db: db}
}

func (r *taxRepository) FindByCountryCode(ctx context.Context, countryCode string) (*model.Tax, error) {
	var tax model.Tax
	if err := r.db.WithContext(ctx).Where("country_code = ?", countryCode).First(&tax).Error; err != nil {
		return nil, translateError(err)
	}
	return &tax, nil
}

func (r *taxRepository) List(ctx context.Context) ([]model.Tax, error) {
	var taxes []model.Tax
	if err := r.db.WithContext(ctx).Order("country_code asc").Find(&taxes).Error; err != nil {
		return nil, err
	}
	return taxes, nil
}
