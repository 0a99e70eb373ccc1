package service

import (
	"context"
	"fmt"

	"checkout/internal/repository"
)

// --- DTOs ---

type ProductResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type TaxResponse struct {
	CountryCode string `json:"country_code"`
	Rate        string `json:"rate"`
}

// --- Interface ---

// CatalogService lists catalog records for storefront browsing.
type CatalogService interface {
	ListProducts(ctx context.Context, page, limit int) ([]ProductResponse, int64, error)
	ListTaxes(ctx context.Context) ([]TaxResponse, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	taxRepo     repository.TaxRepository
}

func NewCatalogService(productRepo repository.ProductRepository, taxRepo repository.TaxRepository) CatalogService {
	return &catalogService{productRepo: productRepo, taxRepo: taxRepo}
}

// --- Implementation ---

func (s *catalogService) ListProducts(ctx context.Context, page, limit int) ([]ProductResponse, int64, error) {
	products, total, err := s.productRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, ProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.StringFixed(MoneyScale),
		})
	}
	return res, total, nil
}

func (s *catalogService) ListTaxes(ctx context.Context) ([]TaxResponse, error) {
	taxes, err := s.taxRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch taxes: %w", err)
	}

	res := make([]TaxResponse, 0, len(taxes))
	for _, t := range taxes {
		res = append(res, TaxResponse{
			CountryCode: t.CountryCode,
			Rate:        t.Rate.StringFixed(MoneyScale),
		})
	}
	return res, nil
}
