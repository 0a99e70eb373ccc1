package repository

import (
	"context"
	"sort"

	"checkout/internal/model"
)

// NewMemoryCatalog builds a catalog held entirely in memory. The maps are
// populated once and only read afterwards, so concurrent lookups need no locking.
// Products without an ID are numbered in slice order starting at 1.
func NewMemoryCatalog(products []model.Product, taxes []model.Tax, coupons []model.Coupon) *Catalog {
	pr := &memoryProductRepository{byID: make(map[int64]model.Product, len(products))}
	for i, p := range products {
		if p.ID == 0 {
			p.ID = int64(i + 1)
		}
		pr.byID[p.ID] = p
		pr.ids = append(pr.ids, p.ID)
	}
	sort.Slice(pr.ids, func(i, j int) bool { return pr.ids[i] < pr.ids[j] })

	tr := &memoryTaxRepository{byCode: make(map[string]model.Tax, len(taxes))}
	for _, t := range taxes {
		tr.byCode[t.CountryCode] = t
	}

	cr := &memoryCouponRepository{byCode: make(map[string]model.Coupon, len(coupons))}
	for _, c := range coupons {
		cr.byCode[c.Code] = c
	}

	return &Catalog{Products: pr, Taxes: tr, Coupons: cr}
}

type memoryProductRepository struct {
	byID map[int64]model.Product
	ids  []int64
}

func (r *memoryProductRepository) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memoryProductRepository) List(_ context.Context, page, limit int) ([]model.Product, int64, error) {
	total := int64(len(r.ids))
	offset := (page - 1) * limit
	if offset < 0 || offset >= len(r.ids) {
		return []model.Product{}, total, nil
	}
	end := offset + limit
	if end > len(r.ids) {
		end = len(r.ids)
	}

	products := make([]model.Product, 0, end-offset)
	for _, id := range r.ids[offset:end] {
		products = append(products, r.byID[id])
	}
	return products, total, nil
}

type memoryTaxRepository struct {
	byCode map[string]model.Tax
}

func (r *memoryTaxRepository) FindByCountryCode(_ context.Context, countryCode string) (*model.Tax, error) {
	t, ok := r.byCode[countryCode]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *memoryTaxRepository) List(_ context.Context) ([]model.Tax, error) {
	taxes := make([]model.Tax, 0, len(r.byCode))
	for _, t := range r.byCode {
		taxes = append(taxes, t)
	}
	sort.Slice(taxes, func(i, j int) bool { return taxes[i].CountryCode < taxes[j].CountryCode })
	return taxes, nil
}

type memoryCouponRepository struct {
	byCode map[string]model.Coupon
}

func (r *memoryCouponRepository) FindByCode(_ context.Context, code string) (*model.Coupon, error) {
	c, ok := r.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}
