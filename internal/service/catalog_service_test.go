package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog.Products, catalog.Taxes)

	products, total, err := svc.ListProducts(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, products, 2)
	assert.Equal(t, ProductResponse{ID: 1, Name: "Iphone", Price: "100.00"}, products[0])

	products, _, err = svc.ListProducts(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Чехол", products[0].Name)
}

func TestListTaxes(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog.Products, catalog.Taxes)

	taxes, err := svc.ListTaxes(context.Background())
	require.NoError(t, err)
	require.Len(t, taxes, 6)
	assert.Equal(t, TaxResponse{CountryCode: "DE", Rate: "19.00"}, taxes[0])
}
