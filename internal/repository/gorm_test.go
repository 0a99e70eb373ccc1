package repository

import (
	"context"
	"path/filepath"
	"testing"

	"checkout/internal/database"
	"checkout/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func newSeededDB(t *testing.T, log *zap.Logger) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), log)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Seed(context.Background(), db, database.DefaultSeed()))
	return db
}

func TestCatalogFind(t *testing.T) {
	c := NewCatalog(newSeededDB(t, zap.NewNop()))
	ctx := context.Background()

	p, err := c.FindProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Чехол", p.Name)
	assert.Equal(t, "10.00", p.Price.StringFixed(2))

	tax, err := c.FindTax(ctx, "IT")
	require.NoError(t, err)
	assert.Equal(t, "22.00", tax.Rate.StringFixed(2))
	assert.Equal(t, `^IT[0-9]{11}$`, tax.TaxNumberPattern)

	coupon, err := c.FindCoupon(ctx, "F10")
	require.NoError(t, err)
	assert.Equal(t, model.CouponTypeFixed, coupon.Type)
	assert.Equal(t, "10.00", coupon.Value.StringFixed(2))
}

func TestCatalogNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewCatalog(newSeededDB(t, zap.New(core)))
	ctx := context.Background()
	logs.TakeAll()

	_, err := c.FindProduct(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.FindTax(ctx, "XX")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.FindCoupon(ctx, "d15")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.FindCoupon(ctx, "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Zero(t, logs.FilterLoggerName("gorm").Len())
}

func TestCatalogStorageFailureIsNotNotFound(t *testing.T) {
	db := newSeededDB(t, zap.NewNop())
	c := NewCatalog(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = c.FindProduct(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = c.FindCoupon(context.Background(), "D15")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestProductRepositoryList(t *testing.T) {
	repo := NewProductRepository(newSeededDB(t, zap.NewNop()))
	ctx := context.Background()

	products, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Iphone", products[0].Name)
	assert.Equal(t, "Наушники", products[1].Name)

	products, total, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, products, 1)
	assert.Equal(t, int64(3), products[0].ID)

	products, _, err = repo.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestTaxRepositoryListIsOrdered(t *testing.T) {
	repo := NewTaxRepository(newSeededDB(t, zap.NewNop()))

	taxes, err := repo.List(context.Background())
	require.NoError(t, err)

	codes := make([]string, 0, len(taxes))
	for _, tax := range taxes {
		codes = append(codes, tax.CountryCode)
	}
	assert.Equal(t, []string{"DE", "FR", "GR", "IT"}, codes)
}
