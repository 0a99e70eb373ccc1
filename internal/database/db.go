package database

import (
	"fmt"
	"time"

	"checkout/internal/model"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string, log *zap.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), log)
}

// Open connects through the given dialector and migrates the catalog tables.
func Open(dialector gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	queryLogger, err := newQueryLogger(log)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: queryLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate catalog models
	err = db.AutoMigrate(
		&model.Product{},
		&model.Tax{},
		&model.Coupon{},
	)
	if err != nil {
		log.Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}

// newQueryLogger routes gorm's slow-query and error lines through zap.
// Lookups that miss are an expected outcome and are not logged.
func newQueryLogger(log *zap.Logger) (gormlogger.Interface, error) {
	std, err := zap.NewStdLogAt(log.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to build query logger: %w", err)
	}
	return gormlogger.New(std, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}), nil
}
