package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"voyage/internal/config"
	"voyage/internal/models/db_models"
)

// OpenPostgresql connects to the catalog database. It returns a nil *gorm.DB
// when no URL is configured; catalog endpoints then answer 503.
func OpenPostgresql(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		logger.Info("POSTGRES_URL not set, catalog search disabled")
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("connected to postgres")
	return db, nil
}

// MigrateCatalog creates or updates the catalog tables.
func MigrateCatalog(db *gorm.DB) error {
	if err := db.AutoMigrate(db_models.CatalogModels...); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing database connection", zap.Error(err))
	} else {
		logger.Info("postgres connection closed")
	}
}
