package database

import (
	"context"
	"fmt"
	"time"

	"transactions-api/internal/config"
	"transactions-api/internal/models"
	"transactions-api/pkg/logging"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	DB          *gorm.DB
	RedisClient *redis.Client
)

// InitDatabase initializes database connection
func InitDatabase() error {
	// Initialize PostgreSQL (or SQLite fallback)
	if err := initPostgres(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis (optional cache backend)
	initRedis()

	// Auto migrate tables
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Insert default data
	if err := insertDefaultData(); err != nil {
		return fmt.Errorf("failed to insert default data: %w", err)
	}

	return nil
}

// initPostgres initializes PostgreSQL connection
func initPostgres() error {
	var err error
	var dsn string

	// Get database URL from environment
	if dsn = config.AppConfig.DatabaseURL; dsn == "" {
		// Fallback to SQLite for development
		logging.Infof("Database URL not set, using SQLite for development")
		DB, err = gorm.Open(sqlite.Open("transactions-api.db"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
			NamingStrategy: schema.NamingStrategy{
				SingularTable: true,
			},
		})
	} else {
		// Use PostgreSQL for production
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
			NamingStrategy: schema.NamingStrategy{
				SingularTable: true,
			},
		})
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logging.Infof("Database connected successfully")
	return nil
}

// initRedis initializes the Redis connection. The cache is an optimization
// only, so a missing or unreachable Redis never fails startup.
func initRedis() {
	if config.AppConfig.RedisURL == "" {
		logging.Infof("Redis URL not set, running without fetch cache")
		return
	}

	opt, err := redis.ParseURL(config.AppConfig.RedisURL)
	if err != nil {
		logging.Warnf("Invalid Redis URL, running without fetch cache: %v", err)
		return
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warnf("Redis unreachable, running without fetch cache: %v", err)
		return
	}

	RedisClient = client
	logging.Infof("Redis connected successfully")
}

// autoMigrate migrates database tables
func autoMigrate() error {
	return DB.AutoMigrate(
		&models.Merchant{},
	)
}

// insertDefaultData seeds the default merchant from the environment so the
// dashboard works out of the box with a single tenant.
func insertDefaultData() error {
	var count int64
	if err := DB.Model(&models.Merchant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	merchant := &models.Merchant{
		MerchantID:       "default",
		MerchantName:     "Default Merchant",
		ProviderName:     "commerce",
		APIKey:           config.AppConfig.CommerceAPIKey,
		SiteID:           config.AppConfig.CommerceSiteID,
		FallbackCurrency: config.AppConfig.FallbackCurrency,
		Description:      "Seeded from environment on first start",
		IsActive:         true,
	}

	if err := DB.Create(merchant).Error; err != nil {
		return fmt.Errorf("failed to seed default merchant: %w", err)
	}

	logging.Infof("Seeded default merchant")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// GetRedis returns the Redis client, nil when the cache is disabled
func GetRedis() *redis.Client {
	return RedisClient
}
