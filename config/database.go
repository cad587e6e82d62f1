package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// StorefrontDB is the raw pgx pool, used for aggregate analytics queries.
	StorefrontDB *pgxpool.Pool

	// StorefrontGorm handles the model-backed tables (events, receipts, alerts).
	StorefrontGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	dbURL := os.Getenv("STOREFRONT_DB_URL")
	if dbURL == "" {
		// fallback to local
		dbURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/caught_online_storefront?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ STOREFRONT_DB_URL not set, using local default")
	}

	var err error
	StorefrontDB, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to storefront database: %v", err)
	}

	if err = StorefrontDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Storefront database ping failed: %v", err)
	}

	log.Println("✅ Storefront database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var dsn string
	if os.Getenv("STOREFRONT_DB_URL") != "" {
		dsn = os.Getenv("STOREFRONT_DB_URL")
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=caught_online_storefront port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ STOREFRONT_DB_URL not set, using local GORM default")
	}

	var err error
	StorefrontGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to storefront database with GORM: %v", err)
	}
	if sqlDB, err := StorefrontGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Storefront database connected (GORM)")
}

func CloseDB() {
	if StorefrontDB != nil {
		StorefrontDB.Close()
		log.Println("✅ Storefront database connection closed (pgx)")
	}
	if StorefrontGorm != nil {
		sqlDB, _ := StorefrontGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Storefront database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
