package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/flatmate-finder/internal/config"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
)

// constraints are created after AutoMigrate. They express the rules gorm
// tags cannot: partial uniqueness, the budget range and the search index.
var constraints = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_user_listing
		ON bookings (user_id, listing_id)
		WHERE status IN ('pending', 'confirmed')`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_roommate_requests_active_user
		ON roommate_requests (user_id)
		WHERE is_active`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'chk_roommate_requests_budget'
		) THEN
			ALTER TABLE roommate_requests
				ADD CONSTRAINT chk_roommate_requests_budget CHECK (budget_min < budget_max);
		END IF;
	END $$`,

	`CREATE INDEX IF NOT EXISTS idx_listings_search
		ON listings USING GIN (to_tsvector('simple', title || ' ' || description || ' ' || location))`,

	`CREATE INDEX IF NOT EXISTS idx_listings_amenities
		ON listings USING GIN (amenities)`,
}

func NewDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.Int("constraints", len(constraints)))
	return db, nil
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.RoommateRequest{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate constraints: %w", err)
		}
	}
	return nil
}
