package database

import (
	"context"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizzaria-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Models lists every table owned by the API, parents first
func Models() []any {
	return []any{&models.Pizza{}, &models.Customer{}, &models.Order{}, &models.OrderItem{}}
}

// EnsureSchema creates missing tables, columns and constraints. It is safe to call on
// an existing schema.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database schema ready")
	return nil
}

// EnsureSchemaWithRetry keeps calling EnsureSchema with exponential backoff until it
// succeeds or ctx is cancelled.
func EnsureSchemaWithRetry(ctx context.Context, db *gorm.DB) error {
	for attempt := 1; ; attempt++ {
		err := EnsureSchema(ctx, db)
		if err == nil {
			return nil
		}

		delay := retryDelays[min(attempt-1, len(retryDelays)-1)]
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   delay,
			"error":   err.Error(),
		}).Warn("Schema initialization failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
