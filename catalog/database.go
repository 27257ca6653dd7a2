package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/snap-point/tour-guide-api/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the reference tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Attraction{}, &models.AudioTour{}, &models.QrCodeReward{}); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	return nil
}

// Load reads the catalog from the database, seeding the tables from Default
// when no attractions exist yet. The seed profile always comes from Default.
func Load(ctx context.Context, db *gorm.DB) (*Catalog, error) {
	defaults := Default(time.Now())
	tx := db.WithContext(ctx)

	var count int64
	if err := tx.Model(&models.Attraction{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count attractions: %w", err)
	}
	if count == 0 {
		if err := Seed(ctx, db, defaults); err != nil {
			return nil, err
		}
		log.Printf("Seeded catalog with %d attractions, %d audio tours, %d rewards",
			len(defaults.Attractions), len(defaults.AudioTours), len(defaults.Rewards))
	}

	c := &Catalog{User: defaults.User}
	if err := tx.Order("sort_order, id").Find(&c.Attractions).Error; err != nil {
		return nil, fmt.Errorf("load attractions: %w", err)
	}
	if err := tx.Order("sort_order, id").Find(&c.AudioTours).Error; err != nil {
		return nil, fmt.Errorf("load audio tours: %w", err)
	}
	if err := tx.Order("valid_until DESC").Find(&c.Rewards).Error; err != nil {
		return nil, fmt.Errorf("load rewards: %w", err)
	}
	return c, nil
}

// Seed writes the catalog's reference records in a single transaction.
func Seed(ctx context.Context, db *gorm.DB, c *Catalog) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(c.Attractions) > 0 {
			if err := tx.Create(&c.Attractions).Error; err != nil {
				return fmt.Errorf("seed attractions: %w", err)
			}
		}
		if len(c.AudioTours) > 0 {
			if err := tx.Create(&c.AudioTours).Error; err != nil {
				return fmt.Errorf("seed audio tours: %w", err)
			}
		}
		if len(c.Rewards) > 0 {
			if err := tx.Create(&c.Rewards).Error; err != nil {
				return fmt.Errorf("seed rewards: %w", err)
			}
		}
		return nil
	})
}
