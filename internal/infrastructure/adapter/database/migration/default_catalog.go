package migration

import (
	"context"
	"time"

	"gorm.io/gorm"

	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/model"
)

const defaultCityID = "8c1a54e2-0000-4000-8000-000000000001"

type seedAsset struct {
	ID        string
	Name      string
	Price     int64
	Latitude  float64
	Longitude float64
	Type      string
	Color     string
}

// Starter catalog: New York landmarks available on a fresh database
var defaultAssets = []seedAsset{
	{
		ID:        "a5e0c3f1-0000-4000-8000-000000000001",
		Name:      "Empire State Building",
		Price:     500,
		Latitude:  40.748817,
		Longitude: -73.985428,
		Type:      "landmark",
		Color:     "#B0B0B0",
	},
	{
		ID:        "a5e0c3f1-0000-4000-8000-000000000002",
		Name:      "Statue of Liberty",
		Price:     750,
		Latitude:  40.689247,
		Longitude: -74.044502,
		Type:      "landmark",
		Color:     "#2E8B57",
	},
	{
		ID:        "a5e0c3f1-0000-4000-8000-000000000003",
		Name:      "Brooklyn Bridge",
		Price:     400,
		Latitude:  40.706086,
		Longitude: -73.996864,
		Type:      "landmark",
		Color:     "#8B7355",
	},
	{
		ID:        "a5e0c3f1-0000-4000-8000-000000000004",
		Name:      "Times Square Tower",
		Price:     650,
		Latitude:  40.758000,
		Longitude: -73.985500,
		Type:      "building",
		Color:     "#FF2D55",
	},
	{
		ID:        "a5e0c3f1-0000-4000-8000-000000000005",
		Name:      "One World Trade Center",
		Price:     900,
		Latitude:  40.712742,
		Longitude: -74.013382,
		Type:      "building",
		Color:     "#4A90D9",
	},
	{
		ID:        "a5e0c3f1-0000-4000-8000-000000000006",
		Name:      "Flatiron Building",
		Price:     350,
		Latitude:  40.741112,
		Longitude: -73.989723,
		Type:      "building",
		Color:     "#C19A6B",
	},
}

// SeedDefaultCatalog inserts the starter city and assets if they are missing.
// Existing rows are left untouched so reseeding is idempotent.
func SeedDefaultCatalog(ctx context.Context, db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) error {
	now := seedTime(timeProvider)

	city := model.City{
		ID:          defaultCityID,
		Name:        "New York",
		CountryCode: "US",
		Latitude:    40.712776,
		Longitude:   -74.005974,
		CreatedAt:   now,
	}

	var cityCount int64
	if err := db.WithContext(ctx).Model(&model.City{}).Where("id = ?", city.ID).Count(&cityCount).Error; err != nil {
		return err
	}
	if cityCount == 0 {
		if err := db.WithContext(ctx).Create(&city).Error; err != nil {
			return err
		}
	}

	created := 0
	for _, seed := range defaultAssets {
		var count int64
		if err := db.WithContext(ctx).Model(&model.Asset{}).Where("id = ?", seed.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		asset := model.Asset{
			ID:        seed.ID,
			Name:      seed.Name,
			Price:     seed.Price,
			Latitude:  seed.Latitude,
			Longitude: seed.Longitude,
			CityID:    defaultCityID,
			Type:      seed.Type,
			Color:     seed.Color,
			CreatedAt: now,
		}
		if err := db.WithContext(ctx).Create(&asset).Error; err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		logger.Info("Seeded default catalog", map[string]any{
			"city":   city.Name,
			"assets": created,
		})
	}
	return nil
}

func seedTime(timeProvider coreport.TimeProvider) time.Time {
	if timeProvider != nil {
		return timeProvider.Now()
	}
	return time.Now()
}
