package infra

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

// Migrate creates or updates the schema for all three stores.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.TripType{},
		&db_models.PackingItem{},
		&db_models.ItineraryEvent{},
		&db_models.ExchangeRate{},
	)
}

// SeedDefaultData loads the starter trip types and exchange rates. Each
// store is seeded only when it is empty, so restarting the process never
// overwrites user edits.
func SeedDefaultData(db *gorm.DB, newID utils.IDGenerator) error {
	if err := seedTripTypes(db, newID); err != nil {
		return fmt.Errorf("seed trip types: %w", err)
	}
	if err := seedExchangeRates(db, newID); err != nil {
		return fmt.Errorf("seed exchange rates: %w", err)
	}
	return nil
}

func seedTripTypes(db *gorm.DB, newID utils.IDGenerator) error {
	var count int64
	if err := db.Model(&db_models.TripType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tripTypes := defaultTripTypes(newID)
	if err := db.Create(&tripTypes).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d default trip types", len(tripTypes))
	return nil
}

func seedExchangeRates(db *gorm.DB, newID utils.IDGenerator) error {
	var count int64
	if err := db.Model(&db_models.ExchangeRate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rates := defaultExchangeRates(newID)
	if err := db.Create(&rates).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d default exchange rates", len(rates))
	return nil
}

func defaultTripTypes(newID utils.IDGenerator) []db_models.TripType {
	starter := func(tripTypeID string, position int, name, category string) db_models.PackingItem {
		return db_models.PackingItem{
			ID:         newID(),
			TripTypeID: tripTypeID,
			Name:       name,
			Category:   category,
			Position:   position,
		}
	}

	return []db_models.TripType{
		{
			ID:       "beach",
			Name:     "Beach Getaway",
			Icon:     "🏖️",
			Color:    "from-blue-400 to-cyan-300",
			Position: 0,
			Items: []db_models.PackingItem{
				starter("beach", 0, "Sunscreen SPF 50+", "essentials"),
				starter("beach", 1, "Swimwear", "clothing"),
				starter("beach", 2, "Beach towel", "essentials"),
				starter("beach", 3, "Flip flops", "footwear"),
				starter("beach", 4, "Sunglasses", "accessories"),
				starter("beach", 5, "Beach hat", "accessories"),
				starter("beach", 6, "Water bottle", "essentials"),
			},
		},
		{
			ID:       "city",
			Name:     "City Explorer",
			Icon:     "🏙️",
			Color:    "from-purple-400 to-pink-300",
			Position: 1,
			Items: []db_models.PackingItem{
				starter("city", 0, "Comfortable walking shoes", "footwear"),
				starter("city", 1, "Portable charger", "electronics"),
				starter("city", 2, "Day backpack", "accessories"),
				starter("city", 3, "City map/guidebook", "essentials"),
				starter("city", 4, "Camera", "electronics"),
				starter("city", 5, "Light jacket", "clothing"),
				starter("city", 6, "Reusable water bottle", "essentials"),
			},
		},
		{
			ID:       "business",
			Name:     "Business Trip",
			Icon:     "💼",
			Color:    "from-gray-400 to-slate-300",
			Position: 2,
			Items: []db_models.PackingItem{
				starter("business", 0, "Business cards", "essentials"),
				starter("business", 1, "Laptop + charger", "electronics"),
				starter("business", 2, "Professional attire", "clothing"),
				starter("business", 3, "Dress shoes", "footwear"),
				starter("business", 4, "Portfolio/documents", "essentials"),
				starter("business", 5, "Phone charger", "electronics"),
				starter("business", 6, "Travel adapter", "electronics"),
			},
		},
	}
}

func defaultExchangeRates(newID utils.IDGenerator) []db_models.ExchangeRate {
	const seedDate = "2025-07-10"

	edge := func(from, to string, rate float64) db_models.ExchangeRate {
		return db_models.ExchangeRate{
			ID:           newID(),
			FromCurrency: from,
			ToCurrency:   to,
			Rate:         rate,
			LastUpdated:  seedDate,
		}
	}

	return []db_models.ExchangeRate{
		edge("USD", "EUR", 0.85),
		edge("USD", "GBP", 0.73),
		edge("USD", "JPY", 110.25),
		edge("EUR", "USD", 1.18),
		edge("GBP", "USD", 1.37),
		edge("JPY", "USD", 0.0091),
	}
}
