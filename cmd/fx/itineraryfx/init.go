package itineraryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	NewItineraryService, NewEventRepo)

func NewItineraryService(repo repositories.EventRepository, newID utils.IDGenerator) services.ItineraryServiceInterface {
	return services.NewItineraryService(repo, newID)
}

func NewEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}
