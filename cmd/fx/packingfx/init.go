package packingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	NewPackingService, NewTripTypeRepo)

func NewPackingService(repo repositories.TripTypeRepository, newID utils.IDGenerator) services.PackingServiceInterface {
	return services.NewPackingService(repo, newID)
}

func NewTripTypeRepo(db *gorm.DB) repositories.TripTypeRepository {
	return repositories.NewTripTypeRepository(db)
}
