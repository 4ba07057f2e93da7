package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type TripTypeRepository interface {
	GetAll(ctx context.Context) ([]db_models.TripType, error)
	GetByID(ctx context.Context, id string) (*db_models.TripType, error)

	// ReplaceItems persists a trip type's whole item list as one unit.
	// The packing domain mutates lists read-modify-write, so the previous
	// rows are dropped and the new list inserted inside one transaction.
	ReplaceItems(ctx context.Context, tripTypeID string, items []db_models.PackingItem) error
}

type tripTypeRepository struct {
	db *gorm.DB
}

func NewTripTypeRepository(db *gorm.DB) TripTypeRepository {
	return &tripTypeRepository{db: db}
}

func (r *tripTypeRepository) GetAll(ctx context.Context) ([]db_models.TripType, error) {
	var tripTypes []db_models.TripType
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Order("position asc").
		Find(&tripTypes).Error
	if err != nil {
		return nil, err
	}
	return tripTypes, nil
}

func (r *tripTypeRepository) GetByID(ctx context.Context, id string) (*db_models.TripType, error) {
	var tripType db_models.TripType
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&tripType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tripType, nil
}

func (r *tripTypeRepository) ReplaceItems(ctx context.Context, tripTypeID string, items []db_models.PackingItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_type_id = ?", tripTypeID).
			Delete(&db_models.PackingItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
