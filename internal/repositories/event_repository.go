package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type EventRepository interface {
	List(ctx context.Context) ([]db_models.ItineraryEvent, error)
	GetByID(ctx context.Context, id string) (*db_models.ItineraryEvent, error)
	Create(ctx context.Context, event *db_models.ItineraryEvent) error
	Update(ctx context.Context, event *db_models.ItineraryEvent) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context) ([]db_models.ItineraryEvent, error) {
	var events []db_models.ItineraryEvent
	err := r.db.WithContext(ctx).
		Order("date asc, time asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*db_models.ItineraryEvent, error) {
	var event db_models.ItineraryEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *db_models.ItineraryEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.ItineraryEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.ItineraryEvent{}, "id = ?", id).Error
}
