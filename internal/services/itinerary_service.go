package services

import (
	"context"
	"sort"
	"time"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// DefaultEventType is assumed when a new event arrives without a type.
const DefaultEventType = "activity"

// eventIcons maps an event type to the glyph shown on the timeline.
// Unknown types fall back to the activity icon.
var eventIcons = map[string]string{
	"flight":        "✈️",
	"accommodation": "🏨",
	"dining":        "🍽️",
	"activity":      "📅",
}

type ItineraryServiceInterface interface {
	ListEvents(ctx context.Context) ([]response_models.EventResponse, error)
	CreateEvent(ctx context.Context, req request_models.CreateEventRequest) (*response_models.EventResponse, error)
	UpdateEvent(ctx context.Context, id string, req request_models.UpdateEventRequest) (*response_models.EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error
}

type ItineraryService struct {
	eventRepo repositories.EventRepository
	newID     utils.IDGenerator
}

func NewItineraryService(eventRepo repositories.EventRepository, newID utils.IDGenerator) ItineraryServiceInterface {
	return &ItineraryService{
		eventRepo: eventRepo,
		newID:     newID,
	}
}

func (i *ItineraryService) ListEvents(ctx context.Context) ([]response_models.EventResponse, error) {
	events, err := i.eventRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Sorted here as well as in the repository so the chronological
	// guarantee does not depend on the storage backend.
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].Date != events[b].Date {
			return events[a].Date < events[b].Date
		}
		return events[a].Time < events[b].Time
	})

	responses := make([]response_models.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toEventResponse(&event))
	}
	return responses, nil
}

func (i *ItineraryService) CreateEvent(ctx context.Context, req request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	eventType := req.Type
	if eventType == "" {
		eventType = DefaultEventType
	}

	event := db_models.ItineraryEvent{
		ID:          i.newID(),
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Type:        eventType,
		Icon:        iconForType(eventType),
		CreatedAt:   time.Now().UTC(),
	}

	if err := i.eventRepo.Create(ctx, &event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toEventResponse(&event)
	return &response, nil
}

func (i *ItineraryService) UpdateEvent(ctx context.Context, id string, req request_models.UpdateEventRequest) (*response_models.EventResponse, error) {
	event, err := i.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Type != nil {
		// The icon keeps its creation-time value even when the type
		// changes. Original behavior, kept on purpose.
		event.Type = *req.Type
	}

	if err := i.eventRepo.Update(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toEventResponse(event)
	return &response, nil
}

func (i *ItineraryService) DeleteEvent(ctx context.Context, id string) error {
	event, err := i.eventRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	if err := i.eventRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func iconForType(eventType string) string {
	if icon, ok := eventIcons[eventType]; ok {
		return icon
	}
	return eventIcons[DefaultEventType]
}

func toEventResponse(event *db_models.ItineraryEvent) response_models.EventResponse {
	return response_models.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		Description: event.Description,
		Type:        event.Type,
		Icon:        event.Icon,
		CreatedAt:   event.CreatedAt,
	}
}
