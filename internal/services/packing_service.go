package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// DefaultItemCategory is applied when a new packing item arrives without a
// category tag.
const DefaultItemCategory = "custom"

type PackingServiceInterface interface {
	ListTripTypes(ctx context.Context) ([]response_models.TripTypeResponse, error)
	GetTripType(ctx context.Context, id string) (*response_models.TripTypeResponse, error)
	AddItem(ctx context.Context, tripTypeID, name, category string) (*response_models.PackingItemResponse, error)
	SetItemPacked(ctx context.Context, tripTypeID, itemID string, packed bool) (*response_models.PackingItemResponse, error)
	RemoveItem(ctx context.Context, tripTypeID, itemID string) error
}

// PackingService mutates a trip type's checklist read-modify-write: every
// change loads the full item list, edits it in memory, and writes the whole
// list back as one unit. Two concurrent writers to the same trip type race
// and the last write wins, which is acceptable for a single-user planner.
type PackingService struct {
	tripTypeRepo repositories.TripTypeRepository
	newID        utils.IDGenerator
}

func NewPackingService(tripTypeRepo repositories.TripTypeRepository, newID utils.IDGenerator) PackingServiceInterface {
	return &PackingService{
		tripTypeRepo: tripTypeRepo,
		newID:        newID,
	}
}

func (p *PackingService) ListTripTypes(ctx context.Context) ([]response_models.TripTypeResponse, error) {
	tripTypes, err := p.tripTypeRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripTypeResponse, 0, len(tripTypes))
	for _, tripType := range tripTypes {
		responses = append(responses, toTripTypeResponse(&tripType))
	}
	return responses, nil
}

func (p *PackingService) GetTripType(ctx context.Context, id string) (*response_models.TripTypeResponse, error) {
	tripType, err := p.loadTripType(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toTripTypeResponse(tripType)
	return &response, nil
}

func (p *PackingService) AddItem(ctx context.Context, tripTypeID, name, category string) (*response_models.PackingItemResponse, error) {
	tripType, err := p.loadTripType(ctx, tripTypeID)
	if err != nil {
		return nil, err
	}

	if category == "" {
		category = DefaultItemCategory
	}

	item := db_models.PackingItem{
		ID:         p.newID(),
		TripTypeID: tripTypeID,
		Name:       name,
		Category:   category,
		Packed:     false,
		Position:   nextPosition(tripType.Items),
	}
	items := append(tripType.Items, item)

	if err := p.tripTypeRepo.ReplaceItems(ctx, tripTypeID, items); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toPackingItemResponse(item)
	return &response, nil
}

func (p *PackingService) SetItemPacked(ctx context.Context, tripTypeID, itemID string, packed bool) (*response_models.PackingItemResponse, error) {
	tripType, err := p.loadTripType(ctx, tripTypeID)
	if err != nil {
		return nil, err
	}

	found := -1
	for i := range tripType.Items {
		if tripType.Items[i].ID == itemID {
			found = i
			break
		}
	}
	if found < 0 {
		return nil, utils.ErrPackingItemNotFound
	}

	tripType.Items[found].Packed = packed
	if err := p.tripTypeRepo.ReplaceItems(ctx, tripTypeID, tripType.Items); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toPackingItemResponse(tripType.Items[found])
	return &response, nil
}

func (p *PackingService) RemoveItem(ctx context.Context, tripTypeID, itemID string) error {
	tripType, err := p.loadTripType(ctx, tripTypeID)
	if err != nil {
		return err
	}

	remaining := make([]db_models.PackingItem, 0, len(tripType.Items))
	for _, item := range tripType.Items {
		if item.ID != itemID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(tripType.Items) {
		return utils.ErrPackingItemNotFound
	}

	if err := p.tripTypeRepo.ReplaceItems(ctx, tripTypeID, remaining); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PackingService) loadTripType(ctx context.Context, id string) (*db_models.TripType, error) {
	tripType, err := p.tripTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tripType == nil {
		return nil, utils.ErrTripTypeNotFound
	}
	return tripType, nil
}

// nextPosition keeps insertion order stable even after removals leave
// gaps in the position sequence.
func nextPosition(items []db_models.PackingItem) int {
	next := 0
	for _, item := range items {
		if item.Position >= next {
			next = item.Position + 1
		}
	}
	return next
}

func toTripTypeResponse(tripType *db_models.TripType) response_models.TripTypeResponse {
	items := make([]response_models.PackingItemResponse, 0, len(tripType.Items))
	for _, item := range tripType.Items {
		items = append(items, toPackingItemResponse(item))
	}
	return response_models.TripTypeResponse{
		ID:    tripType.ID,
		Name:  tripType.Name,
		Icon:  tripType.Icon,
		Color: tripType.Color,
		Items: items,
	}
}

func toPackingItemResponse(item db_models.PackingItem) response_models.PackingItemResponse {
	return response_models.PackingItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Packed:   item.Packed,
	}
}
