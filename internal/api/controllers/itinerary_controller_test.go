package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type stubItineraryService struct {
	events     []response_models.EventResponse
	event      *response_models.EventResponse
	err        error
	lastUpdate request_models.UpdateEventRequest
}

func (s *stubItineraryService) ListEvents(ctx context.Context) ([]response_models.EventResponse, error) {
	return s.events, s.err
}

func (s *stubItineraryService) CreateEvent(ctx context.Context, req request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	return s.event, s.err
}

func (s *stubItineraryService) UpdateEvent(ctx context.Context, id string, req request_models.UpdateEventRequest) (*response_models.EventResponse, error) {
	s.lastUpdate = req
	return s.event, s.err
}

func (s *stubItineraryService) DeleteEvent(ctx context.Context, id string) error {
	return s.err
}

func itineraryRouter(svc *stubItineraryService) *gin.Engine {
	r := gin.New()
	ic := NewItineraryController(svc)
	r.GET("/events", ic.ListEventsHandler)
	r.POST("/events", ic.CreateEventHandler)
	r.PUT("/events/:id", ic.UpdateEventHandler)
	r.DELETE("/events/:id", ic.DeleteEventHandler)
	return r
}

func TestCreateEventHandler(t *testing.T) {
	svc := &stubItineraryService{event: &response_models.EventResponse{
		ID: "e1", Title: "Arrival", Type: "flight", Icon: "✈️",
	}}
	w := doRequest(t, itineraryRouter(svc), http.MethodPost, "/events",
		`{"title":"Arrival","date":"2025-08-01","time":"09:00","type":"flight"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
}

func TestCreateEventHandler_MissingRequiredFields(t *testing.T) {
	svc := &stubItineraryService{}
	w := doRequest(t, itineraryRouter(svc), http.MethodPost, "/events", `{"title":"No date"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEventHandler_PassesOnlyPresentFields(t *testing.T) {
	svc := &stubItineraryService{event: &response_models.EventResponse{ID: "e1"}}
	w := doRequest(t, itineraryRouter(svc), http.MethodPut, "/events/e1", `{"time":"16:30"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastUpdate.Time)
	assert.Equal(t, "16:30", *svc.lastUpdate.Time)
	assert.Nil(t, svc.lastUpdate.Title)
	assert.Nil(t, svc.lastUpdate.Date)
	assert.Nil(t, svc.lastUpdate.Type)
}

func TestUpdateEventHandler_NotFound(t *testing.T) {
	svc := &stubItineraryService{err: utils.ErrEventNotFound}
	w := doRequest(t, itineraryRouter(svc), http.MethodPut, "/events/missing", `{"title":"x"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Event not found", resp.Message)
}

func TestDeleteEventHandler_NotFound(t *testing.T) {
	svc := &stubItineraryService{err: utils.ErrEventNotFound}
	w := doRequest(t, itineraryRouter(svc), http.MethodDelete, "/events/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
