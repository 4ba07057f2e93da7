package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPackingService returns canned values so the tests exercise only the
// HTTP mapping, never the domain logic.
type stubPackingService struct {
	tripTypes []response_models.TripTypeResponse
	tripType  *response_models.TripTypeResponse
	item      *response_models.PackingItemResponse
	err       error
}

func (s *stubPackingService) ListTripTypes(ctx context.Context) ([]response_models.TripTypeResponse, error) {
	return s.tripTypes, s.err
}

func (s *stubPackingService) GetTripType(ctx context.Context, id string) (*response_models.TripTypeResponse, error) {
	return s.tripType, s.err
}

func (s *stubPackingService) AddItem(ctx context.Context, tripTypeID, name, category string) (*response_models.PackingItemResponse, error) {
	return s.item, s.err
}

func (s *stubPackingService) SetItemPacked(ctx context.Context, tripTypeID, itemID string, packed bool) (*response_models.PackingItemResponse, error) {
	return s.item, s.err
}

func (s *stubPackingService) RemoveItem(ctx context.Context, tripTypeID, itemID string) error {
	return s.err
}

func packingRouter(svc *stubPackingService) *gin.Engine {
	r := gin.New()
	pc := NewPackingController(svc)
	r.GET("/trip-types", pc.ListTripTypesHandler)
	r.GET("/trip-types/:id", pc.GetTripTypeHandler)
	r.POST("/trip-types/:id/items", pc.AddItemHandler)
	r.PUT("/trip-types/:id/items/:itemId", pc.UpdateItemHandler)
	r.DELETE("/trip-types/:id/items/:itemId", pc.DeleteItemHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListTripTypesHandler(t *testing.T) {
	svc := &stubPackingService{tripTypes: []response_models.TripTypeResponse{
		{ID: "beach", Name: "Beach Getaway", Items: []response_models.PackingItemResponse{}},
	}}
	w := doRequest(t, packingRouter(svc), http.MethodGet, "/trip-types", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
}

func TestGetTripTypeHandler_NotFound(t *testing.T) {
	svc := &stubPackingService{err: utils.ErrTripTypeNotFound}
	w := doRequest(t, packingRouter(svc), http.MethodGet, "/trip-types/safari", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Trip type not found", resp.Message)
}

func TestAddItemHandler(t *testing.T) {
	svc := &stubPackingService{item: &response_models.PackingItemResponse{
		ID: "abc", Name: "Snorkel", Category: "gear",
	}}
	w := doRequest(t, packingRouter(svc), http.MethodPost, "/trip-types/beach/items",
		`{"name":"Snorkel","category":"gear"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddItemHandler_MissingName(t *testing.T) {
	svc := &stubPackingService{}
	w := doRequest(t, packingRouter(svc), http.MethodPost, "/trip-types/beach/items",
		`{"category":"gear"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemHandler_MissingPackedFlag(t *testing.T) {
	svc := &stubPackingService{}
	w := doRequest(t, packingRouter(svc), http.MethodPut, "/trip-types/beach/items/abc", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemHandler_PackedFalseIsValid(t *testing.T) {
	// packed:false must bind; a plain bool field would fail required
	svc := &stubPackingService{item: &response_models.PackingItemResponse{ID: "abc"}}
	w := doRequest(t, packingRouter(svc), http.MethodPut, "/trip-types/beach/items/abc",
		`{"packed":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteItemHandler_NotFound(t *testing.T) {
	svc := &stubPackingService{err: utils.ErrPackingItemNotFound}
	w := doRequest(t, packingRouter(svc), http.MethodDelete, "/trip-types/beach/items/zzz", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Packing item not found", resp.Message)
}
