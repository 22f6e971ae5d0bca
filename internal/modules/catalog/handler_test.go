package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kejaspace/internal/database"
	"kejaspace/internal/domain"
	"kejaspace/internal/repository"
)

func setupRouter(t *testing.T, store repository.Storage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(store))

	r := gin.New()
	api := r.Group("/api")
	handler.RegisterRoutes(api)

	protected := api.Group("/")
	protected.Use(func(c *gin.Context) { c.Set("account_id", "acct-1") })
	handler.RegisterProtected(protected)

	return r
}

func setupDBRouter(t *testing.T) (*gin.Engine, *repository.DatabaseStorage) {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	store := repository.NewDatabaseStorage(db)
	require.NoError(t, store.AutoMigrate())

	return setupRouter(t, store), store
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestGetProperties_EmptyListIsJSONArray(t *testing.T) {
	r, _ := setupDBRouter(t)

	w := doRequest(r, http.MethodGet, "/api/properties", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProperties_TypeFilterAndWireShape(t *testing.T) {
	r, store := setupDBRouter(t)

	p := domain.Property{
		Title: "Kilimani Flat", Location: "Nairobi", Price: 65000,
		PriceType: domain.PricePerMonth, Image: "https://example.com/a.jpg",
		Type: domain.PropertyRental,
		Management: domain.Management{Kind: domain.ManagedByLandlord, Name: "Jane", Verified: true},
	}
	require.NoError(t, store.CreateProperty(context.Background(), &p))

	w := doRequest(r, http.MethodGet, "/api/properties?type=rental", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)

	// Management serializes as the flat legacy columns.
	assert.Equal(t, "landlord", got[0]["managed_by"])
	assert.Equal(t, "Jane", got[0]["landlord_name"])
	assert.Equal(t, true, got[0]["landlord_verified"])
	_, hasAgency := got[0]["agency_name"]
	assert.False(t, hasAgency)

	w = doRequest(r, http.MethodGet, "/api/properties?type=office", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProperty_NotFound(t *testing.T) {
	r, _ := setupDBRouter(t)

	w := doRequest(r, http.MethodGet, "/api/properties/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", errorBody(t, w))
}

func TestGetMarketplaceItem_NotFound(t *testing.T) {
	r, _ := setupDBRouter(t)

	w := doRequest(r, http.MethodGet, "/api/marketplace-items/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Marketplace item not found", errorBody(t, w))
}

func TestGetMovingService_NotFound(t *testing.T) {
	r, _ := setupDBRouter(t)

	w := doRequest(r, http.MethodGet, "/api/moving-services/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Moving service not found", errorBody(t, w))
}

func TestCreateProperty(t *testing.T) {
	r, store := setupDBRouter(t)

	w := doRequest(r, http.MethodPost, "/api/properties", map[string]interface{}{
		"title": "New Flat", "location": "Nairobi", "price": 30000,
		"price_type": "month", "image": "https://example.com/x.jpg", "type": "rental",
		"managed_by": "agency", "agency_name": "Acme", "agency_verified": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.ManagedByAgency, created.Management.Kind)

	stored, err := store.GetProperty(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Flat", stored.Title)
}

func TestCreateProperty_ValidationFailure(t *testing.T) {
	r, _ := setupDBRouter(t)

	// price_type outside the enum.
	w := doRequest(r, http.MethodPost, "/api/properties", map[string]interface{}{
		"title": "X", "location": "Y", "price": 100,
		"price_type": "week", "image": "https://example.com/x.jpg", "type": "rental",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", errorBody(t, w))
}

func TestUpdateProperty_PartialAndNotFound(t *testing.T) {
	r, store := setupDBRouter(t)

	p := domain.Property{
		Title: "Before", Location: "Nairobi", Price: 100,
		PriceType: domain.PricePerMonth, Image: "https://example.com/a.jpg",
		Type: domain.PropertyRental,
	}
	require.NoError(t, store.CreateProperty(context.Background(), &p))

	w := doRequest(r, http.MethodPatch, "/api/properties/"+p.ID, map[string]interface{}{"title": "After"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 100.0, updated.Price, "untouched fields survive")

	w = doRequest(r, http.MethodPatch, "/api/properties/nope", map[string]interface{}{"title": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", errorBody(t, w))
}

func TestDeleteProperty(t *testing.T) {
	r, store := setupDBRouter(t)

	p := domain.Property{
		Title: "Doomed", Location: "Nairobi", Price: 100,
		PriceType: domain.PricePerMonth, Image: "https://example.com/a.jpg",
		Type: domain.PropertyRental,
	}
	require.NoError(t, store.CreateProperty(context.Background(), &p))

	w := doRequest(r, http.MethodDelete, "/api/properties/"+p.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	gone, err := store.GetProperty(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

// failingStore overrides the read paths to simulate a broken backing
// store. Everything else panics via the embedded nil interface, which
// is fine: these tests only hit the overridden methods.
type failingStore struct {
	repository.Storage
}

func (failingStore) GetProperties(context.Context, repository.PropertyFilters) ([]domain.Property, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) SearchProperties(context.Context, string, repository.PropertySearch) ([]domain.Property, error) {
	return nil, errors.New("connection refused")
}

func TestGetProperties_StoreErrorIsA500NotAnEmptyList(t *testing.T) {
	r := setupRouter(t, failingStore{})

	w := doRequest(r, http.MethodGet, "/api/properties", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch properties", errorBody(t, w))

	w = doRequest(r, http.MethodGet, "/api/properties/search?q=x", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to search properties", errorBody(t, w))
}
