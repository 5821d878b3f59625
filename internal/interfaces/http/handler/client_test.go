package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	billingapp "github.com/shriramlogistics/backend/internal/application/billing"
	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// MockClientRepository implements billing.ClientRepository for testing
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Client), args.Error(1)
}

func (m *MockClientRepository) Search(ctx context.Context, query string, filter shared.Filter) ([]billing.Client, error) {
	args := m.Called(ctx, query, filter)
	return args.Get(0).([]billing.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *billing.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// Test setup helpers

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupClientHandler(clientRepo *MockClientRepository) *ClientHandler {
	return NewClientHandler(billingapp.NewClientService(clientRepo))
}

func createTestClient() *billing.Client {
	client, _ := billing.NewClient("Acme Traders")
	client.Update("Acme Traders", "12 Market Road, Chennai", "33AAACA1234A1Z5", "9840012345", "")
	return client
}

// Tests

func TestClientHandler_Create_Success(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	clientRepo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Client")).Return(nil)

	router := setupTestRouter()
	router.POST("/clients", handler.Create)

	body, _ := json.Marshal(billingapp.CreateClientRequest{
		Name:      "Acme Traders",
		Address:   "12 Market Road, Chennai",
		GSTNumber: "33AAACA1234A1Z5",
	})

	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	clientRepo.AssertExpectations(t)
}

func TestClientHandler_Create_MissingName(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	router := setupTestRouter()
	router.POST("/clients", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBufferString(`{"address": "somewhere"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	clientRepo.AssertNotCalled(t, "Save")
}

func TestClientHandler_GetByID_Success(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	client := createTestClient()
	clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

	router := setupTestRouter()
	router.GET("/clients/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+client.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                      `json:"success"`
		Data    billingapp.ClientResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Acme Traders", resp.Data.Name)
}

func TestClientHandler_GetByID_NotFound(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	clientID := uuid.New()
	clientRepo.On("FindByID", mock.Anything, clientID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.GET("/clients/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_GetByID_InvalidID(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	router := setupTestRouter()
	router.GET("/clients/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/clients/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	clientRepo.AssertNotCalled(t, "FindByID")
}

func TestClientHandler_List_Success(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	clientRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]billing.Client{*createTestClient()}, nil)
	clientRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	router := setupTestRouter()
	router.GET("/clients", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/clients?page=1&page_size=20", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Meta    struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Meta.Total)
}

func TestClientHandler_Search_RequiresQuery(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	router := setupTestRouter()
	router.GET("/clients/search", handler.Search)

	req := httptest.NewRequest(http.MethodGet, "/clients/search", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	clientRepo.AssertNotCalled(t, "Search")
}

func TestClientHandler_Update_Success(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	client := createTestClient()
	clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	clientRepo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Client")).Return(nil)

	router := setupTestRouter()
	router.PUT("/clients/:id", handler.Update)

	req := httptest.NewRequest(http.MethodPut, "/clients/"+client.ID.String(),
		bytes.NewBufferString(`{"phone": "9840099999"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	clientRepo.AssertExpectations(t)
}

func TestClientHandler_Delete_Success(t *testing.T) {
	clientRepo := new(MockClientRepository)
	handler := setupClientHandler(clientRepo)

	client := createTestClient()
	clientRepo.On("Delete", mock.Anything, client.ID).Return(nil)

	router := setupTestRouter()
	router.DELETE("/clients/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+client.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	clientRepo.AssertExpectations(t)
}
