package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

func TestClientServiceCreate(t *testing.T) {
	t.Run("creates client with all fields", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*billing.Client")).Return(nil)

		resp, err := service.Create(context.Background(), CreateClientRequest{
			Name:      "Acme Traders",
			Address:   "12 Market Road, Chennai",
			GSTNumber: "33AAACA1234A1Z5",
			Phone:     "044-12345678",
			Email:     "accounts@acme.example",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Traders", resp.Name)
		assert.Equal(t, "33AAACA1234A1Z5", resp.GSTNumber)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		_, err := service.Create(context.Background(), CreateClientRequest{Name: "  "})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("propagates save error", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := service.Create(context.Background(), CreateClientRequest{Name: "Acme"})
		require.Error(t, err)
	})
}

func TestClientServiceGetByID(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	client, err := billing.NewClient("Acme Traders")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

	resp, err := service.GetByID(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, resp.ID)
	assert.Equal(t, "Acme Traders", resp.Name)

	t.Run("not found", func(t *testing.T) {
		missing := uuid.New()
		repo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(context.Background(), missing)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestClientServiceList(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	client, err := billing.NewClient("Acme Traders")
	require.NoError(t, err)

	expectedFilter := shared.Filter{Page: 1, PageSize: 20, OrderBy: "name", OrderDir: "asc"}
	repo.On("FindAll", mock.Anything, expectedFilter).Return([]billing.Client{*client}, nil)
	repo.On("Count", mock.Anything, expectedFilter).Return(int64(1), nil)

	responses, total, err := service.List(context.Background(), ClientListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "Acme Traders", responses[0].Name)
	repo.AssertExpectations(t)
}

func TestClientServiceSearch(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	client, err := billing.NewClient("Acme Traders")
	require.NoError(t, err)

	repo.On("Search", mock.Anything, "Acme", mock.AnythingOfType("shared.Filter")).
		Return([]billing.Client{*client}, nil)

	responses, err := service.Search(context.Background(), "Acme", ClientListFilter{})
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Acme Traders", responses[0].Name)
}

func TestClientServiceUpdate(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		client, err := billing.NewClient("Acme Traders")
		require.NoError(t, err)
		require.NoError(t, client.Update("Acme Traders", "Old Address", "33AAACA1234A1Z5", "", ""))

		repo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		repo.On("Save", mock.Anything, client).Return(nil)

		newAddress := "New Address"
		resp, err := service.Update(context.Background(), client.ID, UpdateClientRequest{
			Address: &newAddress,
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Traders", resp.Name)
		assert.Equal(t, "New Address", resp.Address)
		assert.Equal(t, "33AAACA1234A1Z5", resp.GSTNumber)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		client, err := billing.NewClient("Acme Traders")
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		bad := "not-an-email"
		_, err = service.Update(context.Background(), client.ID, UpdateClientRequest{Email: &bad})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestClientServiceDelete(t *testing.T) {
	repo := new(MockClientRepository)
	service := NewClientService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, service.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
