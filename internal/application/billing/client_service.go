package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo billing.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo billing.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := billing.NewClient(req.Name)
	if err != nil {
		return nil, err
	}

	if req.Address != "" || req.GSTNumber != "" || req.Phone != "" || req.Email != "" {
		if err := client.Update(req.Name, req.Address, req.GSTNumber, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// Search retrieves clients whose name or GST number matches the query
func (s *ClientService) Search(ctx context.Context, query string, filter ClientListFilter) ([]ClientResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}

	clients, err := s.clientRepo.Search(ctx, query, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToClientResponses(clients), nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	name := client.Name
	address := client.Address
	gstNumber := client.GSTNumber
	phone := client.Phone
	email := client.Email

	if req.Name != nil {
		name = *req.Name
	}
	if req.Address != nil {
		address = *req.Address
	}
	if req.GSTNumber != nil {
		gstNumber = *req.GSTNumber
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}

	if err := client.Update(name, address, gstNumber, phone, email); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete deletes a client
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	return s.clientRepo.Delete(ctx, clientID)
}
