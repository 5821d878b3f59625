package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shriramlogistics/backend/internal/domain/billing"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Address   string `json:"address" binding:"max=500"`
	GSTNumber string `json:"gst_number" binding:"max=20"`
	Phone     string `json:"phone" binding:"max=20"`
	Email     string `json:"email" binding:"omitempty,email,max=100"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address   *string `json:"address" binding:"omitempty,max=500"`
	GSTNumber *string `json:"gst_number" binding:"omitempty,max=20"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	GSTNumber string    `json:"gst_number"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *billing.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		GSTNumber: c.GSTNumber,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

// ToClientResponses converts a slice of domain clients to response DTOs
func ToClientResponses(clients []billing.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceItemRequest represents one shipment leg in a create/update request
type InvoiceItemRequest struct {
	LRNo             string          `json:"lr_no" binding:"max=50"`
	LRDate           *time.Time      `json:"lr_date"`
	FromLocation     string          `json:"from_location" binding:"max=200"`
	ToLocation       string          `json:"to_location" binding:"max=200"`
	GoodsDescription string          `json:"goods_description" binding:"max=500"`
	PackageType      string          `json:"package_type" binding:"max=100"`
	PackageCount     int             `json:"package_count" binding:"omitempty,min=0"`
	VehicleNumber    string          `json:"vehicle_number" binding:"max=50"`
	VehicleType      string          `json:"vehicle_type" binding:"max=50"`
	Amount           decimal.Decimal `json:"amount"`
}

// CreateInvoiceRequest represents a request to create a new invoice
type CreateInvoiceRequest struct {
	InvoiceNo        string               `json:"invoice_no" binding:"required,min=1,max=50"`
	InvoiceDate      *time.Time           `json:"invoice_date"`
	ClientID         *uuid.UUID           `json:"client_id"`
	PartyName        string               `json:"party_name" binding:"max=200"`
	PartyAddress     string               `json:"party_address" binding:"max=500"`
	PartyGST         string               `json:"party_gst" binding:"max=20"`
	HaltingCharges   decimal.Decimal      `json:"halting_charges"`
	LoadingCharges   decimal.Decimal      `json:"loading_charges"`
	UnloadingCharges decimal.Decimal      `json:"unloading_charges"`
	TotalAmount      *decimal.Decimal     `json:"total_amount"`
	AmountInWords    string               `json:"amount_in_words" binding:"max=500"`
	Remarks          string               `json:"remarks" binding:"max=1000"`
	Items            []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest represents a request to update an invoice.
// Nil fields are left unchanged; a non-nil Items slice replaces the
// item set wholesale.
type UpdateInvoiceRequest struct {
	InvoiceNo        *string              `json:"invoice_no" binding:"omitempty,min=1,max=50"`
	InvoiceDate      *time.Time           `json:"invoice_date"`
	ClientID         *uuid.UUID           `json:"client_id"`
	PartyName        *string              `json:"party_name" binding:"omitempty,max=200"`
	PartyAddress     *string              `json:"party_address" binding:"omitempty,max=500"`
	PartyGST         *string              `json:"party_gst" binding:"omitempty,max=20"`
	HaltingCharges   *decimal.Decimal     `json:"halting_charges"`
	LoadingCharges   *decimal.Decimal     `json:"loading_charges"`
	UnloadingCharges *decimal.Decimal     `json:"unloading_charges"`
	TotalAmount      *decimal.Decimal     `json:"total_amount"`
	AmountInWords    *string              `json:"amount_in_words" binding:"omitempty,max=500"`
	Remarks          *string              `json:"remarks" binding:"omitempty,max=1000"`
	Items            []InvoiceItemRequest `json:"items"`
}

// InvoiceItemResponse represents one shipment leg in API responses
type InvoiceItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	LRNo             string          `json:"lr_no"`
	LRDate           *time.Time      `json:"lr_date"`
	FromLocation     string          `json:"from_location"`
	ToLocation       string          `json:"to_location"`
	GoodsDescription string          `json:"goods_description"`
	PackageType      string          `json:"package_type"`
	PackageCount     int             `json:"package_count"`
	VehicleNumber    string          `json:"vehicle_number"`
	VehicleType      string          `json:"vehicle_type"`
	Amount           decimal.Decimal `json:"amount"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID               uuid.UUID             `json:"id"`
	InvoiceNo        string                `json:"invoice_no"`
	InvoiceDate      *time.Time            `json:"invoice_date"`
	ClientID         *uuid.UUID            `json:"client_id"`
	PartyName        string                `json:"party_name"`
	PartyAddress     string                `json:"party_address"`
	PartyGST         string                `json:"party_gst"`
	HaltingCharges   decimal.Decimal       `json:"halting_charges"`
	LoadingCharges   decimal.Decimal       `json:"loading_charges"`
	UnloadingCharges decimal.Decimal       `json:"unloading_charges"`
	TotalAmount      *decimal.Decimal      `json:"total_amount"`
	ItemsTotal       decimal.Decimal       `json:"items_total"`
	DisplayTotal     decimal.Decimal       `json:"display_total"`
	AmountInWords    string                `json:"amount_in_words"`
	Remarks          string                `json:"remarks"`
	Items            []InvoiceItemResponse `json:"items"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	Version          int                   `json:"version"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	Search    string `form:"search"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:               item.ID,
			LRNo:             item.LRNo,
			LRDate:           item.LRDate,
			FromLocation:     item.FromLocation,
			ToLocation:       item.ToLocation,
			GoodsDescription: item.GoodsDescription,
			PackageType:      item.PackageType,
			PackageCount:     item.PackageCount,
			VehicleNumber:    item.VehicleNumber,
			VehicleType:      item.VehicleType,
			Amount:           item.Amount,
		}
	}

	return InvoiceResponse{
		ID:               inv.ID,
		InvoiceNo:        inv.InvoiceNo,
		InvoiceDate:      inv.InvoiceDate,
		ClientID:         inv.PartyID,
		PartyName:        inv.PartyName,
		PartyAddress:     inv.PartyAddress,
		PartyGST:         inv.PartyGST,
		HaltingCharges:   inv.HaltingCharges,
		LoadingCharges:   inv.LoadingCharges,
		UnloadingCharges: inv.UnloadingCharges,
		TotalAmount:      inv.TotalAmount,
		ItemsTotal:       inv.ItemsTotal(),
		DisplayTotal:     inv.DisplayTotal(),
		AmountInWords:    inv.AmountInWords,
		Remarks:          inv.Remarks,
		Items:            items,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
		Version:          inv.Version,
	}
}

// ToInvoiceResponses converts a slice of domain invoices to response DTOs
func ToInvoiceResponses(invoices []*billing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(inv)
	}
	return responses
}

// toDomainItems converts item requests to domain items
func toDomainItems(reqs []InvoiceItemRequest) []billing.InvoiceItem {
	items := make([]billing.InvoiceItem, len(reqs))
	for i, r := range reqs {
		items[i] = billing.InvoiceItem{
			LRNo:             r.LRNo,
			LRDate:           r.LRDate,
			FromLocation:     r.FromLocation,
			ToLocation:       r.ToLocation,
			GoodsDescription: r.GoodsDescription,
			PackageType:      r.PackageType,
			PackageCount:     r.PackageCount,
			VehicleNumber:    r.VehicleNumber,
			VehicleType:      r.VehicleType,
			Amount:           r.Amount,
		}
	}
	return items
}
