package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shriramlogistics/backend/internal/domain/billing"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	AggregateModel
	Name      string `gorm:"type:varchar(200);not null"`
	Address   string `gorm:"type:varchar(500)"`
	GSTNumber string `gorm:"type:varchar(20);index"`
	Phone     string `gorm:"type:varchar(20)"`
	Email     string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *billing.Client {
	return &billing.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
		GSTNumber:         m.GSTNumber,
		Phone:             m.Phone,
		Email:             m.Email,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *billing.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Address = c.Address
	m.GSTNumber = c.GSTNumber
	m.Phone = c.Phone
	m.Email = c.Email
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *billing.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	AggregateModel
	InvoiceNo        string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate      *time.Time         `gorm:"type:date;index"`
	PartyID          *uuid.UUID         `gorm:"type:uuid;index"`
	PartyName        string             `gorm:"type:varchar(200)"`
	PartyAddress     string             `gorm:"type:varchar(500)"`
	PartyGST         string             `gorm:"type:varchar(20)"`
	HaltingCharges   decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	LoadingCharges   decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	UnloadingCharges decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount      *decimal.Decimal   `gorm:"type:decimal(12,2)"`
	AmountInWords    string             `gorm:"type:varchar(500)"`
	Remarks          string             `gorm:"type:varchar(1000)"`
	Items            []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel is the persistence model for a single invoice line.
// Position records the insertion order of the item within its invoice.
type InvoiceItemModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"not null;default:0"`
	LRNo             string          `gorm:"type:varchar(50);index"`
	LRDate           *time.Time      `gorm:"type:date"`
	FromLocation     string          `gorm:"type:varchar(200)"`
	ToLocation       string          `gorm:"type:varchar(200)"`
	GoodsDescription string          `gorm:"type:varchar(500)"`
	PackageType      string          `gorm:"type:varchar(100)"`
	PackageCount     int             `gorm:"not null;default:0"`
	VehicleNumber    string          `gorm:"type:varchar(50)"`
	VehicleType      string          `gorm:"type:varchar(100)"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain Invoice aggregate,
// items in position order.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvoiceNo:         m.InvoiceNo,
		InvoiceDate:       m.InvoiceDate,
		PartyID:           m.PartyID,
		PartyName:         m.PartyName,
		PartyAddress:      m.PartyAddress,
		PartyGST:          m.PartyGST,
		HaltingCharges:    m.HaltingCharges,
		LoadingCharges:    m.LoadingCharges,
		UnloadingCharges:  m.UnloadingCharges,
		TotalAmount:       m.TotalAmount,
		AmountInWords:     m.AmountInWords,
		Remarks:           m.Remarks,
	}
	if len(m.Items) > 0 {
		inv.Items = make([]billing.InvoiceItem, len(m.Items))
		for i, item := range m.Items {
			inv.Items[i] = item.ToDomain()
		}
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice aggregate.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.InvoiceNo = inv.InvoiceNo
	m.InvoiceDate = inv.InvoiceDate
	m.PartyID = inv.PartyID
	m.PartyName = inv.PartyName
	m.PartyAddress = inv.PartyAddress
	m.PartyGST = inv.PartyGST
	m.HaltingCharges = inv.HaltingCharges
	m.LoadingCharges = inv.LoadingCharges
	m.UnloadingCharges = inv.UnloadingCharges
	m.TotalAmount = inv.TotalAmount
	m.AmountInWords = inv.AmountInWords
	m.Remarks = inv.Remarks
	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = InvoiceItemModelFromDomain(inv.GetID(), i, item)
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// ToDomain converts the persistence model to a domain InvoiceItem value object.
func (m *InvoiceItemModel) ToDomain() billing.InvoiceItem {
	return billing.InvoiceItem{
		ID:               m.ID,
		LRNo:             m.LRNo,
		LRDate:           m.LRDate,
		FromLocation:     m.FromLocation,
		ToLocation:       m.ToLocation,
		GoodsDescription: m.GoodsDescription,
		PackageType:      m.PackageType,
		PackageCount:     m.PackageCount,
		VehicleNumber:    m.VehicleNumber,
		VehicleType:      m.VehicleType,
		Amount:           m.Amount,
	}
}

// InvoiceItemModelFromDomain creates a persistence model from a domain InvoiceItem.
func InvoiceItemModelFromDomain(invoiceID uuid.UUID, position int, item billing.InvoiceItem) InvoiceItemModel {
	id := item.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return InvoiceItemModel{
		ID:               id,
		InvoiceID:        invoiceID,
		Position:         position,
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
