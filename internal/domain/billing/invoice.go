package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// Invoice represents a transport invoice raised against a party.
// It is the aggregate root for invoice-related operations and owns its
// item list exclusively: replacing the items replaces the whole set.
//
// The party name/address/GST are denormalized snapshots taken at invoice
// time so that historical invoices render correctly even if the Client
// record changes later.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNo        string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate      *time.Time       `gorm:"type:date;index"`
	PartyID          *uuid.UUID       `gorm:"type:uuid;index"`
	PartyName        string           `gorm:"type:varchar(200)"`
	PartyAddress     string           `gorm:"type:varchar(500)"`
	PartyGST         string           `gorm:"type:varchar(20)"`
	HaltingCharges   decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	LoadingCharges   decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	UnloadingCharges decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	AmountInWords    string           `gorm:"type:varchar(500)"`
	Remarks          string           `gorm:"type:varchar(1000)"`
	Items            []InvoiceItem    `gorm:"-"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a single shipment leg (lorry receipt) on an invoice.
// Items are value objects owned by their invoice; ordering is insertion
// order and is preserved in rendering.
type InvoiceItem struct {
	ID               uuid.UUID
	LRNo             string
	LRDate           *time.Time
	FromLocation     string
	ToLocation       string
	GoodsDescription string
	PackageType      string
	PackageCount     int
	VehicleNumber    string
	VehicleType      string
	Amount           decimal.Decimal
}

// NewInvoice creates a new invoice with the given business key
func NewInvoice(invoiceNo string) (*Invoice, error) {
	if err := validateInvoiceNo(invoiceNo); err != nil {
		return nil, err
	}
	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNo:         invoiceNo,
		HaltingCharges:    decimal.Zero,
		LoadingCharges:    decimal.Zero,
		UnloadingCharges:  decimal.Zero,
	}, nil
}

// SetInvoiceNo changes the invoice's business key
func (inv *Invoice) SetInvoiceNo(invoiceNo string) error {
	if err := validateInvoiceNo(invoiceNo); err != nil {
		return err
	}
	inv.InvoiceNo = invoiceNo
	inv.touch()
	return nil
}

// SetParty records the billed party, both the optional link to a Client
// and the denormalized snapshot used for rendering.
func (inv *Invoice) SetParty(partyID *uuid.UUID, name, address, gst string) {
	inv.PartyID = partyID
	inv.PartyName = name
	inv.PartyAddress = address
	inv.PartyGST = gst
	inv.touch()
}

// SetCharges sets the three surcharge fields. Each must be non-negative.
func (inv *Invoice) SetCharges(halting, loading, unloading decimal.Decimal) error {
	if halting.IsNegative() || loading.IsNegative() || unloading.IsNegative() {
		return shared.NewDomainError("INVALID_CHARGES", "Charges cannot be negative")
	}
	inv.HaltingCharges = halting
	inv.LoadingCharges = loading
	inv.UnloadingCharges = unloading
	inv.touch()
	return nil
}

// SetTotal sets the caller-supplied total amount. A nil total means the
// rendered total falls back to the sum of item amounts.
func (inv *Invoice) SetTotal(total *decimal.Decimal) error {
	if total != nil && total.IsNegative() {
		return shared.NewDomainError("INVALID_TOTAL", "Total amount cannot be negative")
	}
	inv.TotalAmount = total
	inv.touch()
	return nil
}

// ReplaceItems replaces the invoice's item list wholesale. There is no
// partial merge: the given slice becomes the owned item set, in order.
func (inv *Invoice) ReplaceItems(items []InvoiceItem) error {
	for i := range items {
		if items[i].Amount.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", "Item amount cannot be negative")
		}
		if items[i].PackageCount < 0 {
			return shared.NewDomainError("INVALID_PACKAGE_COUNT", "Package count cannot be negative")
		}
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	inv.Items = items
	inv.touch()
	return nil
}

// ItemsTotal returns the decimal sum of all item amounts, zero when the
// item list is empty. Summation stays in decimal; no float drift.
func (inv *Invoice) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// DisplayTotal returns the amount shown as the invoice's grand total:
// the stored total when present, otherwise the sum of item amounts.
// A stored total is never overridden by the item sum.
func (inv *Invoice) DisplayTotal() decimal.Decimal {
	if inv.TotalAmount != nil {
		return *inv.TotalAmount
	}
	return inv.ItemsTotal()
}

func (inv *Invoice) touch() {
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
}

func validateInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return shared.NewDomainError("INVALID_INVOICE_NO", "Invoice number cannot be empty")
	}
	if len(invoiceNo) > 50 {
		return shared.NewDomainError("INVALID_INVOICE_NO", "Invoice number cannot exceed 50 characters")
	}
	return nil
}
