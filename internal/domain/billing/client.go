package billing

import (
	"regexp"
	"time"

	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// Client represents a billing party the company raises invoices against.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(200);not null"`
	Address   string `gorm:"type:varchar(500)"`
	GSTNumber string `gorm:"type:varchar(20);index"`
	Phone     string `gorm:"type:varchar(20)"`
	Email     string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(name string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Update updates the client's details
func (c *Client) Update(name, address, gstNumber, phone, email string) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	if gstNumber != "" && len(gstNumber) > 20 {
		return shared.NewDomainError("INVALID_GST", "GST number cannot exceed 20 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.Name = name
	c.Address = address
	c.GSTNumber = gstNumber
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateClientName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 20 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 100 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 100 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
