package partner

import (
	"regexp"
	"strings"

	"github.com/myorder/backend/internal/domain/shared"
)

// Customer represents a buying party in the partner context.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseEntity
	Code          string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	IsActive      bool
}

// NewCustomer creates a new customer with required fields
func NewCustomer(code, name string) (*Customer, error) {
	if err := validatePartnerCode(code); err != nil {
		return nil, err
	}
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(strings.TrimSpace(code)),
		Name:       strings.TrimSpace(name),
		IsActive:   true,
	}, nil
}

// Update updates the customer's name
func (c *Customer) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Touch()
	return nil
}

// UpdateCode changes the customer code
func (c *Customer) UpdateCode(code string) error {
	if err := validatePartnerCode(code); err != nil {
		return err
	}
	c.Code = strings.ToUpper(strings.TrimSpace(code))
	c.Touch()
	return nil
}

// SetContactPerson sets the primary contact person
func (c *Customer) SetContactPerson(contactPerson string) error {
	if len(contactPerson) > 100 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact person cannot exceed 100 characters")
	}
	c.ContactPerson = strings.TrimSpace(contactPerson)
	c.Touch()
	return nil
}

// SetEmail sets the customer's email
func (c *Customer) SetEmail(email string) error {
	if email != "" {
		if err := validatePartnerEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}
	c.Email = email
	c.Touch()
	return nil
}

// SetPhone sets the customer's phone number
func (c *Customer) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	c.Phone = strings.TrimSpace(phone)
	c.Touch()
	return nil
}

// SetAddress sets the customer's address
func (c *Customer) SetAddress(address string) {
	c.Address = strings.TrimSpace(address)
	c.Touch()
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	c.IsActive = true
	c.Touch()
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.Touch()
}

// Validation functions shared by partner aggregates

func validatePartnerCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}

	codeRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
	if !codeRegex.MatchString(code) {
		return shared.NewDomainError("INVALID_CODE", "Code can only contain letters, numbers, underscores, and hyphens")
	}

	return nil
}

func validatePartnerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePartnerEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}
