package partner

import (
	"strings"

	"github.com/myorder/backend/internal/domain/shared"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Supplier represents a supplying party in the partner context.
// It is the aggregate root for supplier-related operations.
type Supplier struct {
	shared.BaseEntity
	Code          string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Status        SupplierStatus
	Notes         string
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(code, name string) (*Supplier, error) {
	if err := validatePartnerCode(code); err != nil {
		return nil, err
	}
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(strings.TrimSpace(code)),
		Name:       strings.TrimSpace(name),
		Status:     SupplierStatusActive,
	}, nil
}

// Update updates the supplier's name
func (s *Supplier) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(name)
	s.Touch()
	return nil
}

// UpdateCode changes the supplier code
func (s *Supplier) UpdateCode(code string) error {
	if err := validatePartnerCode(code); err != nil {
		return err
	}
	s.Code = strings.ToUpper(strings.TrimSpace(code))
	s.Touch()
	return nil
}

// SetContactPerson sets the primary contact person
func (s *Supplier) SetContactPerson(contactPerson string) error {
	if len(contactPerson) > 100 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact person cannot exceed 100 characters")
	}
	s.ContactPerson = strings.TrimSpace(contactPerson)
	s.Touch()
	return nil
}

// SetEmail sets the supplier's email
func (s *Supplier) SetEmail(email string) error {
	if email != "" {
		if err := validatePartnerEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}
	s.Email = email
	s.Touch()
	return nil
}

// SetPhone sets the supplier's phone number
func (s *Supplier) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	s.Phone = strings.TrimSpace(phone)
	s.Touch()
	return nil
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address string) {
	s.Address = strings.TrimSpace(address)
	s.Touch()
}

// SetNotes sets free-form notes
func (s *Supplier) SetNotes(notes string) {
	s.Notes = notes
	s.Touch()
}

// SetStatus sets the supplier status
func (s *Supplier) SetStatus(status SupplierStatus) error {
	switch status {
	case SupplierStatusActive, SupplierStatusInactive:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Supplier status must be active or inactive")
	}
	s.Status = status
	s.Touch()
	return nil
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
