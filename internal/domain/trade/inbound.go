package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/shared"
)

// InboundStatus represents the lifecycle state of an inbound delivery
type InboundStatus string

const (
	InboundStatusScheduled InboundStatus = "scheduled"
	InboundStatusArrived   InboundStatus = "arrived"
	InboundStatusInspected InboundStatus = "inspected"
	InboundStatusCompleted InboundStatus = "completed"
	InboundStatusRejected  InboundStatus = "rejected"
)

// IsValid returns true for a known inbound status
func (s InboundStatus) IsValid() bool {
	switch s {
	case InboundStatusScheduled, InboundStatusArrived, InboundStatusInspected,
		InboundStatusCompleted, InboundStatusRejected:
		return true
	}
	return false
}

// InboundItem is an expected line within an inbound delivery
type InboundItem struct {
	shared.BaseEntity
	InboundID        uuid.UUID
	ItemID           uuid.UUID
	ExpectedQuantity int
	ReceivedQuantity int
	Notes            string
}

// NewInboundItem creates a new inbound line item
func NewInboundItem(inboundID, itemID uuid.UUID, expectedQuantity int) (*InboundItem, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if expectedQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Expected quantity must be positive")
	}

	return &InboundItem{
		BaseEntity:       shared.NewBaseEntity(),
		InboundID:        inboundID,
		ItemID:           itemID,
		ExpectedQuantity: expectedQuantity,
	}, nil
}

// Receive records the received quantity for this line
func (i *InboundItem) Receive(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Received quantity cannot be negative")
	}
	i.ReceivedQuantity = quantity
	i.Touch()
	return nil
}

// Inbound represents an expected delivery from a supplier.
// It is an aggregate root owning its line items.
type Inbound struct {
	shared.BaseEntity
	InboundNumber string
	SupplierID    uuid.UUID
	ExpectedDate  time.Time
	ArrivalDate   *time.Time
	Status        InboundStatus
	Notes         string
	Items         []InboundItem
}

// NewInbound creates a new scheduled inbound delivery
func NewInbound(supplierID uuid.UUID, inboundNumber string, expectedDate time.Time) (*Inbound, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	inboundNumber = strings.TrimSpace(inboundNumber)
	if inboundNumber == "" {
		return nil, shared.NewDomainError("INVALID_INBOUND_NUMBER", "Inbound number cannot be empty")
	}
	if len(inboundNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_INBOUND_NUMBER", "Inbound number cannot exceed 50 characters")
	}
	if expectedDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Expected date cannot be empty")
	}

	return &Inbound{
		BaseEntity:    shared.NewBaseEntity(),
		InboundNumber: inboundNumber,
		SupplierID:    supplierID,
		ExpectedDate:  expectedDate,
		Status:        InboundStatusScheduled,
		Items:         make([]InboundItem, 0),
	}, nil
}

// AddItem appends an expected line item
func (in *Inbound) AddItem(itemID uuid.UUID, expectedQuantity int, notes string) (*InboundItem, error) {
	item, err := NewInboundItem(in.ID, itemID, expectedQuantity)
	if err != nil {
		return nil, err
	}
	item.Notes = notes

	in.Items = append(in.Items, *item)
	in.Touch()
	return item, nil
}

// RemoveItem removes a line item by its ID
func (in *Inbound) RemoveItem(inboundItemID uuid.UUID) error {
	for idx, item := range in.Items {
		if item.ID == inboundItemID {
			in.Items = append(in.Items[:idx], in.Items[idx+1:]...)
			in.Touch()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Inbound item not found")
}

// RecordArrival marks the delivery as arrived and stores received quantities
// keyed by inbound item ID. Lines not present keep their current quantity.
func (in *Inbound) RecordArrival(arrivalDate time.Time, received map[uuid.UUID]int) error {
	if arrivalDate.IsZero() {
		arrivalDate = time.Now()
	}

	for id, qty := range received {
		found := false
		for idx := range in.Items {
			if in.Items[idx].ID == id {
				if err := in.Items[idx].Receive(qty); err != nil {
					return err
				}
				found = true
				break
			}
		}
		if !found {
			return shared.NewDomainError("NOT_FOUND", "Inbound item not found")
		}
	}

	in.ArrivalDate = &arrivalDate
	in.Status = InboundStatusArrived
	in.Touch()
	return nil
}

// SetStatus writes a status without transition constraints
func (in *Inbound) SetStatus(status InboundStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown inbound status")
	}
	in.Status = status
	in.Touch()
	return nil
}

// SetExpectedDate sets the expected delivery date
func (in *Inbound) SetExpectedDate(expectedDate time.Time) error {
	if expectedDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Expected date cannot be empty")
	}
	in.ExpectedDate = expectedDate
	in.Touch()
	return nil
}

// SetNotes sets free-form notes
func (in *Inbound) SetNotes(notes string) {
	in.Notes = notes
	in.Touch()
}
