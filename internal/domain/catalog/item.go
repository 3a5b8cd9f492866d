package catalog

import (
	"regexp"
	"strings"

	"github.com/myorder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultUnit is applied when an item is created without a unit
const DefaultUnit = "個"

// Item represents a sellable product in the catalog context.
// It is the aggregate root for item-related operations.
type Item struct {
	shared.BaseEntity
	Code          string
	Name          string
	Description   string
	Specification string
	Unit          string
	UnitPrice     decimal.Decimal
	MinStock      int
	CurrentStock  int
	IsActive      bool
}

// NewItem creates a new item with required fields
func NewItem(code, name string, unitPrice decimal.Decimal) (*Item, error) {
	if err := validateItemCode(code); err != nil {
		return nil, err
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(strings.TrimSpace(code)),
		Name:       strings.TrimSpace(name),
		Unit:       DefaultUnit,
		UnitPrice:  unitPrice,
		IsActive:   true,
	}, nil
}

// Update updates the item's name
func (i *Item) Update(name string) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	i.Name = strings.TrimSpace(name)
	i.Touch()
	return nil
}

// UpdateCode changes the item code
func (i *Item) UpdateCode(code string) error {
	if err := validateItemCode(code); err != nil {
		return err
	}
	i.Code = strings.ToUpper(strings.TrimSpace(code))
	i.Touch()
	return nil
}

// SetDescription sets the item description
func (i *Item) SetDescription(description string) {
	i.Description = description
	i.Touch()
}

// SetSpecification sets the item specification
func (i *Item) SetSpecification(specification string) {
	i.Specification = specification
	i.Touch()
}

// SetUnit sets the unit of measure
func (i *Item) SetUnit(unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	i.Unit = unit
	i.Touch()
	return nil
}

// SetUnitPrice sets the current selling price
func (i *Item) SetUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	i.UnitPrice = unitPrice
	i.Touch()
	return nil
}

// SetMinStock sets the minimum stock threshold
func (i *Item) SetMinStock(minStock int) error {
	if minStock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Minimum stock cannot be negative")
	}
	i.MinStock = minStock
	i.Touch()
	return nil
}

// SetCurrentStock sets the current stock level
func (i *Item) SetCurrentStock(currentStock int) error {
	if currentStock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Current stock cannot be negative")
	}
	i.CurrentStock = currentStock
	i.Touch()
	return nil
}

// Activate marks the item as active
func (i *Item) Activate() {
	i.IsActive = true
	i.Touch()
}

// Deactivate marks the item as inactive
func (i *Item) Deactivate() {
	i.IsActive = false
	i.Touch()
}

// IsBelowMinStock returns true if the current stock is under the threshold
func (i *Item) IsBelowMinStock() bool {
	return i.CurrentStock < i.MinStock
}

func validateItemCode(code string) error {
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

func validateItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
