package trade

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order. Transitions are
// deliberately unconstrained: any valid status may be written at any time.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid returns true for a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item within an order. UnitPrice is captured at order
// time and never recomputed from the catalog afterwards.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Notes     string
}

// NewOrderItem creates a new order line item
func NewOrderItem(orderID, itemID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ItemID:     itemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// Subtotal returns quantity times the captured unit price
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer order with its line items.
// It is the aggregate root for the trade context.
type Order struct {
	shared.BaseEntity
	OrderNumber  string
	CustomerID   uuid.UUID
	OrderDate    time.Time
	DeliveryDate *time.Time
	Status       OrderStatus
	Notes        string
	Items        []OrderItem
}

// NewOrder creates a new pending order. When orderNumber is empty one is
// generated.
func NewOrder(customerID uuid.UUID, orderNumber string, orderDate time.Time) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		orderNumber = GenerateOrderNumber(orderDate)
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}

	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		OrderNumber: orderNumber,
		CustomerID:  customerID,
		OrderDate:   orderDate,
		Status:      OrderStatusPending,
		Items:       make([]OrderItem, 0),
	}, nil
}

// GenerateOrderNumber builds an order number of the form ORD-YYYYMMDD-xxxxxxxx
func GenerateOrderNumber(at time.Time) string {
	if at.IsZero() {
		at = time.Now()
	}
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), uuid.NewString()[:8])
	}
	return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), hex.EncodeToString(buf))
}

// AddItem appends a line item. Order status is intentionally not checked.
func (o *Order) AddItem(itemID uuid.UUID, quantity int, unitPrice decimal.Decimal, notes string) (*OrderItem, error) {
	item, err := NewOrderItem(o.ID, itemID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	item.Notes = notes

	o.Items = append(o.Items, *item)
	o.Touch()
	return item, nil
}

// RemoveItem removes a line item by its ID
func (o *Order) RemoveItem(orderItemID uuid.UUID) error {
	for idx, item := range o.Items {
		if item.ID == orderItemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.Touch()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Order item not found")
}

// SetStatus writes a status without transition constraints
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	o.Status = status
	o.Touch()
	return nil
}

// SetOrderDate sets the order date
func (o *Order) SetOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Order date cannot be empty")
	}
	o.OrderDate = orderDate
	o.Touch()
	return nil
}

// SetDeliveryDate sets or clears the delivery date
func (o *Order) SetDeliveryDate(deliveryDate *time.Time) {
	o.DeliveryDate = deliveryDate
	o.Touch()
}

// SetNotes sets free-form notes
func (o *Order) SetNotes(notes string) {
	o.Notes = notes
	o.Touch()
}

// TotalAmount sums the line item subtotals
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	return total
}

// ItemCount returns the number of line items
func (o *Order) ItemCount() int {
	return len(o.Items)
}
