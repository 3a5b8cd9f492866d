package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myorder/backend/internal/domain/trade"
)

// CreateOrderItemRequest is one line item within an order creation request.
// UnitPrice is optional; when omitted the item's current price is captured.
type CreateOrderItemRequest struct {
	ItemID    uuid.UUID        `json:"item_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// CreateOrderRequest is the request to create an order with its line items
type CreateOrderRequest struct {
	OrderNumber  string                   `json:"order_number,omitempty" binding:"omitempty,max=50"`
	CustomerID   uuid.UUID                `json:"customer_id" binding:"required"`
	OrderDate    *time.Time               `json:"order_date,omitempty"`
	DeliveryDate *time.Time               `json:"delivery_date,omitempty"`
	Notes        string                   `json:"notes,omitempty"`
	Items        []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest is the request to update order header fields.
// Line items are managed through the item endpoints.
type UpdateOrderRequest struct {
	OrderDate    *time.Time `json:"order_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// AddOrderItemRequest is the request to add a line item to an existing order
type AddOrderItemRequest struct {
	ItemID    uuid.UUID        `json:"item_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// OrderItemResponse is one line item in an order response
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    uuid.UUID       `json:"item_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Notes     string          `json:"notes,omitempty"`
}

// OrderResponse is the response representation of an order
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	OrderNumber  string              `json:"order_number"`
	CustomerID   uuid.UUID           `json:"customer_id"`
	OrderDate    time.Time           `json:"order_date"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain order to its response representation
func ToOrderResponse(order *trade.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		it := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			ItemID:    it.ItemID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
			Notes:     it.Notes,
		})
	}

	return &OrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		OrderDate:    order.OrderDate,
		DeliveryDate: order.DeliveryDate,
		Status:       string(order.Status),
		Notes:        order.Notes,
		Items:        items,
		TotalAmount:  order.TotalAmount(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// OrderListFilter carries the query parameters for listing orders
type OrderListFilter struct {
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	CustomerID *uuid.UUID `form:"customer_id"`
	StartDate  *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"end_date" time_format:"2006-01-02"`
	Status     *string    `form:"status"`
}

// CreateInboundItemRequest is one expected line within an inbound creation request
type CreateInboundItemRequest struct {
	ItemID           uuid.UUID `json:"item_id" binding:"required"`
	ExpectedQuantity int       `json:"expected_quantity" binding:"required,gt=0"`
	Notes            string    `json:"notes,omitempty"`
}

// CreateInboundRequest is the request to schedule an inbound delivery
type CreateInboundRequest struct {
	InboundNumber string                     `json:"inbound_number" binding:"required,max=50"`
	SupplierID    uuid.UUID                  `json:"supplier_id" binding:"required"`
	ExpectedDate  time.Time                  `json:"expected_date" binding:"required"`
	Notes         string                     `json:"notes,omitempty"`
	Items         []CreateInboundItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInboundRequest is the request to update inbound header fields
type UpdateInboundRequest struct {
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// RecordArrivalRequest records the arrival of an inbound delivery. Received
// maps line item IDs to the quantities actually received.
type RecordArrivalRequest struct {
	ArrivalDate time.Time         `json:"arrival_date" binding:"required"`
	Received    map[uuid.UUID]int `json:"received" binding:"required"`
}

// InboundItemResponse is one line item in an inbound response
type InboundItemResponse struct {
	ID               uuid.UUID `json:"id"`
	ItemID           uuid.UUID `json:"item_id"`
	ExpectedQuantity int       `json:"expected_quantity"`
	ReceivedQuantity int       `json:"received_quantity"`
	Notes            string    `json:"notes,omitempty"`
}

// InboundResponse is the response representation of an inbound delivery
type InboundResponse struct {
	ID            uuid.UUID             `json:"id"`
	InboundNumber string                `json:"inbound_number"`
	SupplierID    uuid.UUID             `json:"supplier_id"`
	ExpectedDate  time.Time             `json:"expected_date"`
	ArrivalDate   *time.Time            `json:"arrival_date,omitempty"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	Items         []InboundItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// ToInboundResponse converts a domain inbound to its response representation
func ToInboundResponse(inbound *trade.Inbound) *InboundResponse {
	items := make([]InboundItemResponse, 0, len(inbound.Items))
	for i := range inbound.Items {
		it := &inbound.Items[i]
		items = append(items, InboundItemResponse{
			ID:               it.ID,
			ItemID:           it.ItemID,
			ExpectedQuantity: it.ExpectedQuantity,
			ReceivedQuantity: it.ReceivedQuantity,
			Notes:            it.Notes,
		})
	}

	return &InboundResponse{
		ID:            inbound.ID,
		InboundNumber: inbound.InboundNumber,
		SupplierID:    inbound.SupplierID,
		ExpectedDate:  inbound.ExpectedDate,
		ArrivalDate:   inbound.ArrivalDate,
		Status:        string(inbound.Status),
		Notes:         inbound.Notes,
		Items:         items,
		CreatedAt:     inbound.CreatedAt,
		UpdatedAt:     inbound.UpdatedAt,
	}
}

// InboundListFilter carries the query parameters for listing inbounds
type InboundListFilter struct {
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Status     *string    `form:"status"`
}
