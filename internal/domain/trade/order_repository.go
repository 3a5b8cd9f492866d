package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderFilter narrows order listings. Date bounds are inclusive and apply to
// the order date.
type OrderFilter struct {
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *OrderStatus
	Skip       int
	Limit      int
}

// OrderRepository defines persistence operations for orders. Save and Delete
// must treat the order and its line items as one atomic unit.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}

// InboundFilter narrows inbound listings
type InboundFilter struct {
	SupplierID *uuid.UUID
	Status     *InboundStatus
	Skip       int
	Limit      int
}

// InboundRepository defines persistence operations for inbound deliveries
type InboundRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Inbound, error)
	FindByInboundNumber(ctx context.Context, inboundNumber string) (*Inbound, error)
	FindAll(ctx context.Context, filter InboundFilter) ([]Inbound, error)
	Save(ctx context.Context, inbound *Inbound) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter InboundFilter) (int64, error)
	ExistsByInboundNumber(ctx context.Context, inboundNumber string) (bool, error)
}
