package trade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/domain/trade"
)

// OrderService handles order-related business operations. An order and its
// line items are created and persisted as one unit.
type OrderService struct {
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
	itemRepo     catalog.ItemRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	itemRepo catalog.ItemRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
	}
}

// Create creates a new order with its line items. The order number is
// generated when the request leaves it empty. Line items without a unit price
// capture the item's current price.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
		}
		return nil, err
	}

	if req.OrderNumber != "" {
		exists, err := s.orderRepo.ExistsByOrderNumber(ctx, req.OrderNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Order with this number already exists")
		}
	}

	orderDate := s.orderDateOrNow(req.OrderDate)
	order, err := trade.NewOrder(req.CustomerID, req.OrderNumber, orderDate)
	if err != nil {
		return nil, err
	}
	if req.DeliveryDate != nil {
		order.SetDeliveryDate(req.DeliveryDate)
	}
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}

	for _, line := range req.Items {
		unitPrice, err := s.resolveUnitPrice(ctx, line.ItemID, line.UnitPrice)
		if err != nil {
			return nil, err
		}
		if _, err := order.AddItem(line.ItemID, line.Quantity, unitPrice, line.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// GetByID retrieves an order by its ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// GetByOrderNumber retrieves an order by its order number
func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List retrieves orders newest first, optionally narrowed by customer, date
// range and status
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	repoFilter := trade.OrderFilter{
		CustomerID: filter.CustomerID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Skip:       (filter.Page - 1) * filter.PageSize,
		Limit:      filter.PageSize,
	}
	if filter.Status != nil {
		status := trade.OrderStatus(*filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		repoFilter.Status = &status
	}

	orders, err := s.orderRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *ToOrderResponse(&orders[i]))
	}
	return responses, total, nil
}

// Update applies partial changes to an order's header fields
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrderDate != nil {
		if err := order.SetOrderDate(*req.OrderDate); err != nil {
			return nil, err
		}
	}
	if req.DeliveryDate != nil {
		order.SetDeliveryDate(req.DeliveryDate)
	}
	if req.Status != nil {
		if err := order.SetStatus(trade.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		order.SetNotes(*req.Notes)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// AddItem adds a line item to an existing order
func (s *OrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddOrderItemRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	unitPrice, err := s.resolveUnitPrice(ctx, req.ItemID, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if _, err := order.AddItem(req.ItemID, req.Quantity, unitPrice, req.Notes); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// RemoveItem removes a line item from an existing order
func (s *OrderService) RemoveItem(ctx context.Context, orderID, orderItemID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemoveItem(orderItemID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// Delete removes an order together with its line items
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderService) resolveUnitPrice(ctx context.Context, itemID uuid.UUID, requested *decimal.Decimal) (decimal.Decimal, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decimal.Zero, shared.NewDomainError("INVALID_ITEM", "Item not found")
		}
		return decimal.Zero, err
	}
	if requested != nil {
		return *requested, nil
	}
	return item.UnitPrice, nil
}

func (s *OrderService) orderDateOrNow(orderDate *time.Time) time.Time {
	if orderDate != nil {
		return *orderDate
	}
	return time.Now()
}
