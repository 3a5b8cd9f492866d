package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/domain/trade"
)

// InboundService handles inbound delivery operations
type InboundService struct {
	inboundRepo  trade.InboundRepository
	supplierRepo partner.SupplierRepository
	itemRepo     catalog.ItemRepository
}

// NewInboundService creates a new InboundService
func NewInboundService(
	inboundRepo trade.InboundRepository,
	supplierRepo partner.SupplierRepository,
	itemRepo catalog.ItemRepository,
) *InboundService {
	return &InboundService{
		inboundRepo:  inboundRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
	}
}

// Create schedules a new inbound delivery with its expected line items
func (s *InboundService) Create(ctx context.Context, req CreateInboundRequest) (*InboundResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
		}
		return nil, err
	}

	exists, err := s.inboundRepo.ExistsByInboundNumber(ctx, req.InboundNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Inbound with this number already exists")
	}

	inbound, err := trade.NewInbound(req.SupplierID, req.InboundNumber, req.ExpectedDate)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		inbound.SetNotes(req.Notes)
	}

	for _, line := range req.Items {
		if _, err := s.itemRepo.FindByID(ctx, line.ItemID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_ITEM", "Item not found")
			}
			return nil, err
		}
		if _, err := inbound.AddItem(line.ItemID, line.ExpectedQuantity, line.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.inboundRepo.Save(ctx, inbound); err != nil {
		return nil, err
	}
	return ToInboundResponse(inbound), nil
}

// GetByID retrieves an inbound delivery by its ID
func (s *InboundService) GetByID(ctx context.Context, id uuid.UUID) (*InboundResponse, error) {
	inbound, err := s.inboundRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInboundResponse(inbound), nil
}

// List retrieves inbound deliveries newest first, optionally narrowed by
// supplier and status
func (s *InboundService) List(ctx context.Context, filter InboundListFilter) ([]InboundResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	repoFilter := trade.InboundFilter{
		SupplierID: filter.SupplierID,
		Skip:       (filter.Page - 1) * filter.PageSize,
		Limit:      filter.PageSize,
	}
	if filter.Status != nil {
		status := trade.InboundStatus(*filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown inbound status")
		}
		repoFilter.Status = &status
	}

	inbounds, err := s.inboundRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.inboundRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InboundResponse, 0, len(inbounds))
	for i := range inbounds {
		responses = append(responses, *ToInboundResponse(&inbounds[i]))
	}
	return responses, total, nil
}

// Update applies partial changes to an inbound's header fields
func (s *InboundService) Update(ctx context.Context, id uuid.UUID, req UpdateInboundRequest) (*InboundResponse, error) {
	inbound, err := s.inboundRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ExpectedDate != nil {
		if err := inbound.SetExpectedDate(*req.ExpectedDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := inbound.SetStatus(trade.InboundStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		inbound.SetNotes(*req.Notes)
	}

	if err := s.inboundRepo.Save(ctx, inbound); err != nil {
		return nil, err
	}
	return ToInboundResponse(inbound), nil
}

// RecordArrival marks the delivery as arrived and stores the received
// quantities per line item
func (s *InboundService) RecordArrival(ctx context.Context, id uuid.UUID, req RecordArrivalRequest) (*InboundResponse, error) {
	inbound, err := s.inboundRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := inbound.RecordArrival(req.ArrivalDate, req.Received); err != nil {
		return nil, err
	}

	if err := s.inboundRepo.Save(ctx, inbound); err != nil {
		return nil, err
	}
	return ToInboundResponse(inbound), nil
}

// Delete removes an inbound delivery together with its line items
func (s *InboundService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inboundRepo.Delete(ctx, id)
}
