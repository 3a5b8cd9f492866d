package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/myorder/backend/internal/domain/shared"
)

// ItemService handles item-related business operations
type ItemService struct {
	itemRepo catalog.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// Create creates a new item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	exists, err := s.itemRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this code already exists")
	}

	item, err := catalog.NewItem(req.Code, req.Name, req.UnitPrice)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		item.SetDescription(req.Description)
	}
	if req.Specification != "" {
		item.SetSpecification(req.Specification)
	}
	if req.Unit != "" {
		if err := item.SetUnit(req.Unit); err != nil {
			return nil, err
		}
	}
	if req.MinStock != nil {
		if err := item.SetMinStock(*req.MinStock); err != nil {
			return nil, err
		}
	}
	if req.CurrentStock != nil {
		if err := item.SetCurrentStock(*req.CurrentStock); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByCode retrieves an item by code
func (s *ItemService) GetByCode(ctx context.Context, code string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves items with filtering and pagination
func (s *ItemService) List(ctx context.Context, filter ListFilter) ([]ItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}
	if filter.BelowMinStock {
		domainFilter.Filters["below_min_stock"] = true
	}

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToItemResponses(items), total, nil
}

// Update updates an item
func (s *ItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := item.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		item.SetDescription(*req.Description)
	}
	if req.Specification != nil {
		item.SetSpecification(*req.Specification)
	}
	if req.Unit != nil {
		if err := item.SetUnit(*req.Unit); err != nil {
			return nil, err
		}
	}
	if req.UnitPrice != nil {
		if err := item.SetUnitPrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.MinStock != nil {
		if err := item.SetMinStock(*req.MinStock); err != nil {
			return nil, err
		}
	}
	if req.CurrentStock != nil {
		if err := item.SetCurrentStock(*req.CurrentStock); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete deletes an item
func (s *ItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	return s.itemRepo.Delete(ctx, itemID)
}
