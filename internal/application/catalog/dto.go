package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateItemRequest represents a request to create a new item
type CreateItemRequest struct {
	Code          string          `json:"code" binding:"required,min=1,max=50"`
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Specification string          `json:"specification"`
	Unit          string          `json:"unit" binding:"max=20"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	MinStock      *int            `json:"min_stock"`
	CurrentStock  *int            `json:"current_stock"`
}

// UpdateItemRequest represents a request to update an item
type UpdateItemRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Specification *string          `json:"specification"`
	Unit          *string          `json:"unit" binding:"omitempty,max=20"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	MinStock      *int             `json:"min_stock"`
	CurrentStock  *int             `json:"current_stock"`
	IsActive      *bool            `json:"is_active"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Specification string          `json:"specification"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStock      int             `json:"min_stock"`
	CurrentStock  int             `json:"current_stock"`
	IsActive      bool            `json:"is_active"`
	BelowMinStock bool            `json:"below_min_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(i *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Code:          i.Code,
		Name:          i.Name,
		Description:   i.Description,
		Specification: i.Specification,
		Unit:          i.Unit,
		UnitPrice:     i.UnitPrice,
		MinStock:      i.MinStock,
		CurrentStock:  i.CurrentStock,
		IsActive:      i.IsActive,
		BelowMinStock: i.IsBelowMinStock(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []catalog.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}

// ListFilter carries listing options for item endpoints
type ListFilter struct {
	Page          int    `form:"page"`
	PageSize      int    `form:"page_size"`
	Search        string `form:"search"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir"`
	IsActive      *bool  `form:"is_active"`
	BelowMinStock bool   `form:"below_min_stock"`
}
