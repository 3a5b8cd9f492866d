package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/shared"
)

// ItemRepository defines persistence operations for items
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByCode(ctx context.Context, code string) (*Item, error)
	FindByCodes(ctx context.Context, codes []string) ([]Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)
	Save(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
