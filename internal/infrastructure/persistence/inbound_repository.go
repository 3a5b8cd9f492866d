package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/domain/trade"
	"github.com/myorder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInboundRepository implements InboundRepository using GORM
type GormInboundRepository struct {
	db *gorm.DB
}

// NewGormInboundRepository creates a new GormInboundRepository
func NewGormInboundRepository(db *gorm.DB) *GormInboundRepository {
	return &GormInboundRepository{db: db}
}

// FindByID finds an inbound delivery with its line items
func (r *GormInboundRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Inbound, error) {
	var model models.InboundModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsByInsertion).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInboundNumber finds an inbound delivery by its number
func (r *GormInboundRepository) FindByInboundNumber(ctx context.Context, inboundNumber string) (*trade.Inbound, error) {
	var model models.InboundModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsByInsertion).
		Where("inbound_number = ?", inboundNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds inbound deliveries matching the filter, newest first
func (r *GormInboundRepository) FindAll(ctx context.Context, filter trade.InboundFilter) ([]trade.Inbound, error) {
	var inboundModels []models.InboundModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InboundModel{}), filter).
		Preload("Items", itemsByInsertion).
		Order("created_at DESC")

	if err := query.Find(&inboundModels).Error; err != nil {
		return nil, err
	}

	inbounds := make([]trade.Inbound, len(inboundModels))
	for i := range inboundModels {
		inbounds[i] = *inboundModels[i].ToDomain()
	}
	return inbounds, nil
}

// Save creates or updates an inbound delivery with its line items in one
// transaction
func (r *GormInboundRepository) Save(ctx context.Context, inbound *trade.Inbound) error {
	var model models.InboundModel
	model.FromDomain(inbound)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(&model).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(model.Items))
		for i := range model.Items {
			currentItemIDs[i] = model.Items[i].ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("inbound_id = ? AND id NOT IN ?", model.ID, currentItemIDs).
				Delete(&models.InboundItemModel{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("inbound_id = ?", model.ID).
				Delete(&models.InboundItemModel{}).Error; err != nil {
				return err
			}
		}

		for i := range model.Items {
			model.Items[i].InboundID = model.ID
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes an inbound delivery and its line items in one transaction
func (r *GormInboundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("inbound_id = ?", id).
			Delete(&models.InboundItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.InboundModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts inbound deliveries matching the filter
func (r *GormInboundRepository) Count(ctx context.Context, filter trade.InboundFilter) (int64, error) {
	var count int64
	noPage := filter
	noPage.Skip = 0
	noPage.Limit = 0
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InboundModel{}), noPage)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByInboundNumber checks if an inbound with the given number exists
func (r *GormInboundRepository) ExistsByInboundNumber(ctx context.Context, inboundNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InboundModel{}).
		Where("inbound_number = ?", inboundNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormInboundRepository) applyFilter(query *gorm.DB, filter trade.InboundFilter) *gorm.DB {
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	return query
}

// Ensure GormInboundRepository implements InboundRepository
var _ trade.InboundRepository = (*GormInboundRepository)(nil)
