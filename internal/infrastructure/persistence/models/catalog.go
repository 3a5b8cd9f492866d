package models

import (
	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ItemModel is the persistence model for the Item domain entity.
type ItemModel struct {
	BaseModel
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Specification string          `gorm:"type:text"`
	Unit          string          `gorm:"type:varchar(20);not null;default:'個'"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MinStock      int             `gorm:"not null;default:0"`
	CurrentStock  int             `gorm:"not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *catalog.Item {
	return &catalog.Item{
		BaseEntity:    m.BaseModel.ToDomain(),
		Code:          m.Code,
		Name:          m.Name,
		Description:   m.Description,
		Specification: m.Specification,
		Unit:          m.Unit,
		UnitPrice:     m.UnitPrice,
		MinStock:      m.MinStock,
		CurrentStock:  m.CurrentStock,
		IsActive:      m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *catalog.Item) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Code = i.Code
	m.Name = i.Name
	m.Description = i.Description
	m.Specification = i.Specification
	m.Unit = i.Unit
	m.UnitPrice = i.UnitPrice
	m.MinStock = i.MinStock
	m.CurrentStock = i.CurrentStock
	m.IsActive = i.IsActive
}
