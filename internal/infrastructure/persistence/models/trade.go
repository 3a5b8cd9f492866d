package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	BaseModel
	OrderNumber  string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderDate    time.Time         `gorm:"not null;index"`
	DeliveryDate *time.Time        `gorm:""`
	Status       trade.OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes        string            `gorm:"type:text"`
	Items        []OrderItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for order line items.
type OrderItemModel struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes     string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() trade.OrderItem {
	return trade.OrderItem{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		ItemID:     m.ItemID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Notes:      m.Notes,
	}
}

// FromDomain populates the persistence model from a domain OrderItem.
func (m *OrderItemModel) FromDomain(i *trade.OrderItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.OrderID = i.OrderID
	m.ItemID = i.ItemID
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Notes = i.Notes
}

// ToDomain converts the persistence model to a domain Order aggregate.
// Line items preserve their stored order.
func (m *OrderModel) ToDomain() *trade.Order {
	items := make([]trade.OrderItem, 0, len(m.Items))
	for idx := range m.Items {
		items = append(items, m.Items[idx].ToDomain())
	}

	return &trade.Order{
		BaseEntity:   m.BaseModel.ToDomain(),
		OrderNumber:  m.OrderNumber,
		CustomerID:   m.CustomerID,
		OrderDate:    m.OrderDate,
		DeliveryDate: m.DeliveryDate,
		Status:       m.Status,
		Notes:        m.Notes,
		Items:        items,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.OrderNumber = o.OrderNumber
	m.CustomerID = o.CustomerID
	m.OrderDate = o.OrderDate
	m.DeliveryDate = o.DeliveryDate
	m.Status = o.Status
	m.Notes = o.Notes

	m.Items = make([]OrderItemModel, 0, len(o.Items))
	for idx := range o.Items {
		var itemModel OrderItemModel
		itemModel.FromDomain(&o.Items[idx])
		m.Items = append(m.Items, itemModel)
	}
}

// InboundModel is the persistence model for the Inbound aggregate root.
type InboundModel struct {
	BaseModel
	InboundNumber string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	ExpectedDate  time.Time           `gorm:"not null;index"`
	ArrivalDate   *time.Time          `gorm:""`
	Status        trade.InboundStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Notes         string              `gorm:"type:text"`
	Items         []InboundItemModel  `gorm:"foreignKey:InboundID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InboundModel) TableName() string {
	return "inbounds"
}

// InboundItemModel is the persistence model for inbound line items.
type InboundItemModel struct {
	BaseModel
	InboundID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpectedQuantity int       `gorm:"not null"`
	ReceivedQuantity int       `gorm:"not null;default:0"`
	Notes            string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InboundItemModel) TableName() string {
	return "inbound_items"
}

// ToDomain converts the persistence model to a domain InboundItem.
func (m *InboundItemModel) ToDomain() trade.InboundItem {
	return trade.InboundItem{
		BaseEntity:       m.BaseModel.ToDomain(),
		InboundID:        m.InboundID,
		ItemID:           m.ItemID,
		ExpectedQuantity: m.ExpectedQuantity,
		ReceivedQuantity: m.ReceivedQuantity,
		Notes:            m.Notes,
	}
}

// FromDomain populates the persistence model from a domain InboundItem.
func (m *InboundItemModel) FromDomain(i *trade.InboundItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.InboundID = i.InboundID
	m.ItemID = i.ItemID
	m.ExpectedQuantity = i.ExpectedQuantity
	m.ReceivedQuantity = i.ReceivedQuantity
	m.Notes = i.Notes
}

// ToDomain converts the persistence model to a domain Inbound aggregate.
func (m *InboundModel) ToDomain() *trade.Inbound {
	items := make([]trade.InboundItem, 0, len(m.Items))
	for idx := range m.Items {
		items = append(items, m.Items[idx].ToDomain())
	}

	return &trade.Inbound{
		BaseEntity:    m.BaseModel.ToDomain(),
		InboundNumber: m.InboundNumber,
		SupplierID:    m.SupplierID,
		ExpectedDate:  m.ExpectedDate,
		ArrivalDate:   m.ArrivalDate,
		Status:        m.Status,
		Notes:         m.Notes,
		Items:         items,
	}
}

// FromDomain populates the persistence model from a domain Inbound aggregate.
func (m *InboundModel) FromDomain(in *trade.Inbound) {
	m.FromDomainBaseEntity(in.BaseEntity)
	m.InboundNumber = in.InboundNumber
	m.SupplierID = in.SupplierID
	m.ExpectedDate = in.ExpectedDate
	m.ArrivalDate = in.ArrivalDate
	m.Status = in.Status
	m.Notes = in.Notes

	m.Items = make([]InboundItemModel, 0, len(in.Items))
	for idx := range in.Items {
		var itemModel InboundItemModel
		itemModel.FromDomain(&in.Items[idx])
		m.Items = append(m.Items, itemModel)
	}
}
