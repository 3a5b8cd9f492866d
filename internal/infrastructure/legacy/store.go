package legacy

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CustomerRow is a customer record in the desktop database
type CustomerRow struct {
	Code          string `gorm:"column:code;primaryKey"`
	Name          string `gorm:"column:name"`
	ContactPerson string `gorm:"column:contact_person"`
	Email         string `gorm:"column:email"`
	Phone         string `gorm:"column:phone"`
	Address       string `gorm:"column:address"`
}

// TableName returns the legacy table name
func (CustomerRow) TableName() string {
	return "customers"
}

// ItemRow is an item record in the desktop database
type ItemRow struct {
	Code      string          `gorm:"column:code;primaryKey"`
	Name      string          `gorm:"column:name"`
	Unit      string          `gorm:"column:unit"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(18,4)"`
}

// TableName returns the legacy table name
func (ItemRow) TableName() string {
	return "items"
}

// OrderRow is one order line in the desktop database. The desktop schema is
// flat: one row per line item, keyed by order number plus line number.
type OrderRow struct {
	OrderNumber  string          `gorm:"column:order_number;primaryKey"`
	LineNumber   int             `gorm:"column:line_number;primaryKey"`
	CustomerCode string          `gorm:"column:customer_code"`
	ItemCode     string          `gorm:"column:item_code"`
	Quantity     int             `gorm:"column:quantity"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:decimal(18,4)"`
	OrderDate    time.Time       `gorm:"column:order_date"`
	Status       string          `gorm:"column:status"`
	Notes        string          `gorm:"column:notes"`
}

// TableName returns the legacy table name
func (OrderRow) TableName() string {
	return "order_lines"
}

// Store wraps the sqlite file used by the desktop application
type Store struct {
	db *gorm.DB
}

// Open opens the desktop database file and ensures its schema exists
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database: %w", err)
	}

	if err := db.AutoMigrate(&CustomerRow{}, &ItemRow{}, &OrderRow{}); err != nil {
		return nil, fmt.Errorf("failed to prepare legacy schema: %w", err)
	}

	return &Store{db: db}, nil
}

// ReplaceOrders rewrites the exported order lines. When from/to bounds are
// given, only lines whose order date falls inside the range are replaced.
func (s *Store) ReplaceOrders(ctx context.Context, rows []OrderRow, from, to *time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Model(&OrderRow{})
		if from != nil {
			del = del.Where("order_date >= ?", *from)
		}
		if to != nil {
			del = del.Where("order_date <= ?", *to)
		}
		if from == nil && to == nil {
			del = del.Where("1 = 1")
		}
		if err := del.Delete(&OrderRow{}).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// LoadOrders reads all order lines from the desktop database
func (s *Store) LoadOrders(ctx context.Context) ([]OrderRow, error) {
	var rows []OrderRow
	if err := s.db.WithContext(ctx).
		Order("order_number ASC, line_number ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceMaster rewrites the customer and item master tables
func (s *Store) ReplaceMaster(ctx context.Context, customers []CustomerRow, items []ItemRow) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&CustomerRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&ItemRow{}).Error; err != nil {
			return err
		}
		if len(customers) > 0 {
			if err := tx.Create(&customers).Error; err != nil {
				return err
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Close releases the underlying sqlite connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
