package legacy

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	store, err := Open(filepath.Join(t.TempDir(), "legacy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Orders(t *testing.T) {
	t.Run("round-trips order lines", func(t *testing.T) {
		store := openTestStore(t)
		ctx := context.Background()

		rows := []OrderRow{
			{
				OrderNumber:  "ORD-20260110-aaaa0001",
				LineNumber:   1,
				CustomerCode: "CUST001",
				ItemCode:     "ITEM001",
				Quantity:     3,
				UnitPrice:    decimal.NewFromFloat(150.50),
				OrderDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
				Status:       "pending",
			},
			{
				OrderNumber:  "ORD-20260110-aaaa0001",
				LineNumber:   2,
				CustomerCode: "CUST001",
				ItemCode:     "ITEM002",
				Quantity:     1,
				UnitPrice:    decimal.NewFromFloat(980),
				OrderDate:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
				Status:       "pending",
			},
		}
		require.NoError(t, store.ReplaceOrders(ctx, rows, nil, nil))

		loaded, err := store.LoadOrders(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "ITEM001", loaded[0].ItemCode)
		assert.Equal(t, 2, loaded[1].LineNumber)
	})

	t.Run("date-bounded replace keeps lines outside the range", func(t *testing.T) {
		store := openTestStore(t)
		ctx := context.Background()

		january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		february := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
		seed := []OrderRow{
			{OrderNumber: "ORD-A", LineNumber: 1, CustomerCode: "C1", ItemCode: "I1", Quantity: 1, OrderDate: january, Status: "pending"},
			{OrderNumber: "ORD-B", LineNumber: 1, CustomerCode: "C1", ItemCode: "I1", Quantity: 1, OrderDate: february, Status: "pending"},
		}
		require.NoError(t, store.ReplaceOrders(ctx, seed, nil, nil))

		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		replacement := []OrderRow{
			{OrderNumber: "ORD-C", LineNumber: 1, CustomerCode: "C2", ItemCode: "I2", Quantity: 5, OrderDate: february, Status: "confirmed"},
		}
		require.NoError(t, store.ReplaceOrders(ctx, replacement, &from, nil))

		loaded, err := store.LoadOrders(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "ORD-A", loaded[0].OrderNumber)
		assert.Equal(t, "ORD-C", loaded[1].OrderNumber)
	})
}

func TestStore_ReplaceMaster(t *testing.T) {
	t.Run("rewrites customers and items", func(t *testing.T) {
		store := openTestStore(t)
		ctx := context.Background()

		customers := []CustomerRow{{Code: "CUST001", Name: "Acme Trading"}}
		items := []ItemRow{{Code: "ITEM001", Name: "Widget", Unit: "個", UnitPrice: decimal.NewFromInt(200)}}
		require.NoError(t, store.ReplaceMaster(ctx, customers, items))

		replacement := []CustomerRow{{Code: "CUST002", Name: "Beta Industries"}}
		require.NoError(t, store.ReplaceMaster(ctx, replacement, nil))

		var count int64
		require.NoError(t, store.db.Model(&CustomerRow{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		var row CustomerRow
		require.NoError(t, store.db.First(&row).Error)
		assert.Equal(t, "CUST002", row.Code)
	})
}
