package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/domain/trade"
	"github.com/myorder/backend/internal/infrastructure/legacy"
)

func waitForSyncJob(t *testing.T, service *SyncService, id uuid.UUID) legacy.Job {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("job did not finish in time")
		default:
		}

		job, ok := service.GetJob(id)
		require.True(t, ok)
		if job.Status != legacy.JobRunning {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newSyncFixtures(t *testing.T) (*partner.Customer, *catalog.Item) {
	t.Helper()
	customer, err := partner.NewCustomer("CUST001", "Acme Trading")
	require.NoError(t, err)
	item, err := catalog.NewItem("ITEM001", "Steel Bolt", decimal.NewFromInt(150))
	require.NoError(t, err)
	return customer, item
}

func TestSyncService_ExportOrders(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "desktop.db")

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	itemRepo := new(MockItemRepository)
	service := NewSyncService(path, legacy.NewRegistry(zap.NewNop()), orderRepo, customerRepo, itemRepo, zap.NewNop())

	customer, item := newSyncFixtures(t)
	order, err := trade.NewOrder(customer.ID, "ORD-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = order.AddItem(item.ID, 4, decimal.NewFromInt(150), "first")
	require.NoError(t, err)
	_, err = order.AddItem(item.ID, 1, decimal.NewFromInt(150), "")
	require.NoError(t, err)

	customerRepo.On("FindAll", mock.Anything, shared.Filter{}).Return([]partner.Customer{*customer}, nil)
	itemRepo.On("FindAll", mock.Anything, shared.Filter{}).Return([]catalog.Item{*item}, nil)
	orderRepo.On("FindAll", mock.Anything, trade.OrderFilter{}).Return([]trade.Order{*order}, nil)

	job := service.ExportOrders(ExportOrdersRequest{})
	finished := waitForSyncJob(t, service, job.ID)
	require.Equal(t, legacy.JobCompleted, finished.Status, finished.Error)

	store, err := legacy.Open(path)
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ORD-1", rows[0].OrderNumber)
	assert.Equal(t, 1, rows[0].LineNumber)
	assert.Equal(t, "CUST001", rows[0].CustomerCode)
	assert.Equal(t, "ITEM001", rows[0].ItemCode)
	assert.Equal(t, 4, rows[0].Quantity)
	assert.Equal(t, 2, rows[1].LineNumber)
}

func TestSyncService_ImportOrders(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "desktop.db")

	customer, item := newSyncFixtures(t)

	store, err := legacy.Open(path)
	require.NoError(t, err)
	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.ReplaceOrders(ctx, []legacy.OrderRow{
		{OrderNumber: "ORD-NEW", LineNumber: 1, CustomerCode: "CUST001", ItemCode: "ITEM001",
			Quantity: 2, UnitPrice: decimal.NewFromInt(120), OrderDate: orderDate, Status: "confirmed"},
		{OrderNumber: "ORD-NEW", LineNumber: 2, CustomerCode: "CUST001", ItemCode: "ITEM001",
			Quantity: 1, UnitPrice: decimal.NewFromInt(120), OrderDate: orderDate, Status: "confirmed"},
		{OrderNumber: "ORD-OLD", LineNumber: 1, CustomerCode: "CUST001", ItemCode: "ITEM001",
			Quantity: 9, UnitPrice: decimal.NewFromInt(120), OrderDate: orderDate, Status: "pending"},
	}, nil, nil))
	require.NoError(t, store.Close())

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	itemRepo := new(MockItemRepository)
	service := NewSyncService(path, legacy.NewRegistry(zap.NewNop()), orderRepo, customerRepo, itemRepo, zap.NewNop())

	orderRepo.On("ExistsByOrderNumber", mock.Anything, "ORD-NEW").Return(false, nil)
	orderRepo.On("ExistsByOrderNumber", mock.Anything, "ORD-OLD").Return(true, nil)
	customerRepo.On("FindByCode", mock.Anything, "CUST001").Return(customer, nil)
	itemRepo.On("FindByCode", mock.Anything, "ITEM001").Return(item, nil)

	var saved []*trade.Order
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).
		Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(*trade.Order))
		}).Return(nil)

	job := service.ImportOrders()
	finished := waitForSyncJob(t, service, job.ID)
	require.Equal(t, legacy.JobCompleted, finished.Status, finished.Error)

	require.Len(t, saved, 1)
	created := saved[0]
	assert.Equal(t, "ORD-NEW", created.OrderNumber)
	assert.Equal(t, customer.ID, created.CustomerID)
	assert.Equal(t, trade.OrderStatusConfirmed, created.Status)
	require.Len(t, created.Items, 2)
	assert.True(t, created.Items[0].UnitPrice.Equal(decimal.NewFromInt(120)))
}

func TestSyncService_ExportMaster(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "desktop.db")

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	itemRepo := new(MockItemRepository)
	service := NewSyncService(path, legacy.NewRegistry(zap.NewNop()), orderRepo, customerRepo, itemRepo, zap.NewNop())

	customer, item := newSyncFixtures(t)
	require.NoError(t, customer.SetEmail("acme@example.com"))

	customerRepo.On("FindAll", mock.Anything, shared.Filter{}).Return([]partner.Customer{*customer}, nil)
	itemRepo.On("FindAll", mock.Anything, shared.Filter{}).Return([]catalog.Item{*item}, nil)

	job := service.ExportMaster()
	finished := waitForSyncJob(t, service, job.ID)
	require.Equal(t, legacy.JobCompleted, finished.Status, finished.Error)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	var customers []legacy.CustomerRow
	require.NoError(t, db.WithContext(ctx).Order("code ASC").Find(&customers).Error)
	var items []legacy.ItemRow
	require.NoError(t, db.WithContext(ctx).Order("code ASC").Find(&items).Error)

	require.Len(t, customers, 1)
	assert.Equal(t, "CUST001", customers[0].Code)
	assert.Equal(t, "acme@example.com", customers[0].Email)
	require.Len(t, items, 1)
	assert.Equal(t, "ITEM001", items[0].Code)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(150)))
}

func TestSyncService_ListJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desktop.db")
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	itemRepo := new(MockItemRepository)
	service := NewSyncService(path, legacy.NewRegistry(zap.NewNop()), orderRepo, customerRepo, itemRepo, zap.NewNop())

	customerRepo.On("FindAll", mock.Anything, shared.Filter{}).Return([]partner.Customer{}, nil)
	itemRepo.On("FindAll", mock.Anything, shared.Filter{}).Return([]catalog.Item{}, nil)
	orderRepo.On("FindAll", mock.Anything, trade.OrderFilter{}).Return([]trade.Order{}, nil)

	first := service.ExportOrders(ExportOrdersRequest{})
	waitForSyncJob(t, service, first.ID)
	second := service.ExportMaster()
	waitForSyncJob(t, service, second.ID)

	jobs := service.ListJobs()
	require.Len(t, jobs, 2)

	_, ok := service.GetJob(uuid.New())
	assert.False(t, ok)
}
