package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/domain/trade"
	"github.com/myorder/backend/internal/infrastructure/legacy"
)

// SyncService synchronizes orders and master data with the desktop
// application's database file. Every operation runs as a background job and
// returns immediately; progress is tracked through the job registry.
type SyncService struct {
	storePath    string
	registry     *legacy.Registry
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
	itemRepo     catalog.ItemRepository
	logger       *zap.Logger
}

// NewSyncService creates a new SyncService. storePath is the desktop
// database file; it is opened per job run.
func NewSyncService(
	storePath string,
	registry *legacy.Registry,
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	itemRepo catalog.ItemRepository,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		storePath:    storePath,
		registry:     registry,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

// GetJob returns one job by ID
func (s *SyncService) GetJob(id uuid.UUID) (legacy.Job, bool) {
	return s.registry.Get(id)
}

// ListJobs returns all jobs, newest first
func (s *SyncService) ListJobs() []legacy.Job {
	return s.registry.List()
}

// ExportOrders starts a job that writes orders to the desktop database.
// Orders already present in the covered date range are replaced.
func (s *SyncService) ExportOrders(req ExportOrdersRequest) legacy.Job {
	return s.registry.Start(legacy.JobExportOrders, func(ctx context.Context) error {
		store, err := legacy.Open(s.storePath)
		if err != nil {
			return err
		}
		defer store.Close()

		customerCodes, itemCodes, err := s.loadCodeMaps(ctx)
		if err != nil {
			return err
		}

		orders, err := s.orderRepo.FindAll(ctx, trade.OrderFilter{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return err
		}

		rows := make([]legacy.OrderRow, 0, len(orders))
		for i := range orders {
			order := &orders[i]
			customerCode, ok := customerCodes[order.CustomerID]
			if !ok {
				return fmt.Errorf("order %s: unknown customer %s", order.OrderNumber, order.CustomerID)
			}
			for idx := range order.Items {
				line := &order.Items[idx]
				itemCode, ok := itemCodes[line.ItemID]
				if !ok {
					return fmt.Errorf("order %s: unknown item %s", order.OrderNumber, line.ItemID)
				}
				rows = append(rows, legacy.OrderRow{
					OrderNumber:  order.OrderNumber,
					LineNumber:   idx + 1,
					CustomerCode: customerCode,
					ItemCode:     itemCode,
					Quantity:     line.Quantity,
					UnitPrice:    line.UnitPrice,
					OrderDate:    order.OrderDate,
					Status:       string(order.Status),
					Notes:        line.Notes,
				})
			}
		}

		if err := store.ReplaceOrders(ctx, rows, req.StartDate, req.EndDate); err != nil {
			return err
		}
		s.logger.Info("exported orders to desktop database",
			zap.Int("orders", len(orders)),
			zap.Int("lines", len(rows)))
		return nil
	})
}

// ImportOrders starts a job that reads orders from the desktop database and
// creates the ones not yet present. Existing order numbers are skipped.
func (s *SyncService) ImportOrders() legacy.Job {
	return s.registry.Start(legacy.JobImportOrders, func(ctx context.Context) error {
		store, err := legacy.Open(s.storePath)
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.LoadOrders(ctx)
		if err != nil {
			return err
		}

		grouped := make(map[string][]legacy.OrderRow)
		numbers := make([]string, 0)
		for _, row := range rows {
			if _, ok := grouped[row.OrderNumber]; !ok {
				numbers = append(numbers, row.OrderNumber)
			}
			grouped[row.OrderNumber] = append(grouped[row.OrderNumber], row)
		}

		created, skipped := 0, 0
		for _, number := range numbers {
			exists, err := s.orderRepo.ExistsByOrderNumber(ctx, number)
			if err != nil {
				return err
			}
			if exists {
				skipped++
				continue
			}

			order, err := s.buildOrder(ctx, number, grouped[number])
			if err != nil {
				return err
			}
			if err := s.orderRepo.Save(ctx, order); err != nil {
				return err
			}
			created++
		}

		s.logger.Info("imported orders from desktop database",
			zap.Int("created", created),
			zap.Int("skipped", skipped))
		return nil
	})
}

// ExportMaster starts a job that rewrites the desktop database's customer
// and item master tables
func (s *SyncService) ExportMaster() legacy.Job {
	return s.registry.Start(legacy.JobExportMaster, func(ctx context.Context) error {
		store, err := legacy.Open(s.storePath)
		if err != nil {
			return err
		}
		defer store.Close()

		customers, err := s.customerRepo.FindAll(ctx, sharedFilterAll())
		if err != nil {
			return err
		}
		items, err := s.itemRepo.FindAll(ctx, sharedFilterAll())
		if err != nil {
			return err
		}

		customerRows := make([]legacy.CustomerRow, len(customers))
		for i := range customers {
			c := &customers[i]
			customerRows[i] = legacy.CustomerRow{
				Code:          c.Code,
				Name:          c.Name,
				ContactPerson: c.ContactPerson,
				Email:         c.Email,
				Phone:         c.Phone,
				Address:       c.Address,
			}
		}

		itemRows := make([]legacy.ItemRow, len(items))
		for i := range items {
			it := &items[i]
			itemRows[i] = legacy.ItemRow{
				Code:      it.Code,
				Name:      it.Name,
				Unit:      it.Unit,
				UnitPrice: it.UnitPrice,
			}
		}

		if err := store.ReplaceMaster(ctx, customerRows, itemRows); err != nil {
			return err
		}
		s.logger.Info("exported master data to desktop database",
			zap.Int("customers", len(customerRows)),
			zap.Int("items", len(itemRows)))
		return nil
	})
}

func (s *SyncService) buildOrder(ctx context.Context, number string, rows []legacy.OrderRow) (*trade.Order, error) {
	first := rows[0]
	customer, err := s.customerRepo.FindByCode(ctx, first.CustomerCode)
	if err != nil {
		return nil, fmt.Errorf("order %s: customer %s: %w", number, first.CustomerCode, err)
	}

	orderDate := first.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}
	order, err := trade.NewOrder(customer.ID, number, orderDate)
	if err != nil {
		return nil, err
	}
	if status := trade.OrderStatus(first.Status); status.IsValid() {
		if err := order.SetStatus(status); err != nil {
			return nil, err
		}
	}

	for _, row := range rows {
		item, err := s.itemRepo.FindByCode(ctx, row.ItemCode)
		if err != nil {
			return nil, fmt.Errorf("order %s: item %s: %w", number, row.ItemCode, err)
		}
		if _, err := order.AddItem(item.ID, row.Quantity, row.UnitPrice, row.Notes); err != nil {
			return nil, fmt.Errorf("order %s: %w", number, err)
		}
	}
	return order, nil
}

// loadCodeMaps builds ID to code lookups for all customers and items
func (s *SyncService) loadCodeMaps(ctx context.Context) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	customers, err := s.customerRepo.FindAll(ctx, sharedFilterAll())
	if err != nil {
		return nil, nil, err
	}
	items, err := s.itemRepo.FindAll(ctx, sharedFilterAll())
	if err != nil {
		return nil, nil, err
	}

	customerCodes := make(map[uuid.UUID]string, len(customers))
	for i := range customers {
		customerCodes[customers[i].ID] = customers[i].Code
	}
	itemCodes := make(map[uuid.UUID]string, len(items))
	for i := range items {
		itemCodes[items[i].ID] = items[i].Code
	}
	return customerCodes, itemCodes, nil
}

func sharedFilterAll() shared.Filter {
	return shared.Filter{}
}
