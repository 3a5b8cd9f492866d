package integration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/myorder/backend/internal/domain/catalog"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/domain/trade"
	"github.com/myorder/backend/internal/infrastructure/excel"
)

// ExcelService imports orders from spreadsheets and produces the blank
// order template
type ExcelService struct {
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
	itemRepo     catalog.ItemRepository
}

// NewExcelService creates a new ExcelService
func NewExcelService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	itemRepo catalog.ItemRepository,
) *ExcelService {
	return &ExcelService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
	}
}

// ImportOrders reads an order spreadsheet and creates one order per distinct
// customer code. All codes are resolved before any order is written, so an
// unknown code fails the whole file.
func (s *ExcelService) ImportOrders(ctx context.Context, r io.Reader) (*ImportOrdersResult, error) {
	rows, err := excel.ParseOrderRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "File contains no data rows")
	}

	customers, err := s.resolveCustomers(ctx, rows)
	if err != nil {
		return nil, err
	}
	items, err := s.resolveItems(ctx, rows)
	if err != nil {
		return nil, err
	}

	// Group rows per customer, preserving first appearance order.
	groupOrder := make([]string, 0)
	groups := make(map[string][]excel.OrderRow)
	for _, row := range rows {
		code := strings.ToUpper(row.CustomerCode)
		if _, ok := groups[code]; !ok {
			groupOrder = append(groupOrder, code)
		}
		groups[code] = append(groups[code], row)
	}

	now := time.Now()
	result := &ImportOrdersResult{OrderNumbers: make([]string, 0, len(groupOrder))}
	for _, code := range groupOrder {
		customer := customers[code]
		order, err := trade.NewOrder(customer.ID, "", now)
		if err != nil {
			return nil, err
		}

		for _, row := range groups[code] {
			item := items[strings.ToUpper(row.ItemCode)]
			if _, err := order.AddItem(item.ID, row.Quantity, item.UnitPrice, row.Notes); err != nil {
				return nil, fmt.Errorf("row %d: %w", row.RowNumber, err)
			}
		}

		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}

		result.OrdersCreated++
		result.RowsImported += len(groups[code])
		result.OrderNumbers = append(result.OrderNumbers, order.OrderNumber)
	}

	return result, nil
}

// WriteTemplate writes the blank order import template to w
func (s *ExcelService) WriteTemplate(w io.Writer) error {
	return excel.WriteOrderTemplate(w)
}

func (s *ExcelService) resolveCustomers(ctx context.Context, rows []excel.OrderRow) (map[string]*partner.Customer, error) {
	customers := make(map[string]*partner.Customer)
	for _, row := range rows {
		code := strings.ToUpper(row.CustomerCode)
		if _, ok := customers[code]; ok {
			continue
		}
		customer, err := s.customerRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_INPUT",
					fmt.Sprintf("Row %d: unknown customer code %s", row.RowNumber, code))
			}
			return nil, err
		}
		customers[code] = customer
	}
	return customers, nil
}

func (s *ExcelService) resolveItems(ctx context.Context, rows []excel.OrderRow) (map[string]catalog.Item, error) {
	codes := make([]string, 0)
	seen := make(map[string]bool)
	for _, row := range rows {
		code := strings.ToUpper(row.ItemCode)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	found, err := s.itemRepo.FindByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	items := make(map[string]catalog.Item, len(found))
	for i := range found {
		items[found[i].Code] = found[i]
	}

	for _, row := range rows {
		if _, ok := items[strings.ToUpper(row.ItemCode)]; !ok {
			return nil, shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("Row %d: unknown item code %s", row.RowNumber, strings.ToUpper(row.ItemCode)))
		}
	}
	return items, nil
}
