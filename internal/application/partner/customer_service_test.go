package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, code string) (*partner.Customer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer with contact details", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByCode", ctx, "CUST001").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(ctx, CreateCustomerRequest{
			Code:          "cust001",
			Name:          "Acme Trading",
			ContactPerson: "Taro Yamada",
			Email:         "taro@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "CUST001", resp.Code)
		assert.Equal(t, "Acme Trading", resp.Name)
		assert.Equal(t, "taro@example.com", resp.Email)
		assert.True(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByCode", ctx, "CUST001").Return(true, nil)

		resp, err := service.Create(ctx, CreateCustomerRequest{Code: "CUST001", Name: "Acme"})

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByCode", ctx, "CUST001").Return(false, nil)

		_, err := service.Create(ctx, CreateCustomerRequest{
			Code:  "CUST001",
			Name:  "Acme",
			Email: "not-an-email",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial updates", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		existing, err := partner.NewCustomer("CUST001", "Acme Trading")
		require.NoError(t, err)

		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		newName := "Acme Holdings"
		inactive := false
		resp, err := service.Update(ctx, existing.ID, UpdateCustomerRequest{
			Name:     &newName,
			IsActive: &inactive,
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Holdings", resp.Name)
		assert.False(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateCustomerRequest{})

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestCustomerService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("applies pagination defaults", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		first, err := partner.NewCustomer("CUST001", "Acme")
		require.NoError(t, err)

		expected := shared.Filter{Page: 1, PageSize: 20, Filters: map[string]any{}}
		repo.On("FindAll", ctx, expected).Return([]partner.Customer{*first}, nil)
		repo.On("Count", ctx, expected).Return(int64(1), nil)

		customers, total, err := service.List(ctx, ListFilter{})

		require.NoError(t, err)
		assert.Len(t, customers, 1)
		assert.Equal(t, int64(1), total)
		repo.AssertExpectations(t)
	})
}

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates repository result", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		id := uuid.New()
		repo.On("Delete", ctx, id).Return(shared.ErrNotFound)

		err := service.Delete(ctx, id)

		assert.Equal(t, shared.ErrNotFound, err)
	})
}
