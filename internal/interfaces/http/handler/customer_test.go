package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnerapp "github.com/myorder/backend/internal/application/partner"
	"github.com/myorder/backend/internal/domain/partner"
	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/interfaces/http/dto"
)

// stubCustomerRepository is a hand-rolled partner.CustomerRepository for
// handler tests
type stubCustomerRepository struct {
	customers map[uuid.UUID]*partner.Customer
	byCode    map[string]*partner.Customer
	saved     []*partner.Customer
}

func newStubCustomerRepository() *stubCustomerRepository {
	return &stubCustomerRepository{
		customers: make(map[uuid.UUID]*partner.Customer),
		byCode:    make(map[string]*partner.Customer),
	}
}

func (s *stubCustomerRepository) add(customer *partner.Customer) {
	s.customers[customer.ID] = customer
	s.byCode[customer.Code] = customer
}

func (s *stubCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubCustomerRepository) FindByCode(ctx context.Context, code string) (*partner.Customer, error) {
	if c, ok := s.byCode[code]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	result := make([]partner.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		result = append(result, *c)
	}
	return result, nil
}

func (s *stubCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	s.saved = append(s.saved, customer)
	s.add(customer)
	return nil
}

func (s *stubCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.customers[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.customers, id)
	return nil
}

func (s *stubCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return int64(len(s.customers)), nil
}

func (s *stubCustomerRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := s.byCode[code]
	return ok, nil
}

func newCustomerTestRouter(repo partner.CustomerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCustomerHandler(partnerapp.NewCustomerService(repo))

	r := gin.New()
	r.POST("/customers", h.Create)
	r.GET("/customers", h.List)
	r.GET("/customers/:id", h.GetByID)
	r.PUT("/customers/:id", h.Update)
	r.DELETE("/customers/:id", h.Delete)
	return r
}

func TestCustomerHandler_Create(t *testing.T) {
	repo := newStubCustomerRepository()
	router := newCustomerTestRouter(repo)

	body, _ := json.Marshal(map[string]any{
		"code": "CUST001",
		"name": "Yamada Trading",
	})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "CUST001", data["code"])
	assert.Equal(t, "Yamada Trading", data["name"])
}

func TestCustomerHandler_Create_DuplicateCodeIsBadRequest(t *testing.T) {
	repo := newStubCustomerRepository()
	existing, err := partner.NewCustomer("CUST001", "Existing")
	require.NoError(t, err)
	repo.add(existing)

	router := newCustomerTestRouter(repo)

	body, _ := json.Marshal(map[string]any{
		"code": "CUST001",
		"name": "Another",
	})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestCustomerHandler_Create_MissingNameIsValidationError(t *testing.T) {
	router := newCustomerTestRouter(newStubCustomerRepository())

	body, _ := json.Marshal(map[string]any{"code": "CUST001"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_GetByID(t *testing.T) {
	repo := newStubCustomerRepository()
	customer, err := partner.NewCustomer("CUST002", "Sato Foods")
	require.NoError(t, err)
	repo.add(customer)

	router := newCustomerTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/customers/"+customer.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Sato Foods", data["name"])
}

func TestCustomerHandler_GetByID_NotFound(t *testing.T) {
	router := newCustomerTestRouter(newStubCustomerRepository())

	req := httptest.NewRequest(http.MethodGet, "/customers/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestCustomerHandler_GetByID_InvalidUUID(t *testing.T) {
	router := newCustomerTestRouter(newStubCustomerRepository())

	req := httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_List(t *testing.T) {
	repo := newStubCustomerRepository()
	for _, spec := range [][2]string{{"C001", "Alpha"}, {"C002", "Beta"}} {
		customer, err := partner.NewCustomer(spec[0], spec[1])
		require.NoError(t, err)
		repo.add(customer)
	}

	router := newCustomerTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/customers?page=1&page_size=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
}

func TestCustomerHandler_Update(t *testing.T) {
	repo := newStubCustomerRepository()
	customer, err := partner.NewCustomer("CUST003", "Old Name")
	require.NoError(t, err)
	repo.add(customer)

	router := newCustomerTestRouter(repo)

	body, _ := json.Marshal(map[string]any{"name": "New Name"})
	req := httptest.NewRequest(http.MethodPut, "/customers/"+customer.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "New Name", data["name"])
}

func TestCustomerHandler_Delete(t *testing.T) {
	repo := newStubCustomerRepository()
	customer, err := partner.NewCustomer("CUST004", "To Delete")
	require.NoError(t, err)
	repo.add(customer)

	router := newCustomerTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}
