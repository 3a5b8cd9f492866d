package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter_Defaults(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup_MountsUnderVersionPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("trade", "/")
	group.GET("/orders", func(c *gin.Context) {
		c.String(http.StatusOK, "orders")
	})

	r.Register(group).Setup()

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "orders", w.Body.String())
}

func TestRouterUse_AppliesToAllGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Use(func(c *gin.Context) {
		c.Header("X-Stamp", "seen")
		c.Next()
	})

	group := NewDomainGroup("partner", "/")
	group.GET("/customers", func(c *gin.Context) {
		c.String(http.StatusOK, "customers")
	})

	r.Register(group).Setup()

	req := httptest.NewRequest("GET", "/api/v1/customers", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "seen", w.Header().Get("X-Stamp"))
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("trade", "/trade")
	assert.Equal(t, "trade", g.Name())

	g.GET("/orders", func(c *gin.Context) { c.Status(http.StatusOK) }).
		POST("/orders", func(c *gin.Context) { c.Status(http.StatusCreated) }).
		PUT("/orders/:id", func(c *gin.Context) { c.Status(http.StatusOK) }).
		DELETE("/orders/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	api := engine.Group("/api/v1")
	g.RegisterRoutes(api)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/api/v1/trade/orders", http.StatusOK},
		{"POST", "/api/v1/trade/orders", http.StatusCreated},
		{"PUT", "/api/v1/trade/orders/123", http.StatusOK},
		{"DELETE", "/api/v1/trade/orders/123", http.StatusNoContent},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestDomainGroup_Middleware(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("admin", "/admin")

	g.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	})
	g.GET("/jobs", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := engine.Group("/api/v1")
	g.RegisterRoutes(api)

	req := httptest.NewRequest("GET", "/api/v1/admin/jobs", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	catalog := NewDomainGroup("catalog", "/")
	catalog.GET("/items", func(c *gin.Context) {
		c.String(http.StatusOK, "items")
	})

	partner := NewDomainGroup("partner", "/")
	partner.GET("/suppliers", func(c *gin.Context) {
		c.String(http.StatusOK, "suppliers")
	})

	r.Register(catalog).Register(partner).Setup()

	for path, want := range map[string]string{
		"/api/v1/items":     "items",
		"/api/v1/suppliers": "suppliers",
	} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Body.String())
	}
}
