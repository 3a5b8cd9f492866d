package handler

import (
	"github.com/gin-gonic/gin"

	integrationapp "github.com/myorder/backend/internal/application/integration"
	"github.com/myorder/backend/internal/interfaces/http/middleware"
)

// DatabaseHandler exposes raw SQL access for administrators
type DatabaseHandler struct {
	BaseHandler
	databaseService *integrationapp.DatabaseService
}

// NewDatabaseHandler creates a new DatabaseHandler
func NewDatabaseHandler(databaseService *integrationapp.DatabaseService) *DatabaseHandler {
	return &DatabaseHandler{databaseService: databaseService}
}

// ListTables handles GET /db/tables
func (h *DatabaseHandler) ListTables(c *gin.Context) {
	tables, err := h.databaseService.ListTables(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"tables": tables})
}

// TableSchema handles GET /db/tables/:table
func (h *DatabaseHandler) TableSchema(c *gin.Context) {
	columns, err := h.databaseService.TableSchema(c.Request.Context(), c.Param("table"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"columns": columns})
}

// Query handles POST /db/query for SELECT statements
func (h *DatabaseHandler) Query(c *gin.Context) {
	var req integrationapp.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.databaseService.Query(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update handles POST /db/update for data-modifying statements
func (h *DatabaseHandler) Update(c *gin.Context) {
	var req integrationapp.ExecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.databaseService.Execute(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
