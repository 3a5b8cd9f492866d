package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	integrationapp "github.com/myorder/backend/internal/application/integration"
	"github.com/myorder/backend/internal/interfaces/http/dto"
	"github.com/myorder/backend/internal/interfaces/http/middleware"
)

// SyncHandler exposes legacy desktop database synchronization jobs
type SyncHandler struct {
	BaseHandler
	syncService *integrationapp.SyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *integrationapp.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// ExportOrders handles POST /legacy/export-orders. The job runs in the
// background and the response carries its initial snapshot.
func (h *SyncHandler) ExportOrders(c *gin.Context) {
	var req integrationapp.ExportOrdersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	job := h.syncService.ExportOrders(req)
	c.JSON(http.StatusAccepted, dto.NewSuccessResponse(job))
}

// ImportOrders handles POST /legacy/import-orders
func (h *SyncHandler) ImportOrders(c *gin.Context) {
	job := h.syncService.ImportOrders()
	c.JSON(http.StatusAccepted, dto.NewSuccessResponse(job))
}

// ExportMaster handles POST /legacy/export-master
func (h *SyncHandler) ExportMaster(c *gin.Context) {
	job := h.syncService.ExportMaster()
	c.JSON(http.StatusAccepted, dto.NewSuccessResponse(job))
}

// ListJobs handles GET /legacy/jobs
func (h *SyncHandler) ListJobs(c *gin.Context) {
	h.Success(c, h.syncService.ListJobs())
}

// GetJob handles GET /legacy/jobs/:id
func (h *SyncHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	job, ok := h.syncService.GetJob(id)
	if !ok {
		h.NotFound(c, "Job not found")
		return
	}

	h.Success(c, job)
}
