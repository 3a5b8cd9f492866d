package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/myorder/backend/internal/application/trade"
	"github.com/myorder/backend/internal/interfaces/http/middleware"
)

// InboundHandler handles inbound shipment API endpoints
type InboundHandler struct {
	BaseHandler
	inboundService *tradeapp.InboundService
}

// NewInboundHandler creates a new InboundHandler
func NewInboundHandler(inboundService *tradeapp.InboundService) *InboundHandler {
	return &InboundHandler{inboundService: inboundService}
}

// Create handles POST /inbounds
func (h *InboundHandler) Create(c *gin.Context) {
	var req tradeapp.CreateInboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inbound, err := h.inboundService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, inbound)
}

// GetByID handles GET /inbounds/:id
func (h *InboundHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid inbound ID")
		return
	}

	inbound, err := h.inboundService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inbound)
}

// List handles GET /inbounds
func (h *InboundHandler) List(c *gin.Context) {
	var filter tradeapp.InboundListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inbounds, total, err := h.inboundService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, inbounds, total, filter.Page, filter.PageSize)
}

// Update handles PUT /inbounds/:id
func (h *InboundHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid inbound ID")
		return
	}

	var req tradeapp.UpdateInboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inbound, err := h.inboundService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inbound)
}

// RecordArrival handles POST /inbounds/:id/arrival
func (h *InboundHandler) RecordArrival(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid inbound ID")
		return
	}

	var req tradeapp.RecordArrivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inbound, err := h.inboundService.RecordArrival(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, inbound)
}

// Delete handles DELETE /inbounds/:id
func (h *InboundHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid inbound ID")
		return
	}

	if err := h.inboundService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
