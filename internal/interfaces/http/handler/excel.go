package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	integrationapp "github.com/myorder/backend/internal/application/integration"
)

// ExcelHandler handles Excel import and template download endpoints
type ExcelHandler struct {
	BaseHandler
	excelService *integrationapp.ExcelService
}

// NewExcelHandler creates a new ExcelHandler
func NewExcelHandler(excelService *integrationapp.ExcelService) *ExcelHandler {
	return &ExcelHandler{excelService: excelService}
}

// ImportOrders handles POST /excel/upload-order. The workbook arrives as a
// multipart upload under the "file" field.
func (h *ExcelHandler) ImportOrders(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.excelService.ImportOrders(c.Request.Context(), file)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DownloadTemplate handles GET /excel/generate-template and streams an empty
// workbook with the expected column headers.
func (h *ExcelHandler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="order_template.xlsx"`)

	if err := h.excelService.WriteTemplate(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
}
