package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// registerReceiptRoutes registers routes related to receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/numbers", h.listReceiptNumbers)
		receipts.GET("/:receiptID", h.getReceipt)
		receipts.PUT("/:receiptID", h.updateReceipt)
		receipts.DELETE("/:receiptID", h.deleteReceipt)
	}
}

// createReceipt godoc
// @Summary Register a receipt
// @Description Records goods arriving at the warehouse and adds every item to the balances.
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input or archived reference"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Receipt number already exists"
// @Failure 500 {object} ErrorResponse "Failed to create receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create receipt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary Search receipts
// @Description Lists receipts, newest first, filtered by period, numbers, resources and units.
// @Tags receipts
// @Produce  json
// @Param   from query string false "First date (YYYY-MM-DD)"
// @Param   to query string false "Last date (YYYY-MM-DD)"
// @Param   numbers query []string false "Receipt numbers" collectionFormat(csv)
// @Param   resourceIds query []string false "Resource IDs" collectionFormat(csv)
// @Param   unitIds query []string false "Unit IDs" collectionFormat(csv)
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Failed to list receipts"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	var params dto.MovementSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Failed to list receipts")
		return
	}

	receipts, err := h.receiptService.SearchReceipts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list receipts")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Receipts listed", slog.Int("count", len(receipts)))
	c.JSON(http.StatusOK, dto.ToListReceiptsResponse(receipts))
}

// listReceiptNumbers godoc
// @Summary List receipt numbers
// @Tags receipts
// @Produce  json
// @Success 200 {object} dto.NumbersResponse
// @Failure 500 {object} ErrorResponse "Failed to list receipt numbers"
// @Security BearerAuth
// @Router /receipts/numbers [get]
func (h *receiptHandler) listReceiptNumbers(c *gin.Context) {
	numbers, err := h.receiptService.ListReceiptNumbers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list receipt numbers")
		return
	}
	c.JSON(http.StatusOK, dto.NumbersResponse{Numbers: numbers})
}

// getReceipt godoc
// @Summary Get a receipt
// @Tags receipts
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve receipt"
// @Security BearerAuth
// @Router /receipts/{receiptID} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("receiptID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// updateReceipt godoc
// @Summary Update a receipt
// @Description Replaces number, date and items; balances are adjusted by the difference.
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Param   receipt body dto.UpdateReceiptRequest true "Receipt details"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input or archived reference"
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 409 {object} ErrorResponse "Duplicate number or insufficient stock"
// @Failure 500 {object} ErrorResponse "Failed to update receipt"
// @Security BearerAuth
// @Router /receipts/{receiptID} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), c.Param("receiptID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Description Removes the receipt and withdraws its items from the balances.
// @Tags receipts
// @Param   receiptID path string true "Receipt ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse "Failed to delete receipt"
// @Security BearerAuth
// @Router /receipts/{receiptID} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.receiptService.DeleteReceipt(c.Request.Context(), c.Param("receiptID"), userID); err != nil {
		respondError(c, err, "Failed to delete receipt")
		return
	}
	c.Status(http.StatusNoContent)
}
