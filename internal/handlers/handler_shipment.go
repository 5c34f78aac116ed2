package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// shipmentHandler handles HTTP requests related to shipments.
type shipmentHandler struct {
	shipmentService portssvc.ShipmentSvcFacade
}

// newShipmentHandler creates a new shipmentHandler.
func newShipmentHandler(ss portssvc.ShipmentSvcFacade) *shipmentHandler {
	return &shipmentHandler{
		shipmentService: ss,
	}
}

// registerShipmentRoutes registers routes related to shipments.
func registerShipmentRoutes(rg *gin.RouterGroup, shipmentService portssvc.ShipmentSvcFacade) {
	h := newShipmentHandler(shipmentService)

	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.createShipment)
		shipments.GET("", h.listShipments)
		shipments.GET("/numbers", h.listShipmentNumbers)
		shipments.GET("/:shipmentID", h.getShipment)
		shipments.PUT("/:shipmentID", h.updateShipment)
		shipments.DELETE("/:shipmentID", h.deleteShipment)
		shipments.POST("/:shipmentID/sign", h.signShipment)
		shipments.POST("/:shipmentID/revoke", h.revokeShipment)
	}
}

// createShipment godoc
// @Summary Create a draft shipment
// @Description Drafts do not touch balances until they are signed.
// @Tags shipments
// @Accept  json
// @Produce  json
// @Param   shipment body dto.CreateShipmentRequest true "Shipment details"
// @Success 201 {object} dto.ShipmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input or archived reference"
// @Failure 409 {object} ErrorResponse "Shipment number already exists"
// @Failure 500 {object} ErrorResponse "Failed to create shipment"
// @Security BearerAuth
// @Router /shipments [post]
func (h *shipmentHandler) createShipment(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	shipment, err := h.shipmentService.CreateShipment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create shipment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToShipmentResponse(shipment))
}

// listShipments godoc
// @Summary Search shipments
// @Tags shipments
// @Produce  json
// @Param   from query string false "First date (YYYY-MM-DD)"
// @Param   to query string false "Last date (YYYY-MM-DD)"
// @Param   numbers query []string false "Shipment numbers" collectionFormat(csv)
// @Param   resourceIds query []string false "Resource IDs" collectionFormat(csv)
// @Param   unitIds query []string false "Unit IDs" collectionFormat(csv)
// @Param   clientIds query []string false "Client IDs" collectionFormat(csv)
// @Param   state query string false "DRAFT or SIGNED"
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Failed to list shipments"
// @Security BearerAuth
// @Router /shipments [get]
func (h *shipmentHandler) listShipments(c *gin.Context) {
	var params dto.MovementSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Failed to list shipments")
		return
	}

	shipments, err := h.shipmentService.SearchShipments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list shipments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// listShipmentNumbers godoc
// @Summary List shipment numbers
// @Tags shipments
// @Produce  json
// @Success 200 {object} dto.NumbersResponse
// @Security BearerAuth
// @Router /shipments/numbers [get]
func (h *shipmentHandler) listShipmentNumbers(c *gin.Context) {
	numbers, err := h.shipmentService.ListShipmentNumbers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list shipment numbers")
		return
	}
	c.JSON(http.StatusOK, dto.NumbersResponse{Numbers: numbers})
}

// getShipment godoc
// @Summary Get a shipment
// @Tags shipments
// @Produce  json
// @Param   shipmentID path string true "Shipment ID"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Security BearerAuth
// @Router /shipments/{shipmentID} [get]
func (h *shipmentHandler) getShipment(c *gin.Context) {
	shipment, err := h.shipmentService.GetShipmentByID(c.Request.Context(), c.Param("shipmentID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve shipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}

// updateShipment godoc
// @Summary Update a draft shipment
// @Tags shipments
// @Accept  json
// @Produce  json
// @Param   shipmentID path string true "Shipment ID"
// @Param   shipment body dto.UpdateShipmentRequest true "Shipment details"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input or archived reference"
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Failure 409 {object} ErrorResponse "Shipment is signed or number exists"
// @Security BearerAuth
// @Router /shipments/{shipmentID} [put]
func (h *shipmentHandler) updateShipment(c *gin.Context) {
	var req dto.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	shipment, err := h.shipmentService.UpdateShipment(c.Request.Context(), c.Param("shipmentID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update shipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}

// deleteShipment godoc
// @Summary Delete a draft shipment
// @Tags shipments
// @Param   shipmentID path string true "Shipment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Failure 409 {object} ErrorResponse "Shipment is signed"
// @Security BearerAuth
// @Router /shipments/{shipmentID} [delete]
func (h *shipmentHandler) deleteShipment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.shipmentService.DeleteShipment(c.Request.Context(), c.Param("shipmentID"), userID); err != nil {
		respondError(c, err, "Failed to delete shipment")
		return
	}
	c.Status(http.StatusNoContent)
}

// signShipment godoc
// @Summary Sign a shipment
// @Description Withdraws the shipment's items from the balances. Signing a signed shipment is a no-op.
// @Tags shipments
// @Produce  json
// @Param   shipmentID path string true "Shipment ID"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 400 {object} ErrorResponse "Shipment has no items"
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /shipments/{shipmentID}/sign [post]
func (h *shipmentHandler) signShipment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	shipment, err := h.shipmentService.SignShipment(c.Request.Context(), c.Param("shipmentID"), userID)
	if err != nil {
		respondError(c, err, "Failed to sign shipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}

// revokeShipment godoc
// @Summary Revoke a signed shipment
// @Description Returns the shipment's items to the balances. Revoking a draft is a no-op.
// @Tags shipments
// @Produce  json
// @Param   shipmentID path string true "Shipment ID"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 404 {object} ErrorResponse "Shipment not found"
// @Security BearerAuth
// @Router /shipments/{shipmentID}/revoke [post]
func (h *shipmentHandler) revokeShipment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	shipment, err := h.shipmentService.RevokeShipment(c.Request.Context(), c.Param("shipmentID"), userID)
	if err != nil {
		respondError(c, err, "Failed to revoke shipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}
