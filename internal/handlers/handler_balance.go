package handlers

import (
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// balanceHandler handles HTTP requests related to stock balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// registerBalanceRoutes registers routes related to balances.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: balanceService}

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/export", h.exportBalances)
	}
}

// listBalances godoc
// @Summary List stock balances
// @Description Returns the amount on hand per resource and unit. Empty filters match everything.
// @Tags balances
// @Produce  json
// @Param   resourceIds query []string false "Resource IDs" collectionFormat(csv)
// @Param   unitIds query []string false "Unit IDs" collectionFormat(csv)
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 500 {object} ErrorResponse "Failed to list balances"
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	var params dto.BalanceSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	balances, err := h.balanceService.SearchBalances(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBalancesResponse(balances))
}

// exportBalances godoc
// @Summary Export stock balances
// @Description Downloads the filtered balances as an Excel workbook.
// @Tags balances
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   resourceIds query []string false "Resource IDs" collectionFormat(csv)
// @Param   unitIds query []string false "Unit IDs" collectionFormat(csv)
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse "Failed to export balances"
// @Security BearerAuth
// @Router /balances/export [get]
func (h *balanceHandler) exportBalances(c *gin.Context) {
	var params dto.BalanceSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	data, err := h.balanceService.ExportBalances(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to export balances")
		return
	}

	filename := fmt.Sprintf("balances-%s.xlsx", time.Now().UTC().Format(dto.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
