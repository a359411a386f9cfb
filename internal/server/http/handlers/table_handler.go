package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vmesquit/mesapos/internal/server/http/dto"
	"github.com/vmesquit/mesapos/internal/usecase"
)

// TableHandler manages table registry endpoints.
type TableHandler struct {
	facade TableFacade
}

// NewTableHandler constructs TableHandler.
func NewTableHandler(facade TableFacade) *TableHandler {
	return &TableHandler{facade: facade}
}

// List handles GET /api/v1/tables.
func (h *TableHandler) List(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	tables, err := h.facade.Tables(c.Request.Context(), claims.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		responses = append(responses, dto.TableResponse{
			ID:          t.ID,
			Number:      t.Number,
			Status:      string(t.Status),
			Consumption: t.Consumption,
			Capacity:    t.Capacity,
			WaiterID:    t.WaiterID,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// Release handles POST /api/v1/tables/:id/release. Tables with unfinished
// orders are refused with 409; tables of other restaurants read as 404.
func (h *TableHandler) Release(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	tableID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ReleaseTable(c.Request.Context(), claims.RestaurantID, tableID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Transfer handles POST /api/v1/tables/transfer.
func (h *TableHandler) Transfer(c *gin.Context) {
	var req dto.TransferTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := usecase.TransferInput{
		RestaurantID:           req.RestaurantID,
		SourceTableNumber:      req.SourceTableNumber,
		DestinationTableNumber: req.DestinationTableNumber,
		WaiterCode:             req.WaiterCode,
		WaiterPassword:         req.WaiterPassword,
	}
	if err := h.facade.TransferTable(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
