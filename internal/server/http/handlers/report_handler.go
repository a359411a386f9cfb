package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmesquit/mesapos/internal/server/http/dto"
)

// ReportHandler serves daily metrics and sales aggregates.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// DailyMetrics handles GET /api/v1/reports/daily-metrics.
func (h *ReportHandler) DailyMetrics(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	date, ok := parseDateQuery(c, "date", time.Now())
	if !ok {
		return
	}

	metric, err := h.facade.DailyMetrics(c.Request.Context(), claims.RestaurantID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DailyMetricResponse{
		Date:                metric.Date.Format(dateLayout),
		TotalOrders:         metric.TotalOrders,
		TotalRevenue:        metric.TotalRevenue,
		AverageDecisionTime: metric.AverageDecisionTime,
	})
}

// SalesByProduct handles GET /api/v1/reports/sales-by-product.
func (h *ReportHandler) SalesByProduct(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	now := time.Now()
	from, ok := parseDateQuery(c, "from", now.AddDate(0, 0, -30))
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to", now)
	if !ok {
		return
	}

	sales, err := h.facade.SalesByProduct(c.Request.Context(), claims.RestaurantID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.ProductSalesResponse, 0, len(sales))
	for _, s := range sales {
		responses = append(responses, dto.ProductSalesResponse{
			MenuItemID:   s.MenuItemID,
			Name:         s.Name,
			TotalSold:    s.TotalSold,
			TotalRevenue: s.TotalRevenue,
		})
	}
	c.JSON(http.StatusOK, responses)
}
