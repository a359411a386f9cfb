package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmesquit/mesapos/internal/domain/model"
	"github.com/vmesquit/mesapos/internal/domain/repository"
	"github.com/vmesquit/mesapos/internal/server/http/dto"
	"github.com/vmesquit/mesapos/internal/usecase"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/v1/orders. Replays of the same transaction id
// return the stored order with the same 201 as the first attempt.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := usecase.CreateOrderInput{
		RestaurantID:        req.RestaurantID,
		TransactionID:       req.TransactionID,
		TableID:             req.TableID,
		WaiterID:            req.WaiterID,
		CustomerID:          req.CustomerID,
		TemporaryCustomerID: req.TemporaryCustomerID,
		CustomerName:        req.CustomerName,
		TotalDecisionTime:   req.KPIs.TotalDecisionTime,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.CreateOrderItemInput{
			MenuItemID:     item.MenuItemID,
			Quantity:       item.Quantity,
			Observation:    item.Observation,
			DecisionTime:   item.DecisionTime,
			IsSuggestion:   item.IsSuggestion,
			SuggestionType: item.SuggestionType,
		})
	}

	order, _, err := h.facade.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	h.list(c, true)
}

// ListCompact handles GET /api/v1/orders/compact, omitting item lists.
func (h *OrderHandler) ListCompact(c *gin.Context) {
	h.list(c, false)
}

func (h *OrderHandler) list(c *gin.Context, includeItems bool) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	filter := repository.OrderFilter{IncludeItems: includeItems}
	if raw := c.Query("tableId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.TableID = &id
	}
	if raw := c.Query("waiterId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.WaiterID = &id
	}

	orders, err := h.facade.Orders(c.Request.Context(), claims.RestaurantID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// History handles GET /api/v1/orders/history.
func (h *OrderHandler) History(c *gin.Context) {
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

	var status *model.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := model.OrderStatus(raw)
		if !s.Valid() {
			c.Status(http.StatusBadRequest)
			return
		}
		status = &s
	}

	orders, err := h.facade.OrdersByDateRange(c.Request.Context(), claims.RestaurantID, from, to, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ItemsHistory handles GET /api/v1/orders/items/history.
func (h *OrderHandler) ItemsHistory(c *gin.Context) {
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

	var isSuggestion *bool
	if raw := c.Query("isSuggestion"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		isSuggestion = &value
	}

	items, err := h.facade.SoldItemsByDateRange(c.Request.Context(), claims.RestaurantID, from, to, isSuggestion)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.SoldItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.SoldItemResponse{
			MenuItemID:   item.MenuItemID,
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     item.Quantity,
			Total:        item.Total,
			IsSuggestion: item.IsSuggestion,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// ByCode handles GET /api/v1/orders/code/:code.
func (h *OrderHandler) ByCode(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	order, err := h.facade.OrderByCode(c.Request.Context(), c.Param("code"), claims.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ByCustomer handles GET /api/v1/orders/customer/:customerId.
func (h *OrderHandler) ByCustomer(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orders, err := h.facade.OrdersByCustomer(c.Request.Context(), claims.RestaurantID, customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ByTemporaryCustomer handles GET /api/v1/orders/temporary-customer/:temporaryCustomerId.
func (h *OrderHandler) ByTemporaryCustomer(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	orders, err := h.facade.OrdersByTemporaryCustomer(c.Request.Context(), claims.RestaurantID, c.Param("temporaryCustomerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Confirm handles POST /api/v1/orders/:id/confirm.
func (h *OrderHandler) Confirm(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.ConfirmOrderWithPin(c.Request.Context(), claims.RestaurantID, orderID, req.PinCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	claims := CurrentClaims(c)
	if claims == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), claims.RestaurantID, orderID, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}
