package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vmesquit/mesapos/internal/domain/errors"
	"github.com/vmesquit/mesapos/internal/domain/model"
	pkgAuth "github.com/vmesquit/mesapos/internal/pkg/auth"
	"github.com/vmesquit/mesapos/internal/server/http/dto"
	"github.com/vmesquit/mesapos/internal/server/http/middleware"
)

const dateLayout = "2006-01-02"

// CurrentClaims extracts authenticated token claims from context.
func CurrentClaims(c *gin.Context) *pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := val.(*pkgAuth.Claims)
	return claims
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, domainErrors.ErrInvalidPin),
		errors.Is(err, pkgAuth.ErrInvalidToken):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrConflict),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func parseDateQuery(c *gin.Context, key string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return time.Time{}, false
	}
	return parsed, true
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:           order.ID,
		Code:         order.Code,
		Status:       string(order.Status),
		Total:        order.Total,
		TableID:      order.TableID,
		WaiterID:     order.WaiterID,
		CustomerName: order.CustomerName,
		CreatedAt:    order.CreatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:             item.ID,
			MenuItemID:     item.MenuItemID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Observation:    item.Observation,
			IsSuggestion:   item.IsSuggestion,
			SuggestionType: item.SuggestionType,
		})
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}
	return responses
}
