package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vmesquit/mesapos/internal/server/http/dto"
)

// AuthHandler processes waiter authentication and restaurant login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// AuthenticateWaiter handles POST /api/v1/waiters/auth.
func (h *AuthHandler) AuthenticateWaiter(c *gin.Context) {
	var req dto.WaiterAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	waiter, token, err := h.facade.AuthenticateWaiter(c.Request.Context(), req.PinCode, req.Password, req.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WaiterAuthResponse{
		Token: token,
		Waiter: dto.WaiterResponse{
			ID:       waiter.ID,
			Name:     waiter.Name,
			Nickname: waiter.Nickname,
		},
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	restaurant, token, err := h.facade.LoginRestaurant(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		User: dto.RestaurantResponse{
			ID:    restaurant.ID,
			Name:  restaurant.Name,
			Email: restaurant.Email,
		},
	})
}
