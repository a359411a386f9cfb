package dto

// WaiterAuthRequest carries waiter PIN credentials scoped to a restaurant.
type WaiterAuthRequest struct {
	PinCode      string `json:"pinCode" binding:"required"`
	Password     string `json:"password" binding:"required"`
	RestaurantID int64  `json:"restaurantId" binding:"required"`
}

// WaiterResponse is the public view of a waiter.
type WaiterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// WaiterAuthResponse pairs the issued token with the authenticated waiter.
type WaiterAuthResponse struct {
	Token  string         `json:"token"`
	Waiter WaiterResponse `json:"waiter"`
}

// LoginRequest describes restaurant staff credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RestaurantResponse is the public view of a restaurant account.
type RestaurantResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned from restaurant login.
type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	User        RestaurantResponse `json:"user"`
}
