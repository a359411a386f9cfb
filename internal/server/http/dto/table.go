package dto

// TableResponse is a snapshot of one restaurant table.
type TableResponse struct {
	ID          int64   `json:"id"`
	Number      int     `json:"number"`
	Status      string  `json:"status"`
	Consumption float64 `json:"consumption"`
	Capacity    int     `json:"capacity"`
	WaiterID    *int64  `json:"waiterId,omitempty"`
}

// TransferTableRequest moves active orders between tables. The waiter
// re-authenticates with PIN and password inside the payload.
type TransferTableRequest struct {
	RestaurantID           int64  `json:"restaurantId" binding:"required"`
	SourceTableNumber      int    `json:"sourceTableNumber" binding:"required"`
	DestinationTableNumber int    `json:"destinationTableNumber" binding:"required"`
	WaiterCode             string `json:"waiterCode" binding:"required"`
	WaiterPassword         string `json:"waiterPassword" binding:"required"`
}
