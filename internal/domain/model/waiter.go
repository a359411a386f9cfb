package model

import "time"

// Waiter identifies restaurant staff allowed to confirm orders.
type Waiter struct {
	ID           int64
	RestaurantID int64
	PinCode      string
	PasswordHash string
	Name         string
	Nickname     string
	CreatedAt    time.Time
}
