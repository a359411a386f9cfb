package model

import "time"

// Restaurant is a tenant owning tables, waiters, menu and orders.
type Restaurant struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
