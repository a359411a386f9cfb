package model

// TableStatus describes table occupancy within a service session.
type TableStatus string

const (
	TableStatusFree     TableStatus = "FREE"
	TableStatusOccupied TableStatus = "OCCUPIED"
	TableStatusClosing  TableStatus = "CLOSING"
	TableStatusClosed   TableStatus = "CLOSED"
)

// Table describes a physical restaurant table and its accumulated consumption.
type Table struct {
	ID           int64
	RestaurantID int64
	Number       int
	Status       TableStatus
	Consumption  float64
	Capacity     int
	WaiterID     *int64
}
