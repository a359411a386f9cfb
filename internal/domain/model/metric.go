package model

import "time"

// DailyMetric aggregates one restaurant day. Derived data, recomputed on
// every order mutation, never authored directly.
type DailyMetric struct {
	ID                  int64
	RestaurantID        int64
	Date                time.Time
	TotalOrders         int
	TotalRevenue        float64
	AverageDecisionTime float64
	UpdatedAt           time.Time
}

// ProductSales is a per-product sales aggregate over a date range.
type ProductSales struct {
	MenuItemID   int64
	Name         string
	TotalSold    int
	TotalRevenue float64
}

// SoldItem is one sold order line joined with its menu item, used by
// item history reports.
type SoldItem struct {
	MenuItemID   int64
	Name         string
	Category     string
	Quantity     int
	Total        float64
	IsSuggestion bool
}
