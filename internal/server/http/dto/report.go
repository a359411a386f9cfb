package dto

// DailyMetricResponse aggregates one restaurant day.
type DailyMetricResponse struct {
	Date                string  `json:"date"`
	TotalOrders         int     `json:"totalOrders"`
	TotalRevenue        float64 `json:"totalRevenue"`
	AverageDecisionTime float64 `json:"averageDecisionTime"`
}

// ProductSalesResponse is a per-product sales aggregate.
type ProductSalesResponse struct {
	MenuItemID   int64   `json:"menuItemId"`
	Name         string  `json:"name"`
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// SoldItemResponse is one sold order line for item history reports.
type SoldItemResponse struct {
	MenuItemID   int64   `json:"menuItemId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
	IsSuggestion bool    `json:"isSuggestion"`
}
