package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Restaurants() RestaurantRepository
	Waiters() WaiterRepository
	Tables() TableRepository
	Menu() MenuRepository
	Orders() OrderRepository
	Metrics() MetricRepository
}
