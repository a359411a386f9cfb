package model

// MenuCategory groups menu items and binds them to a restaurant.
type MenuCategory struct {
	ID           int64
	RestaurantID int64
	Name         string
}

// MenuItem is a sellable product; restaurant ownership goes through the category.
type MenuItem struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	Price       float64
	IsActive    bool
	Image       string
}
