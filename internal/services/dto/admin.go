package dto

type MarketplaceStats struct {
	TotalUsers   int64   `json:"total_users"`
	Customers    int64   `json:"customers"`
	Artists      int64   `json:"artists"`
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type AdminDashboardResponse struct {
	PendingShops []ShopView       `json:"pendingShops"`
	Orders       []OrderView      `json:"orders"`
	Stats        MarketplaceStats `json:"stats"`
}
