package models

// DayRevenue groups revenue by weekday abbreviation of order creation time,
// so orders a week apart on the same weekday aggregate together.
type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

type ChefOrders struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// Analytics is the on-demand rollup served by GET /api/analytics
type Analytics struct {
	TotalChefs            int64          `json:"totalChefs"`
	TotalRevenue          float64        `json:"totalRevenue"`
	TotalOrders           int            `json:"totalOrders"`
	TotalClients          int64          `json:"totalClients"`
	OrdersByType          map[string]int `json:"ordersByType"`
	RevenueByDay          []DayRevenue   `json:"revenueByDay"`
	ChefOrderDistribution []ChefOrders   `json:"chefOrderDistribution"`
}
