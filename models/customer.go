package models

// Customer records are keyed by phone number and upserted as a side effect
// of order creation; OrdersCount grows by one per placed order.
type Customer struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Phone       string `json:"phone" gorm:"uniqueIndex;not null"`
	Address     string `json:"address,omitempty"`
	OrdersCount int    `json:"ordersCount"`
}
