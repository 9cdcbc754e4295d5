package models

import "time"

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusDone       OrderStatus = "done"
	StatusCompleted  OrderStatus = "completed"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusProcessing, StatusDone, StatusCompleted:
		return true
	}
	return false
}

// OrderType distinguishes table-bound orders from takeaway ones
type OrderType string

const (
	TypeDineIn   OrderType = "dinein"
	TypeTakeaway OrderType = "takeaway"
)

type Order struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"orderNumber" gorm:"not null"`
	TableNumber     *int        `json:"tableNumber"` // dine-in only
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress,omitempty"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Type            OrderType   `json:"type" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'processing'"`
	TotalAmount     float64     `json:"totalAmount"`
	Taxes           float64     `json:"taxes"`
	DeliveryCharge  float64     `json:"deliveryCharge"`
	GrandTotal      float64     `json:"grandTotal"`
	ProcessingTime  int         `json:"processingTime"` // seconds
	RemainingTime   int         `json:"remainingTime"`  // seconds
	CreatedAt       time.Time   `json:"createdAt"`
	AssignedChef    string      `json:"assignedChef,omitempty"`
}

// OrderItem is a value snapshot of a cart line at order time, not a live
// reference into the menu catalog.
type OrderItem struct {
	ID                  uint    `json:"-" gorm:"primaryKey"`
	OrderID             string  `json:"-" gorm:"index;not null"`
	MenuItemID          string  `json:"menuItemId"`
	MenuItemName        string  `json:"menuItemName"`
	Quantity            int     `json:"quantity" gorm:"not null"`
	Price               float64 `json:"price" gorm:"not null"` // snapshot price
	CookingInstructions string  `json:"cookingInstructions,omitempty"`
}
