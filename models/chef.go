package models

// Chef carries an in-flight order counter used for least-loaded assignment.
// CurrentOrders goes up when an order is assigned and back down when the
// order reaches the completed state.
type Chef struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null"`
	CurrentOrders int    `json:"currentOrders"`
}
