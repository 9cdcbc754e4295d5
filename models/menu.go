package models

// MenuItem is a catalog entry. Its price and preparation time are
// snapshotted onto orders at creation time, so later catalog edits never
// affect already-placed orders.
type MenuItem struct {
	ID                     string  `json:"id" gorm:"primaryKey"`
	Name                   string  `json:"name" gorm:"not null"`
	Description            string  `json:"description"`
	Price                  float64 `json:"price" gorm:"not null"`
	Category               string  `json:"category"`
	Stock                  int     `json:"stock"`
	AveragePreparationTime int     `json:"averagePreparationTime"` // minutes per unit
	ImageURL               string  `json:"imageUrl,omitempty"`
}
