package models

// TableStatus represents the reservation state of a dining table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

// ValidTableStatus reports whether s is a known table status
func ValidTableStatus(s string) bool {
	switch TableStatus(s) {
	case TableAvailable, TableReserved:
		return true
	}
	return false
}

// Table numbers form a dense sequence 1..N; deleting a table renumbers every
// higher-numbered table down by one to keep the sequence contiguous.
type Table struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Number     int         `json:"number" gorm:"not null"`
	ChairCount int         `json:"chairCount"`
	Name       string      `json:"name,omitempty"`
	Status     TableStatus `json:"status" gorm:"not null;default:'available'"`
	CustomerID *string     `json:"customerId"`
}
