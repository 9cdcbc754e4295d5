// Package lifecycle holds the pure order-lifecycle rules: pricing, order
// numbering, and the pull-based processing timer. Nothing here touches the
// store; persistence of any transition is the caller's job.
package lifecycle

import (
	"strconv"
	"time"

	"restaurant-pos/models"
)

const (
	// TaxRate applied to the item subtotal of every order
	TaxRate = 0.05
	// DeliveryCharge is a flat surcharge on takeaway orders
	DeliveryCharge = 50.0
	// OrderNumberOffset shifts the running order count into the number
	// sequence printed on receipts
	OrderNumberOffset = 108
)

// Totals breaks down the money amounts of an order
type Totals struct {
	Subtotal       float64
	Taxes          float64
	DeliveryCharge float64
	GrandTotal     float64
}

// ComputeTotals prices a cart. Line prices are taken verbatim from the
// snapshots; they are not re-validated against the catalog.
func ComputeTotals(items []models.OrderItem, orderType models.OrderType) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	t := Totals{
		Subtotal: subtotal,
		Taxes:    subtotal * TaxRate,
	}
	if orderType == models.TypeTakeaway {
		t.DeliveryCharge = DeliveryCharge
	}
	t.GrandTotal = t.Subtotal + t.Taxes + t.DeliveryCharge
	return t
}

// OrderNumber derives the receipt number for the next order from the count
// of orders that already exist. The count-then-use derivation is not unique
// under concurrent creation; that is accepted behavior.
func OrderNumber(existingOrders int64) string {
	return strconv.FormatInt(existingOrders+OrderNumberOffset, 10)
}

// Advance applies the pull-based timer to an order in place. For a
// processing order it recomputes the remaining time from the wall clock and
// flips the status to done once the timer has elapsed; any other status
// reports zero remaining time. It returns true when the order transitioned
// to done during this call, in which case the caller must persist the new
// status and release the order's dine-in table. Advance is idempotent:
// once done, further calls change nothing and return false.
func Advance(o *models.Order, now time.Time) bool {
	if o.Status != models.StatusProcessing {
		o.RemainingTime = 0
		return false
	}
	elapsed := int(now.Sub(o.CreatedAt).Seconds())
	remaining := o.ProcessingTime - elapsed
	if remaining < 0 {
		remaining = 0
	}
	o.RemainingTime = remaining
	if remaining > 0 {
		return false
	}
	o.Status = models.StatusDone
	return true
}
