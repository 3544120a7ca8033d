package domain

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be positive")
var ErrEmptyCart = errors.New("cart is empty")

// CartLine is a product snapshot plus a quantity. A cart holds at most one
// line per product id; repeated adds merge into the existing line.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotals recomputes the derived cart values from scratch. Subtotal and
// item count are never stored independently of the line list; every mutation
// ends with this recomputation.
func CartTotals(lines []CartLine) (subtotal float64, itemCount int) {
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
		itemCount += line.Quantity
	}
	return subtotal, itemCount
}
