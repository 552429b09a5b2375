package cart

// LineItem is one product-quantity pairing in the cart. Name, price and the
// display fields are a snapshot of the product taken when the line was
// added; they are not refreshed if the catalog record changes afterwards.
type LineItem struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
	Category     string  `json:"category,omitempty"`
	ImageRef     string  `json:"imageRef,omitempty"`
	ReturnPolicy string  `json:"returnPolicy,omitempty"`
}

// Product carries the catalog fields a new line snapshots.
type Product struct {
	ID           string
	Name         string
	Price        float64
	Category     string
	ImageRef     string
	ReturnPolicy string
}

// Count is the badge value: the sum of quantities, not the number of lines.
func Count(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums unit price times quantity across all lines.
func Subtotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
