package models

// ServiceItem is a single line item in a pricing package.
type ServiceItem struct {
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Enabled  bool    `json:"enabled"`
}

type ServiceItems []ServiceItem

// TotalPrice sums the prices of enabled items. Every write path must store
// this value alongside the items so total_price never drifts from them.
func (items ServiceItems) TotalPrice() float64 {
	total := 0.0
	for _, item := range items {
		if item.Enabled {
			total += item.Price
		}
	}
	return total
}
