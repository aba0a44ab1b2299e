package models

// Good is inventory item
type Good struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Amount int    `json:"amount"`
}

// GoodInOrder links an order line to the referenced good.
// GoodAmount is the good stock, GoodInOrderAmount is allocated to the order.
type GoodInOrder struct {
	ID                string `json:"id,omitempty"`
	GoodID            string `json:"good_id"`
	GoodAmount        int    `json:"good_amount"`
	GoodInOrderAmount int    `json:"good_in_order_amount"`
}

// Remainder returns good stock left after the order ships
func (g GoodInOrder) Remainder() int {
	return g.GoodAmount - g.GoodInOrderAmount
}
