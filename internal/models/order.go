package models

import "time"

// order status
const (
	OrderStatusNew       = "NEW"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusCancelled = "CANCELLED"
)

// Identified is anything carrying an order identifier
type Identified interface {
	Identifier() string
}

// NewOrder is order that has not been persisted yet
type NewOrder struct {
	Date   *time.Time
	Status string
	Goods  []GoodInOrder
}

// Order is order entity. ID is assigned by the backend and never changes.
type Order struct {
	ID     string        `json:"id"`
	Date   *time.Time    `json:"date,omitempty"`
	Status string        `json:"status,omitempty"`
	Goods  []GoodInOrder `json:"goods_in_order,omitempty"`
}

func (o Order) Identifier() string {
	return o.ID
}

// PartialOrder carries the order id and the fields to change.
// Nil fields are not sent.
type PartialOrder struct {
	ID     string
	Date   *time.Time
	Status *string
	Goods  []GoodInOrder
}

func (o PartialOrder) Identifier() string {
	return o.ID
}
