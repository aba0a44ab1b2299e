package order

import (
	"github.com/rookgm/orderclient/internal/models"
	"time"
)

// restOrder is order as it travels over the wire
type restOrder struct {
	ID     string               `json:"id,omitempty"`
	Date   *string              `json:"date"`
	Status string               `json:"status,omitempty"`
	Goods  []models.GoodInOrder `json:"goods_in_order,omitempty"`
}

// restReplaceOrder is order sent on full replace, every field is sent
type restReplaceOrder struct {
	ID     string               `json:"id"`
	Date   *string              `json:"date"`
	Status string               `json:"status"`
	Goods  []models.GoodInOrder `json:"goods_in_order"`
}

// restPartialOrder is partial order as it travels over the wire, unset fields are omitted
type restPartialOrder struct {
	ID     string               `json:"id"`
	Date   *string              `json:"date,omitempty"`
	Status *string              `json:"status,omitempty"`
	Goods  []models.GoodInOrder `json:"goods_in_order,omitempty"`
}

// convertDateFromClient formats date for the wire, nil stays nil
func convertDateFromClient(date *time.Time) *string {
	if date == nil {
		return nil
	}
	s := date.Format(time.RFC3339Nano)
	return &s
}

// convertDateFromServer parses wire date. Nil and empty string give nil.
// Date without time is midnight UTC.
func convertDateFromServer(date *string) (*time.Time, error) {
	if date == nil || *date == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *date)
	if err != nil {
		var dateErr error
		if t, dateErr = time.Parse(time.DateOnly, *date); dateErr != nil {
			return nil, err
		}
	}
	return &t, nil
}

func fromNewOrder(o models.NewOrder) restOrder {
	return restOrder{
		Date:   convertDateFromClient(o.Date),
		Status: o.Status,
		Goods:  o.Goods,
	}
}

// fromOrder converts order for full replace, nil goods are sent as empty list
func fromOrder(o models.Order) restReplaceOrder {
	goods := o.Goods
	if goods == nil {
		goods = []models.GoodInOrder{}
	}
	return restReplaceOrder{
		ID:     o.ID,
		Date:   convertDateFromClient(o.Date),
		Status: o.Status,
		Goods:  goods,
	}
}

func fromPartialOrder(o models.PartialOrder) restPartialOrder {
	return restPartialOrder{
		ID:     o.ID,
		Date:   convertDateFromClient(o.Date),
		Status: o.Status,
		Goods:  o.Goods,
	}
}

// toOrder converts wire order to order, nil stays nil
func toOrder(r *restOrder) (*models.Order, error) {
	if r == nil {
		return nil, nil
	}

	date, err := convertDateFromServer(r.Date)
	if err != nil {
		return nil, err
	}

	return &models.Order{
		ID:     r.ID,
		Date:   date,
		Status: r.Status,
		Goods:  r.Goods,
	}, nil
}

// toOrders converts every element independently keeping order and nil elements.
// Nil slice stays nil.
func toOrders(rs []*restOrder) ([]*models.Order, error) {
	if rs == nil {
		return nil, nil
	}

	orders := make([]*models.Order, len(rs))
	for i, r := range rs {
		o, err := toOrder(r)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}
