package order

import "github.com/rookgm/orderclient/internal/models"

const (
	sortAscending  = "asc"
	sortDescending = "desc"
)

// GetOrderIdentifier returns order identifier
func GetOrderIdentifier(o models.Identified) string {
	return o.Identifier()
}

// CompareOrder reports whether a and b are the same order.
// Two nil orders are equal, nil is never equal to non-nil.
func CompareOrder(a, b *models.Order) bool {
	if a == nil || b == nil {
		return a == b
	}
	return GetOrderIdentifier(a) == GetOrderIdentifier(b)
}

// AddOrderToCollectionIfMissing prepends candidates whose id is not in collection yet.
// Nil candidates are dropped, the first candidate wins among equal ids.
// When nothing is added collection itself is returned.
func AddOrderToCollectionIfMissing(collection []*models.Order, candidates ...*models.Order) []*models.Order {
	ids := make(map[string]struct{}, len(collection)+len(candidates))
	for _, o := range collection {
		if o != nil {
			ids[GetOrderIdentifier(o)] = struct{}{}
		}
	}

	var added []*models.Order
	for _, c := range candidates {
		if c == nil {
			continue
		}
		id := GetOrderIdentifier(c)
		if _, ok := ids[id]; ok {
			continue
		}
		ids[id] = struct{}{}
		added = append(added, c)
	}

	if len(added) == 0 {
		return collection
	}
	return append(added, collection...)
}

// SortQueryParam returns sort parameter value "<predicate>,asc|desc".
// Empty predicate means no explicit sort.
func SortQueryParam(predicate string, ascending bool) []string {
	if predicate == "" {
		return []string{}
	}

	direction := sortDescending
	if ascending {
		direction = sortAscending
	}
	return []string{predicate + "," + direction}
}
