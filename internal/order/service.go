package order

import (
	"context"
	"github.com/rookgm/orderclient/internal/logger"
	"github.com/rookgm/orderclient/internal/models"
	"github.com/rookgm/orderclient/internal/query"
	"github.com/rookgm/orderclient/internal/rest"
	"go.uber.org/zap"
	"net/http"
)

//go:generate mockgen -destination=mocks/good_service.go -package=mocks . GoodService

// ResourcePath is orders resource path relative to the server url
const ResourcePath = "api/orders"

const (
	defaultPredicate = "id"
	defaultAscending = true
)

// GoodService is interface for updating good stock
type GoodService interface {
	// UpdateAmount sets stock amount of good
	UpdateAmount(ctx context.Context, id string, amount int) (*models.Response[*models.Good], error)
}

// Service is access service for orders resource.
// Predicate and Ascending are default sort preferences, callers may change them between queries.
type Service struct {
	rest  *rest.Client
	goods GoodService

	Predicate string
	Ascending bool
}

// NewService creates new Service instance
func NewService(rc *rest.Client, goods GoodService) *Service {
	return &Service{
		rest:      rc,
		goods:     goods,
		Predicate: defaultPredicate,
		Ascending: defaultAscending,
	}
}

// Create creates new order
func (s *Service) Create(ctx context.Context, order models.NewOrder) (*models.Response[*models.Order], error) {
	// POST /api/orders
	raw, err := s.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Body:   fromNewOrder(order),
	})
	if err != nil {
		return nil, err
	}

	return convertResponseFromServer(raw)
}

// Update replaces order
func (s *Service) Update(ctx context.Context, order models.Order) (*models.Response[*models.Order], error) {
	id := GetOrderIdentifier(order)
	if id == "" {
		return nil, models.ErrOrderIDRequired
	}

	// PUT /api/orders/{id}
	raw, err := s.rest.Do(ctx, rest.Request{
		Method: http.MethodPut,
		ID:     id,
		Body:   fromOrder(order),
	})
	if err != nil {
		return nil, err
	}

	return convertResponseFromServer(raw)
}

// PartialUpdate changes the set fields of order
func (s *Service) PartialUpdate(ctx context.Context, order models.PartialOrder) (*models.Response[*models.Order], error) {
	id := GetOrderIdentifier(order)
	if id == "" {
		return nil, models.ErrOrderIDRequired
	}

	// PATCH /api/orders/{id}
	raw, err := s.rest.Do(ctx, rest.Request{
		Method:      http.MethodPatch,
		ID:          id,
		Body:        fromPartialOrder(order),
		ContentType: rest.ContentTypeMergePatch,
	})
	if err != nil {
		return nil, err
	}

	return convertResponseFromServer(raw)
}

// Find returns order by id
func (s *Service) Find(ctx context.Context, id string) (*models.Response[*models.Order], error) {
	if id == "" {
		return nil, models.ErrOrderIDRequired
	}

	// GET /api/orders/{id}
	raw, err := s.rest.Do(ctx, rest.Request{
		Method: http.MethodGet,
		ID:     id,
	})
	if err != nil {
		return nil, err
	}

	return convertResponseFromServer(raw)
}

// Query returns orders matching opts. Null body gives nil Body.
func (s *Service) Query(ctx context.Context, opts *query.Options) (*models.Response[[]*models.Order], error) {
	// GET /api/orders?page=&size=&sort=
	raw, err := s.rest.Do(ctx, rest.Request{
		Method: http.MethodGet,
		Query:  opts.Values(),
	})
	if err != nil {
		return nil, err
	}

	return convertResponseArrayFromServer(raw)
}

// Delete deletes order by id. Response body is returned as is.
func (s *Service) Delete(ctx context.Context, id string) (*models.Response[[]byte], error) {
	if id == "" {
		return nil, models.ErrOrderIDRequired
	}

	// DELETE /api/orders/{id}
	return s.rest.Do(ctx, rest.Request{
		Method: http.MethodDelete,
		ID:     id,
	})
}

// DefaultSortQueryParam returns sort parameter built from service sort preferences
func (s *Service) DefaultSortQueryParam() []string {
	return SortQueryParam(s.Predicate, s.Ascending)
}

func convertResponseFromServer(raw *models.Response[[]byte]) (*models.Response[*models.Order], error) {
	wire, err := rest.Decode[*restOrder](raw)
	if err != nil {
		logger.Log.Error("decode order", zap.Error(err))
		return nil, err
	}

	order, err := toOrder(wire.Body)
	if err != nil {
		logger.Log.Error("convert order date", zap.Error(err))
		return nil, err
	}

	return &models.Response[*models.Order]{
		StatusCode: wire.StatusCode,
		Header:     wire.Header,
		Body:       order,
	}, nil
}

func convertResponseArrayFromServer(raw *models.Response[[]byte]) (*models.Response[[]*models.Order], error) {
	wire, err := rest.Decode[[]*restOrder](raw)
	if err != nil {
		logger.Log.Error("decode orders", zap.Error(err))
		return nil, err
	}

	orders, err := toOrders(wire.Body)
	if err != nil {
		logger.Log.Error("convert orders date", zap.Error(err))
		return nil, err
	}

	return &models.Response[[]*models.Order]{
		StatusCode: wire.StatusCode,
		Header:     wire.Header,
		Body:       orders,
	}, nil
}
