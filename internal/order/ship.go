package order

import (
	"context"
	"github.com/rookgm/orderclient/internal/logger"
	"github.com/rookgm/orderclient/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DecrementGoodsCountOnShip sets every good stock to what is left after the order ships.
// Updates run concurrently. Results are in input order.
// The first failure is returned at once and cancels updates still in flight,
// updates that already succeeded are not rolled back.
func (s *Service) DecrementGoodsCountOnShip(ctx context.Context, goodsInOrder []models.GoodInOrder) ([]*models.Response[*models.Good], error) {
	results := make([]*models.Response[*models.Good], len(goodsInOrder))

	g, gctx := errgroup.WithContext(ctx)
	failed := make(chan error, 1)
	for i, gio := range goodsInOrder {
		g.Go(func() error {
			amount := gio.Remainder()

			logger.Log.Debug("decrement good count",
				zap.String("good_id", gio.GoodID),
				zap.Int("amount", amount))

			resp, err := s.goods.UpdateAmount(gctx, gio.GoodID, amount)
			if err != nil {
				logger.Log.Error("decrement good count", zap.String("good_id", gio.GoodID), zap.Error(err))
				select {
				case failed <- err:
				default:
				}
				return err
			}

			results[i] = resp
			return nil
		})
	}

	// updates that ignore cancellation keep running after a failure is reported
	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-failed:
		return nil, err
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return results, nil
	}
}
