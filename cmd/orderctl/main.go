package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"github.com/rookgm/orderclient/config"
	"github.com/rookgm/orderclient/internal/endpoint"
	"github.com/rookgm/orderclient/internal/good"
	"github.com/rookgm/orderclient/internal/logger"
	"github.com/rookgm/orderclient/internal/metrics"
	"github.com/rookgm/orderclient/internal/models"
	"github.com/rookgm/orderclient/internal/order"
	"github.com/rookgm/orderclient/internal/query"
	"github.com/rookgm/orderclient/internal/rest"
	"go.uber.org/zap"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

var errUsage = errors.New("usage: orderctl [flags] list [key=value ...] | get <id> | delete <id> | ship <id>")

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	orders, err := newOrderService(cfg, metrics.NewClientMetrics())
	if err != nil {
		logger.Log.Fatal("Error initializing order service", zap.Error(err))
	}

	if err := run(ctx, orders, flag.Args(), os.Stdout); err != nil {
		logger.Log.Error("Command failed", zap.Strings("args", flag.Args()), zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

// newOrderService wires order service and its goods collaborator
func newOrderService(cfg *config.Config, m *metrics.ClientMetrics) (*order.Service, error) {
	ordersResolver, err := endpoint.NewStatic(cfg.OrdersServiceURL)
	if err != nil {
		return nil, err
	}
	goodsResolver, err := endpoint.NewStatic(cfg.GoodsServiceURL)
	if err != nil {
		return nil, err
	}

	ordersRest, err := rest.NewClient(ordersResolver, order.ResourcePath, cfg.RequestTimeout, m)
	if err != nil {
		return nil, err
	}
	goodsRest, err := rest.NewClient(goodsResolver, good.ResourcePath, cfg.RequestTimeout, m)
	if err != nil {
		return nil, err
	}

	svc := order.NewService(ordersRest, good.NewClient(goodsRest))
	svc.Predicate = cfg.SortPredicate
	svc.Ascending = cfg.SortAscending

	return svc, nil
}

func run(ctx context.Context, svc *order.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, params := args[0], args[1:]; cmd {
	case "list":
		opts := &query.Options{Sort: svc.DefaultSortQueryParam()}
		for _, arg := range params {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("filter %q is not key=value", arg)
			}
			opts.Filter(key, value)
		}
		resp, err := svc.Query(ctx, opts)
		if err != nil {
			return err
		}
		return printJSON(out, resp.Body)
	case "get":
		if len(params) != 1 {
			return errUsage
		}
		resp, err := svc.Find(ctx, params[0])
		if err != nil {
			return err
		}
		return printJSON(out, resp.Body)
	case "delete":
		if len(params) != 1 {
			return errUsage
		}
		resp, err := svc.Delete(ctx, params[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, resp.StatusCode)
		return err
	case "ship":
		if len(params) != 1 {
			return errUsage
		}
		return ship(ctx, svc, params[0], out)
	default:
		return errUsage
	}
}

// ship decrements stock of every good in the order and marks the order shipped
func ship(ctx context.Context, svc *order.Service, id string, out io.Writer) error {
	found, err := svc.Find(ctx, id)
	if err != nil {
		return err
	}
	if found.Body == nil {
		return fmt.Errorf("order %s not found", id)
	}

	goods, err := svc.DecrementGoodsCountOnShip(ctx, found.Body.Goods)
	if err != nil {
		return err
	}

	status := models.OrderStatusShipped
	updated, err := svc.PartialUpdate(ctx, models.PartialOrder{ID: id, Status: &status})
	if err != nil {
		return err
	}

	stock := make([]*models.Good, 0, len(goods))
	for _, g := range goods {
		stock = append(stock, g.Body)
	}

	return printJSON(out, struct {
		Order *models.Order  `json:"order"`
		Goods []*models.Good `json:"goods"`
	}{
		Order: updated.Body,
		Goods: stock,
	})
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
