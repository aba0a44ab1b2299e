package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	defaultOrdersServiceURL = "http://localhost:8080"
	defaultGoodsServiceURL  = "http://localhost:8080"
	defaultRequestTimeout   = 5 * time.Second
	defaultLogLevel         = "info"
	defaultSortPredicate    = "id"
	defaultSortAscending    = true
)

type Config struct {
	OrdersServiceURL string
	GoodsServiceURL  string
	RequestTimeout   time.Duration
	LogLevel         string
	SortPredicate    string
	SortAscending    bool
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.OrdersServiceURL, "o", defaultOrdersServiceURL, "orders service url")
		flag.StringVar(&cfg.GoodsServiceURL, "g", defaultGoodsServiceURL, "goods service url")
		flag.DurationVar(&cfg.RequestTimeout, "t", defaultRequestTimeout, "request timeout")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.SortPredicate, "s", defaultSortPredicate, "default sort predicate")
		flag.BoolVar(&cfg.SortAscending, "asc", defaultSortAscending, "default sort direction")

		flag.Parse()

		// if environment variable is set, then using it
		if ordersURLEnv := os.Getenv("ORDERS_SERVICE_URL"); ordersURLEnv != "" {
			cfg.OrdersServiceURL = ordersURLEnv
		}
		if goodsURLEnv := os.Getenv("GOODS_SERVICE_URL"); goodsURLEnv != "" {
			cfg.GoodsServiceURL = goodsURLEnv
		}
		if timeoutEnv := os.Getenv("REQUEST_TIMEOUT"); timeoutEnv != "" {
			if d, err := time.ParseDuration(timeoutEnv); err == nil {
				cfg.RequestTimeout = d
			}
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if sortEnv := os.Getenv("SORT_PREDICATE"); sortEnv != "" {
			cfg.SortPredicate = sortEnv
		}
		if ascEnv := os.Getenv("SORT_ASCENDING"); ascEnv != "" {
			if asc, err := strconv.ParseBool(ascEnv); err == nil {
				cfg.SortAscending = asc
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
