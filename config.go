package vec

import (
	"github.com/go-kit/log"

	"github.com/teenjuna/vec/alloc"
)

const (
	// DefaultCapacity is the capacity of a vector created without [Config.Capacity].
	DefaultCapacity = 10
)

// Config is a config of the vector.
//
// An instance is created by [New] and passed to every [ConfigFunc]. The zero value is invalid.
type Config struct {
	capacity   int
	allocator  alloc.Allocator
	logger     log.Logger
	prometheus *PrometheusConfig
}

type ConfigFunc = func(c *Config)

// Capacity sets the initial capacity of the vector.
func (c *Config) Capacity(capacity int) {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	c.capacity = capacity
}

// Allocator sets the allocator that admits the backing storage of the vector.
func (c *Config) Allocator(allocator alloc.Allocator) {
	if allocator == nil {
		panic("allocator can't be nil")
	}
	c.allocator = allocator
}

// Logger sets the logger for growth events.
func (c *Config) Logger(logger log.Logger) {
	if logger == nil {
		panic("logger can't be nil")
	}
	c.logger = logger
}

// Prometheus sets the config of the vector's Prometheus metrics. See [Prometheus].
func (c *Config) Prometheus(prometheus *PrometheusConfig) {
	if prometheus == nil {
		panic("prometheus can't be nil")
	}
	c.prometheus = prometheus
}

func newConfig(configFuncs ...ConfigFunc) *Config {
	cfg := &Config{}
	cfg.Capacity(DefaultCapacity)
	cfg.Allocator(alloc.Heap())
	cfg.Logger(log.NewNopLogger())
	cfg.Prometheus(Prometheus(nil))
	for _, cf := range configFuncs {
		if cf != nil {
			cf(cfg)
		}
	}
	return cfg
}
