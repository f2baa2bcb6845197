package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by the vector.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the items gauge.
	Items prometheus.GaugeOpts
	// Options for the capacity gauge.
	Capacity prometheus.GaugeOpts
	// Options for the growths counter.
	Growths prometheus.CounterOpts
	// Options for the allocation failures counter.
	AllocationFailures prometheus.CounterOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
//
// Metrics are registered when the vector is created, so vectors sharing a registerer must be told
// apart with [prometheus.WrapRegistererWith] or const labels.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "vec"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Items: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items",
			Help:      "Number of items in vector",
		},
		Capacity: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Number of allocated slots in vector",
		},
		Growths: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "growths",
			Help:      "Number of times vector's storage was grown",
		},
		AllocationFailures: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures",
			Help:      "Number of failed attempts to allocate vector's storage",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() (*metrics, error) {
	m := metrics{
		items:              prometheus.NewGauge(c.Items),
		capacity:           prometheus.NewGauge(c.Capacity),
		growths:            prometheus.NewCounter(c.Growths),
		allocationFailures: prometheus.NewCounter(c.AllocationFailures),
	}

	if c.registerer != nil {
		collectors := []prometheus.Collector{
			m.items,
			m.capacity,
			m.growths,
			m.allocationFailures,
		}
		for i, collector := range collectors {
			if err := c.registerer.Register(collector); err != nil {
				for _, registered := range collectors[:i] {
					c.registerer.Unregister(registered)
				}
				return nil, err
			}
		}
	}

	return &m, nil
}

func (m *metrics) unregister(registerer prometheus.Registerer) {
	if registerer == nil {
		return
	}
	registerer.Unregister(m.items)
	registerer.Unregister(m.capacity)
	registerer.Unregister(m.growths)
	registerer.Unregister(m.allocationFailures)
}

type metrics struct {
	items              prometheus.Gauge
	capacity           prometheus.Gauge
	growths            prometheus.Counter
	allocationFailures prometheus.Counter
}
