// Package metrics exports jarray reallocation activity to Prometheus.
//
// A GrowthMetrics value is plugged into an Array as its observer:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewGrowthMetrics(reg, "names")
//	a := jarray.New(jarray.Config[string]{Observer: m})
//
// A nil *GrowthMetrics is a valid observer that records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marcodamonte/jarray/jarray"
)

// GrowthMetrics records reallocations of one or more arrays, labelled by
// array name.
type GrowthMetrics struct {
	reallocations prometheus.Counter
	moved         prometheus.Counter
	capacity      prometheus.Gauge
	growthFactor  prometheus.Observer
}

var (
	_ jarray.GrowthObserver  = (*GrowthMetrics)(nil)
	_ jarray.ReleaseObserver = (*GrowthMetrics)(nil)
)

// collectors are shared per registerer so several arrays can report into
// the same registry under different labels.
type collectors struct {
	reallocations *prometheus.CounterVec
	moved         *prometheus.CounterVec
	capacity      *prometheus.GaugeVec
	growthFactor  *prometheus.HistogramVec
}

func newCollectors(reg prometheus.Registerer) *collectors {
	return &collectors{
		reallocations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "jarray_reallocations_total",
				Help: "Total number of buffer reallocations",
			},
			[]string{"array"},
		),
		moved: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "jarray_elements_moved_total",
				Help: "Total number of live elements copied by reallocations",
			},
			[]string{"array"},
		),
		capacity: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "jarray_capacity_slots",
				Help: "Current number of allocated slots",
			},
			[]string{"array"},
		),
		growthFactor: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jarray_growth_factor",
				Help:    "Ratio of new to old capacity per reallocation",
				Buckets: []float64{1.25, 1.5, 2, 3, 4},
			},
			[]string{"array"},
		),
	}
}

// NewGrowthMetrics registers the jarray collectors on reg and returns an
// observer for the array called name.
//
// It panics if reg already holds collectors with the same names, as
// promauto does. Use Registry to share collectors between arrays.
func NewGrowthMetrics(reg prometheus.Registerer, name string) *GrowthMetrics {
	return newCollectors(reg).forArray(name)
}

// Registry hands out GrowthMetrics for many arrays backed by one set of
// collectors.
type Registry struct {
	c *collectors
}

// NewRegistry registers the jarray collectors on reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return &Registry{c: newCollectors(reg)}
}

// For returns the observer for the array called name.
func (r *Registry) For(name string) *GrowthMetrics {
	return r.c.forArray(name)
}

func (c *collectors) forArray(name string) *GrowthMetrics {
	return &GrowthMetrics{
		reallocations: c.reallocations.WithLabelValues(name),
		moved:         c.moved.WithLabelValues(name),
		capacity:      c.capacity.WithLabelValues(name),
		growthFactor:  c.growthFactor.WithLabelValues(name),
	}
}

// ObserveGrowth implements jarray.GrowthObserver.
func (m *GrowthMetrics) ObserveGrowth(e jarray.GrowthEvent) {
	if m == nil {
		return
	}
	m.reallocations.Inc()
	m.moved.Add(float64(e.Moved))
	m.capacity.Set(float64(e.NewCap))
	// The first allocation has no previous capacity to compare against.
	if e.OldCap > 0 {
		m.growthFactor.Observe(float64(e.NewCap) / float64(e.OldCap))
	}
}

// ObserveRelease implements jarray.ReleaseObserver.
func (m *GrowthMetrics) ObserveRelease(int) {
	if m == nil {
		return
	}
	m.capacity.Set(0)
}
