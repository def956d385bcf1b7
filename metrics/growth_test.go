package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/jarray/jarray"
)

func TestGrowthMetricsRecordsReallocations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGrowthMetrics(reg, "ints")

	a := jarray.New(jarray.Config[int]{Observer: m})
	for i := 0; i < 5; i++ {
		a.PushBack(i)
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(m.reallocations))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.moved)) // 0 + 1 + 2 + 4
	assert.Equal(t, 8.0, testutil.ToFloat64(m.capacity))

	families, err := reg.Gather()
	require.NoError(t, err)

	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "jarray_growth_factor" {
			require.Len(t, mf.GetMetric(), 1)
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	// The 0 -> 1 allocation is not a growth factor sample.
	assert.Equal(t, uint64(3), samples)

	a.Free()
	assert.Zero(t, testutil.ToFloat64(m.capacity))
}

func TestRegistrySharesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	a := jarray.New(jarray.Config[int]{Observer: r.For("a")})
	b := jarray.New(jarray.Config[int]{Observer: r.For("b")})
	a.PushBack(1)
	for i := 0; i < 3; i++ {
		b.PushBack(i)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(r.For("a").reallocations))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.For("b").reallocations))
	assert.Equal(t, 2, testutil.CollectAndCount(r.c.reallocations))
}

func TestNilGrowthMetricsIsNoop(t *testing.T) {
	var m *GrowthMetrics

	a := jarray.New(jarray.Config[int]{Observer: m})
	assert.NotPanics(t, func() {
		a.PushBack(1)
		a.PushBack(2)
		a.Free()
	})
}

func TestNewGrowthMetricsPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewGrowthMetrics(reg, "first")

	assert.Panics(t, func() { NewGrowthMetrics(reg, "second") })
}
