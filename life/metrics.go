package life

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records Runner activity. A nil *Metrics records nothing.
type Metrics struct {
	generations  prometheus.Counter
	population   prometheus.Gauge
	stepDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "horton_life_generations_total",
			Help: "Total number of generations computed",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "horton_life_population",
			Help: "Number of live cells in the latest generation",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "horton_life_step_duration_seconds",
			Help:    "Histogram of generation step durations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.generations, m.population, m.stepDuration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) observe(population int, took time.Duration) {
	if m == nil {
		return
	}
	m.generations.Inc()
	m.population.Set(float64(population))
	m.stepDuration.Observe(took.Seconds())
}
