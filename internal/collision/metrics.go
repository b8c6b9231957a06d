package collision

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts collision activity.
type Metrics struct {
	Generated prometheus.Counter
	Trials    *prometheus.CounterVec
}

// NewMetrics registers the collision counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Generated: factory.NewCounter(prometheus.CounterOpts{
			Name: "tinyid_collision_ids_generated_total",
			Help: "Number of identifiers drawn by collision runs.",
		}),
		Trials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyid_collision_trials_total",
			Help: "Number of finished collision trials, by outcome.",
		}, []string{"result"}),
	}
}
