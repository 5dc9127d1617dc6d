package observability

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the engine hooks.
type Metrics struct {
	Steps     *prometheus.CounterVec
	Branches  prometheus.Counter
	LivePaths prometheus.Gauge
	Halts     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of effective engine steps",
			},
			[]string{"mode"},
		),
		Branches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_branches_total",
			Help: "Total number of configurations that forked",
		}),
		LivePaths: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "turing_live_paths",
			Help: "Live configurations after the last step",
		}),
		Halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_halts_total",
				Help: "Total number of machines that reached a terminal state",
			},
			[]string{"mode", "outcome"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Steps, m.Branches, m.LivePaths, m.Halts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			m.Steps.WithLabelValues(string(e.Mode)).Inc()
			m.LivePaths.Set(float64(e.Paths))
		},
		OnBranch: func(*domain.BranchEvent) {
			m.Branches.Inc()
		},
		OnHalt: func(e *domain.HaltEvent) {
			outcome := "rejected"
			if e.Accepted {
				outcome = "accepted"
			}
			m.Halts.WithLabelValues(string(e.Mode), outcome).Inc()
		},
	}
}
