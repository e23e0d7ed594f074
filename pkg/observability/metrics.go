package observability

import (
	"context"

	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "finiteconsole"

// Metrics holds the Prometheus collectors fed by loop events.
type Metrics struct {
	MenuVisits     *prometheus.CounterVec
	Actions        *prometheus.CounterVec
	ActionDuration *prometheus.HistogramVec
	Unmatched      *prometheus.CounterVec
	LoopStops      *prometheus.CounterVec
	Running        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		MenuVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_visits_total",
			Help:      "Total number of menu entries.",
		}, []string{"menu_id"}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Total number of finite menu actions invoked.",
		}, []string{"menu_id", "outcome"}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Duration of finite menu actions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"menu_id"}),
		Unmatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmatched_inputs_total",
			Help:      "Total number of inputs that matched no option.",
		}, []string{"menu_id"}),
		LoopStops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loop_stops_total",
			Help:      "Total number of finished loops by reason.",
		}, []string{"reason"}),
		Running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loop_running",
			Help:      "1 while a loop is running.",
		}),
	}

	for _, c := range []prometheus.Collector{m.MenuVisits, m.Actions, m.ActionDuration, m.Unmatched, m.LoopStops, m.Running} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuEnter: func(_ context.Context, e *domain.MenuEvent) {
			m.MenuVisits.WithLabelValues(e.MenuID).Inc()
		},
		OnAction: func(_ context.Context, e *domain.ActionEvent) {
			outcome := "ok"
			if e.IsError {
				outcome = "error"
			}
			m.Actions.WithLabelValues(e.MenuID, outcome).Inc()
			m.ActionDuration.WithLabelValues(e.MenuID).Observe(e.Duration.Seconds())
		},
		OnUnmatched: func(_ context.Context, e *domain.InputEvent) {
			m.Unmatched.WithLabelValues(e.MenuID).Inc()
		},
		OnLoopStart: func(context.Context, *domain.LoopEvent) {
			m.Running.Set(1)
		},
		OnLoopStop: func(_ context.Context, e *domain.LoopEvent) {
			m.Running.Set(0)
			m.LoopStops.WithLabelValues(e.Reason).Inc()
		},
	}
}
