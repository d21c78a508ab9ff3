package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "diet_chatbot"

// Metrics is safe to use as a nil pointer; every method becomes a no-op.
type Metrics struct {
	chatTurns          *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	historyCleared     prometheus.Counter
	registrations      *prometheus.CounterVec
	logins             *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		chatTurns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_turns_total",
			Help:      "Chat submissions by outcome.",
		}, []string{"result"}),
		completionDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of language model completions.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"result"}),
		historyCleared: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_cleared_total",
			Help:      "Count of history clear requests.",
		}),
		registrations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"result"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"result"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status class.",
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) ObserveCompletion(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.completionDuration.WithLabelValues(result(err)).Observe(d.Seconds())
}

func (m *Metrics) IncChatTurn(err error) {
	if m == nil {
		return
	}
	m.chatTurns.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) IncHistoryCleared() {
	if m == nil {
		return
	}
	m.historyCleared.Inc()
}

func (m *Metrics) IncRegistration(err error) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) IncLogin(err error) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) IncHTTPRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
