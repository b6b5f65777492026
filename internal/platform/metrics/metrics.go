package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// HTTP requests by method, route template and status code
	RequestsTotal *prometheus.CounterVec

	// HTTP latency by method and route template
	RequestDuration *prometheus.HistogramVec

	// Ledger appends by transaction kind
	TransactionsRecorded *prometheus.CounterVec

	// Completed cascading category renames
	CategoryRenames prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fin_assist_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fin_assist_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		TransactionsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fin_assist_transactions_recorded_total",
			Help: "Total ledger transactions recorded by kind",
		}, []string{"kind"}),

		CategoryRenames: factory.NewCounter(prometheus.CounterOpts{
			Name: "fin_assist_category_renames_total",
			Help: "Total cascading category renames committed",
		}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(method, route, status).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

// IncTransactionsRecorded counts one ledger append of the given kind.
func (m *Metrics) IncTransactionsRecorded(kind string) {
	if m != nil {
		m.TransactionsRecorded.WithLabelValues(kind).Inc()
	}
}

// IncCategoryRenames counts one committed rename.
func (m *Metrics) IncCategoryRenames() {
	if m != nil {
		m.CategoryRenames.Inc()
	}
}
