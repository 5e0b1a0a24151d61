package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "ifuut"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	adminActions *prometheus.CounterVec
	submissions  prometheus.Counter
	images       prometheus.Counter
	agendamentos prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		adminActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_action_records_total",
			Help:      "Records handled by admin bulk actions.",
		}, []string{"model", "action", "outcome"}),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "owner_requests_submitted_total",
			Help:      "Owner requests submitted.",
		}),
		images: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "owner_request_images_stored_total",
			Help:      "Images stored with owner requests.",
		}),
		agendamentos: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agendamentos_created_total",
			Help:      "Reservations created.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.adminActions, m.submissions, m.images, m.agendamentos,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) AdminActionApplied(model, action string, processed, skipped int) {
	m.adminActions.WithLabelValues(model, action, "processed").Add(float64(processed))
	m.adminActions.WithLabelValues(model, action, "skipped").Add(float64(skipped))
}

func (m *Metrics) OwnerRequestSubmitted(images int) {
	m.submissions.Inc()
	m.images.Add(float64(images))
}

func (m *Metrics) AgendamentoCreated() {
	m.agendamentos.Inc()
}

// Middleware records request count and latency labelled by the matched route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
