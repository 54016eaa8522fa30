package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics provides an interface for recording application metrics.
type Metrics interface {
	// Counter increments a counter metric.
	Counter(name string, value int64, tags ...Tag)

	// Gauge sets a gauge metric to the given value.
	Gauge(name string, value float64, tags ...Tag)

	// Timing records a duration.
	Timing(name string, duration time.Duration, tags ...Tag)
}

// Tag represents a key-value pair for metric labeling.
type Tag struct {
	Key   string
	Value string
}

// T creates a new Tag.
func T(key, value string) Tag {
	return Tag{Key: key, Value: value}
}

// NoopMetrics is a no-op implementation of Metrics.
type NoopMetrics struct{}

func (NoopMetrics) Counter(name string, value int64, tags ...Tag)           {}
func (NoopMetrics) Gauge(name string, value float64, tags ...Tag)           {}
func (NoopMetrics) Timing(name string, duration time.Duration, tags ...Tag) {}

// PrometheusMetrics implements Metrics backed by a prometheus registry.
// Collectors are created lazily per metric name; tag keys must be stable
// for a given name across calls.
type PrometheusMetrics struct {
	mu        sync.Mutex
	registry  *prometheus.Registry
	namespace string
	counters  map[string]*prometheus.CounterVec
	gauges    map[string]*prometheus.GaugeVec
	timings   map[string]*prometheus.HistogramVec
}

// NewPrometheusMetrics creates a prometheus-backed Metrics implementation.
func NewPrometheusMetrics(namespace string, registry *prometheus.Registry) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &PrometheusMetrics{
		registry:  registry,
		namespace: namespace,
		counters:  make(map[string]*prometheus.CounterVec),
		gauges:    make(map[string]*prometheus.GaugeVec),
		timings:   make(map[string]*prometheus.HistogramVec),
	}
}

// Registry returns the underlying prometheus registry for exposition.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Counter increments a counter metric.
func (m *PrometheusMetrics) Counter(name string, value int64, tags ...Tag) {
	m.mu.Lock()
	vec, ok := m.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      name,
		}, tagKeys(tags))
		m.registry.MustRegister(vec)
		m.counters[name] = vec
	}
	m.mu.Unlock()

	vec.With(tagLabels(tags)).Add(float64(value))
}

// Gauge sets a gauge metric to the given value.
func (m *PrometheusMetrics) Gauge(name string, value float64, tags ...Tag) {
	m.mu.Lock()
	vec, ok := m.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: m.namespace,
			Name:      name,
		}, tagKeys(tags))
		m.registry.MustRegister(vec)
		m.gauges[name] = vec
	}
	m.mu.Unlock()

	vec.With(tagLabels(tags)).Set(value)
}

// Timing records a duration in seconds.
func (m *PrometheusMetrics) Timing(name string, duration time.Duration, tags ...Tag) {
	m.mu.Lock()
	vec, ok := m.timings[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      name,
			Buckets:   prometheus.DefBuckets,
		}, tagKeys(tags))
		m.registry.MustRegister(vec)
		m.timings[name] = vec
	}
	m.mu.Unlock()

	vec.With(tagLabels(tags)).Observe(duration.Seconds())
}

func tagKeys(tags []Tag) []string {
	keys := make([]string, len(tags))
	for i, t := range tags {
		keys[i] = t.Key
	}
	return keys
}

func tagLabels(tags []Tag) prometheus.Labels {
	labels := make(prometheus.Labels, len(tags))
	for _, t := range tags {
		labels[t.Key] = t.Value
	}
	return labels
}
