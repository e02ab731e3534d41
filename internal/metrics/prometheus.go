// ABOUTME: Prometheus metrics for alarm generation
// ABOUTME: Registers counters and histograms on a private registry and dumps them to a textfile
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the alarm generator
type Metrics struct {
	registry *prometheus.Registry

	// Generation metrics
	AlarmsGenerated    *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	ClipDuration       prometheus.Histogram
	BackgroundPulses   prometheus.Histogram
	Fallbacks          *prometheus.CounterVec

	// Drum cache metrics
	DrumCacheHits   prometheus.Counter
	DrumCacheMisses prometheus.Counter

	// TTS metrics
	TTSRequests prometheus.Counter
	TTSFailures prometheus.Counter
	TTSDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		AlarmsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sahur_alarms_generated_total",
			Help: "Total number of alarms exported",
		}, []string{"beat"}),
		GenerationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sahur_generation_failures_total",
			Help: "Total number of failed alarm generations",
		}, []string{"stage"}),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sahur_generation_duration_seconds",
			Help:    "Wall time spent generating one alarm",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}),
		ClipDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sahur_clip_duration_seconds",
			Help:    "Length of the exported alarm clip",
			Buckets: prometheus.LinearBuckets(2, 2, 10), // 2s to 20s
		}),
		BackgroundPulses: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sahur_background_pulses",
			Help:    "Number of soft drum pulses looped under the voice",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sahur_input_fallbacks_total",
			Help: "Total number of user inputs replaced by a fallback value",
		}, []string{"field"}),

		DrumCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "sahur_drum_cache_hits_total",
			Help: "Total number of drum hits loaded from the on-disk cache",
		}),
		DrumCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "sahur_drum_cache_misses_total",
			Help: "Total number of drum hits synthesized because the cache was empty",
		}),

		TTSRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "sahur_tts_requests_total",
			Help: "Total number of speech synthesis requests",
		}),
		TTSFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "sahur_tts_failures_total",
			Help: "Total number of failed speech synthesis requests",
		}),
		TTSDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sahur_tts_duration_seconds",
			Help:    "Duration of speech synthesis requests",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8), // 100ms to ~13s
		}),
	}
}

// Registry exposes the private registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordAlarm records a successfully exported alarm
func (m *Metrics) RecordAlarm(beat string, generationSeconds, clipSeconds float64, pulses int) {
	m.AlarmsGenerated.WithLabelValues(beat).Inc()
	m.GenerationDuration.Observe(generationSeconds)
	m.ClipDuration.Observe(clipSeconds)
	m.BackgroundPulses.Observe(float64(pulses))
}

// RecordFailure records a generation that failed at stage
func (m *Metrics) RecordFailure(stage string) {
	m.GenerationFailures.WithLabelValues(stage).Inc()
}

// RecordFallback records that field fell back to a substitute value
func (m *Metrics) RecordFallback(field string) {
	m.Fallbacks.WithLabelValues(field).Inc()
}

// RecordDrumCache records a drum cache lookup
func (m *Metrics) RecordDrumCache(hit bool) {
	if hit {
		m.DrumCacheHits.Inc()
		return
	}
	m.DrumCacheMisses.Inc()
}

// RecordTTS records one speech synthesis request
func (m *Metrics) RecordTTS(durationSeconds float64, err error) {
	m.TTSRequests.Inc()
	if err != nil {
		m.TTSFailures.Inc()
	}
	m.TTSDuration.Observe(durationSeconds)
}

// WriteTextfile writes all metrics in the node-exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
