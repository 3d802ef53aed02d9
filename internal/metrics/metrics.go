package metrics

import (
	"net/http"
	"strconv"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voice_agent"

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	generations *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	tokens      *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Content validations by personality and approval.",
		}, []string{"personality", "approved"}),
		violations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Violations found by rule.",
		}, []string{"rule"}),
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation calls by personality and outcome.",
		}, []string{"personality", "outcome"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Personality resolutions by source.",
		}, []string{"source"}),
		tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_tokens_total",
			Help:      "Model tokens reported by the provider, by direction.",
		}, []string{"direction"}),
	}
}

func (m *Metrics) ObserveValidation(result models.ValidationResult) {
	m.validations.WithLabelValues(string(result.Personality), strconv.FormatBool(result.Approved)).Inc()
	for _, violation := range result.Violations {
		m.violations.WithLabelValues(string(violation.Rule)).Inc()
	}
}

func (m *Metrics) ObserveGeneration(personality models.PersonalityKey, outcome string) {
	m.generations.WithLabelValues(string(personality), outcome).Inc()
}

func (m *Metrics) ObserveResolution(source models.ResolutionSource) {
	m.resolutions.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) ObserveTokens(input, output int) {
	if input > 0 {
		m.tokens.WithLabelValues("input").Add(float64(input))
	}
	if output > 0 {
		m.tokens.WithLabelValues("output").Add(float64(output))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
