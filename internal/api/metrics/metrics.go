// Package metrics defines and registers all custom Prometheus metrics for the
// LegalEase API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legalease"

// ChatRequestsTotal counts answered chat requests.
// Labels:
//   - source: "ai" when the generative backend answered, "fallback" when the
//     curated knowledge base did
//   - language: the language code of the request (e.g. "en", "hi")
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of chat requests answered, by response source and language.",
	},
	[]string{"source", "language"},
)

// ChatResponseDuration measures how long producing a chat reply takes,
// including persistence.
// Label:
//   - source: "ai" or "fallback"
var ChatResponseDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_response_duration_seconds",
		Help:      "Duration of chat request handling from receipt to reply.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"source"},
)

// AssistantErrorsTotal counts generative backend failures that triggered the
// curated fallback.
var AssistantErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_errors_total",
		Help:      "Total number of generative backend failures.",
	},
)

// RecommendationsTotal counts advocate recommendations served.
// Label:
//   - specialization: the detected practice area (e.g. "criminal", "general")
var RecommendationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advocate_recommendations_total",
		Help:      "Total number of advocate recommendations served, by detected specialization.",
	},
	[]string{"specialization"},
)

// AppointmentsBookedTotal counts successfully booked consultations.
// Label:
//   - mode: the consultation mode requested (e.g. "Video Call")
var AppointmentsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of consultations booked, by consultation mode.",
	},
	[]string{"mode"},
)

// StudentToolRequestsTotal counts student tool invocations.
// Labels:
//   - tool: "case_study", "tutor", "quiz", "study_plan", or "research"
//   - source: "ai" or "fallback"
var StudentToolRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "student_tool_requests_total",
		Help:      "Total number of student tool requests completed, by tool and response source.",
	},
	[]string{"tool", "source"},
)
