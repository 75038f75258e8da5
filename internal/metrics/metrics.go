package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymtrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymtrack_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymtrack_checkins_total",
			Help: "Total number of attendance check-ins",
		},
	)

	CheckOutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymtrack_checkouts_total",
			Help: "Total number of attendance check-outs",
		},
	)

	MembersInGym = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymtrack_members_in_gym",
			Help: "Members currently checked in",
		},
	)

	SubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymtrack_membership_subscriptions_total",
			Help: "Total number of membership subscribe/upgrade/cancel operations",
		},
		[]string{"operation", "plan"},
	)

	DietPlanSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymtrack_diet_plan_selections_total",
			Help: "Total number of diet plan selections",
		},
		[]string{"plan"},
	)

	WorkoutsLoggedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymtrack_workouts_logged_total",
			Help: "Total number of workout log entries",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymtrack_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymtrack_events_published_total",
			Help: "Total number of change events published",
		},
		[]string{"entity", "action"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
	MembersInGym.Inc()
}

func RecordCheckOut() {
	CheckOutsTotal.Inc()
	MembersInGym.Dec()
}

func RecordSubscription(operation, plan string) {
	SubscriptionsTotal.WithLabelValues(operation, plan).Inc()
}

func RecordDietPlanSelection(plan string) {
	DietPlanSelectionsTotal.WithLabelValues(plan).Inc()
}

func RecordWorkoutLogged() {
	WorkoutsLoggedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordEventPublished(entity, action string) {
	EventsPublishedTotal.WithLabelValues(entity, action).Inc()
}
