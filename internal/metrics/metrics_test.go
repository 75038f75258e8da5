package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/stats/all", "200", 0.25)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/stats/all", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordCheckInOut(t *testing.T) {
	before := testutil.ToFloat64(MembersInGym)

	RecordCheckIn()
	assert.Equal(t, before+1, testutil.ToFloat64(MembersInGym))

	RecordCheckOut()
	assert.Equal(t, before, testutil.ToFloat64(MembersInGym))
}

func TestRecordSubscription(t *testing.T) {
	SubscriptionsTotal.Reset()

	RecordSubscription("subscribe", "premium")
	RecordSubscription("subscribe", "premium")
	RecordSubscription("cancel", "basic")

	assert.Equal(t, float64(2), testutil.ToFloat64(SubscriptionsTotal.WithLabelValues("subscribe", "premium")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SubscriptionsTotal.WithLabelValues("cancel", "basic")))
}
