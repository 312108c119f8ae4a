package service

import (
	"bitwise74/visitor-api/internal/metrics"
	"bitwise74/visitor-api/internal/store"
	"bitwise74/visitor-api/pkg/geoip"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1"

func TestDescribeUsesGeoAndAgent(t *testing.T) {
	l := NewVisitorLogger(store.NewMemory(), geoip.Static{
		"81.2.69.142": {Country: "GB", City: "London"},
	})

	v := l.Describe("81.2.69.142", iphoneUA)

	assert.Equal(t, "81.2.69.142", v.IP)
	assert.Equal(t, "GB", v.Country)
	assert.Equal(t, "London", v.City)
	assert.Equal(t, "mobile", v.Device)
	assert.Equal(t, "Safari", v.Browser)
	assert.Equal(t, "iOS", v.OS)
}

func TestDescribeFallbacks(t *testing.T) {
	l := NewVisitorLogger(store.NewMemory(), nil)
	misses := testutil.ToFloat64(metrics.GeoLookupMisses)

	v := l.Describe("", "")

	assert.Equal(t, "127.0.0.1", v.IP)
	assert.Equal(t, "Unknown", v.Country)
	assert.Equal(t, "Unknown", v.City)
	assert.Equal(t, "desktop", v.Device)
	assert.Equal(t, "Unknown", v.Browser)
	assert.Equal(t, "Unknown", v.OS)
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.GeoLookupMisses))
}

func TestDescribePartialGeoResult(t *testing.T) {
	l := NewVisitorLogger(store.NewMemory(), geoip.Static{"1.1.1.1": {Country: "AU"}})

	v := l.Describe("1.1.1.1", "")
	assert.Equal(t, "AU", v.Country)
	assert.Equal(t, "Unknown", v.City)
}

func TestLogPersists(t *testing.T) {
	mem := store.NewMemory()
	l := NewVisitorLogger(mem, nil)
	logged := testutil.ToFloat64(metrics.VisitorsLogged.WithLabelValues("mobile"))

	v, err := l.Log(context.Background(), "10.0.0.1", iphoneUA)
	require.NoError(t, err)

	assert.Equal(t, 1, mem.Len())
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.Timestamp.IsZero())
	assert.Equal(t, logged+1, testutil.ToFloat64(metrics.VisitorsLogged.WithLabelValues("mobile")))
}

func TestLogStoreFailure(t *testing.T) {
	mem := store.NewMemory()
	mem.FailWith = errors.New("connection reset")
	l := NewVisitorLogger(mem, nil)
	failures := testutil.ToFloat64(metrics.VisitorLogFailures)

	v, err := l.Log(context.Background(), "10.0.0.1", "")
	assert.Nil(t, v)
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, failures+1, testutil.ToFloat64(metrics.VisitorLogFailures))
}

func TestStats(t *testing.T) {
	l := NewVisitorLogger(store.NewMemory(), nil)

	for range 3 {
		_, err := l.Log(context.Background(), "10.0.0.1", "")
		require.NoError(t, err)
	}

	visitors, err := l.Stats(context.Background())
	require.NoError(t, err)
	assert.Len(t, visitors, 3)
}
