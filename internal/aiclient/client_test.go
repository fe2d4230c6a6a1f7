package aiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studypulse/studypulse-be/internal/insights"
	"github.com/studypulse/studypulse-be/internal/pkg/logger"
)

func fm(v float64) *float64 { return &v }

// The client talks to the real insight service mux.
func TestClientAgainstInsightService(t *testing.T) {
	srv := httptest.NewServer(insights.NewMux(logger.Init("test")))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	ctx := context.Background()

	sessions := []insights.Record{
		{StartTime: "2024-01-01T09:15:00Z", FocusedMinutes: fm(40)},
		{StartTime: "2024-01-02T09:45:00Z", FocusedMinutes: fm(20)},
	}

	peak, err := c.PredictPeakHours(ctx, sessions)
	require.NoError(t, err)
	require.Len(t, peak.PeakHours, 1)
	assert.Equal(t, 9, peak.PeakHours[0].Hour)
	assert.Equal(t, 60.0, peak.PeakHours[0].Minutes)
	assert.Equal(t, 30.0, peak.MedianFocusMinutes)
	assert.Equal(t, 30, peak.RecommendedBreakAfterMin)

	energy, err := c.EnergyPattern(ctx, sessions)
	require.NoError(t, err)
	assert.Equal(t, 30.0, energy.Median)
	assert.Empty(t, energy.Message)

	require.NoError(t, c.Ping(ctx))
}

func TestClientNoData(t *testing.T) {
	srv := httptest.NewServer(insights.NewMux(logger.Init("test")))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	energy, err := c.EnergyPattern(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "no data", energy.Message)
}

func TestClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.PredictPeakHours(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestClientMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{{{"))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.EnergyPattern(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close() // nothing listening anymore

	c := New(srv.URL, time.Second)
	_, err := c.PredictPeakHours(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}
