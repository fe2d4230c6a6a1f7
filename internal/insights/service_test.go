package insights

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studypulse/studypulse-be/internal/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewMux(logger.Init("test")))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestPeakHoursEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/predict_peak_hours", `{
		"sessions": [
			{"startTime": "2024-01-01T09:15:00Z", "focusedMinutes": 40},
			{"startTime": "2024-01-02T09:30:00Z", "focusedMinutes": 20},
			{"startTime": "2024-01-02T14:00:00Z", "focusedMinutes": 30}
		]
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	hours, ok := body["peak_hours"].([]any)
	require.True(t, ok)
	require.Len(t, hours, 2)
	first := hours[0].(map[string]any)
	assert.Equal(t, 9.0, first["hour"])
	assert.Equal(t, 60.0, first["minutes"])
	assert.Equal(t, 30.0, body["median_focus_minutes"])
	assert.Equal(t, 30.0, body["recommended_break_after_min"])
}

func TestPeakHoursEndpointTruncatesToTop3(t *testing.T) {
	srv := newTestServer(t)

	_, body := postJSON(t, srv.URL+"/predict_peak_hours", `{
		"sessions": [
			{"startTime": "2024-01-01T08:00:00Z", "focusedMinutes": 10},
			{"startTime": "2024-01-01T09:00:00Z", "focusedMinutes": 20},
			{"startTime": "2024-01-01T10:00:00Z", "focusedMinutes": 30},
			{"startTime": "2024-01-01T11:00:00Z", "focusedMinutes": 40},
			{"startTime": "2024-01-01T12:00:00Z", "focusedMinutes": 50}
		]
	}`)
	hours := body["peak_hours"].([]any)
	assert.Len(t, hours, 3)
	assert.Equal(t, 12.0, hours[0].(map[string]any)["hour"])
}

func TestPeakHoursEndpointEmpty(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/predict_peak_hours", `{"sessions": []}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no sessions", body["message"])
	assert.Empty(t, body["peak_hours"])
}

func TestEnergyEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/energy_pattern", `{
		"sessions": [
			{"startTime": "2024-01-01T09:00:00Z", "focusedMinutes": 10},
			{"startTime": "2024-01-02T09:00:00Z", "focusedMinutes": 20},
			{"startTime": "2024-01-03T09:00:00Z", "focusedMinutes": 30},
			{"startTime": "2024-01-04T09:00:00Z", "focusedMinutes": 40}
		]
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 25.0, body["median"])
	assert.Equal(t, 17.5, body["q25"])
	assert.Equal(t, 32.5, body["q75"])
	assert.NotEmpty(t, body["suggestion"])
}

func TestEnergyEndpointNoData(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv.URL+"/energy_pattern", `{"sessions": []}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no data", body["message"])
	_, hasMedian := body["median"]
	assert.False(t, hasMedian)
}

func TestInvalidBodyRejected(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{`not json at all`, `{"sessions": "nope"}`, `[1,2,3]`} {
		resp, err := http.Post(srv.URL+"/predict_peak_hours", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
