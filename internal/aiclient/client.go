// Package aiclient is the gateway-side HTTP client for the insight
// service. Any transport problem (network, non-2xx, undecodable body)
// surfaces as ErrUnavailable so handlers can map it to one uniform
// "AI service error" response; the upstream detail stays in the error
// for logging only.
package aiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/studypulse/studypulse-be/internal/insights"
)

var ErrUnavailable = errors.New("insight service unavailable")

type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// PeakHoursResult mirrors the insight service's peak-hours response.
type PeakHoursResult struct {
	PeakHours                []insights.HourBucket `json:"peak_hours"`
	MedianFocusMinutes       float64               `json:"median_focus_minutes"`
	RecommendedBreakAfterMin int                   `json:"recommended_break_after_min"`
	Message                  string                `json:"message,omitempty"`
}

// EnergyResult mirrors the energy-pattern response; Message is set
// instead of the quartiles when there is no data.
type EnergyResult struct {
	Median     float64 `json:"median,omitempty"`
	Q25        float64 `json:"q25,omitempty"`
	Q75        float64 `json:"q75,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
	Message    string  `json:"message,omitempty"`
}

func (c *Client) PredictPeakHours(ctx context.Context, sessions []insights.Record) (*PeakHoursResult, error) {
	var out PeakHoursResult
	if err := c.post(ctx, "/predict_peak_hours", sessions, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EnergyPattern(ctx context.Context, sessions []insights.Record) (*EnergyResult, error) {
	var out EnergyResult
	if err := c.post(ctx, "/energy_pattern", sessions, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ping checks the insight service health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, sessions []insights.Record, out any) error {
	body, err := sonic.Marshal(map[string]any{"sessions": sessions})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", ErrUnavailable, path, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return nil
}
