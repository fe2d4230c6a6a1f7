// Package insights computes focus analytics over a user's study
// sessions: an hour-of-day focus histogram, duration quartiles and a
// recommended break interval. Pure functions, no storage, no I/O;
// safe to call from any number of requests at once.
package insights

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// Record is the minimal wire shape of one session. Extra fields in
// incoming JSON are ignored. FocusedMinutes is a pointer so a missing
// value is distinguishable from an explicit 0.
type Record struct {
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime,omitempty"`
	FocusedMinutes *float64 `json:"focusedMinutes,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// HourBucket is the accumulated focused minutes for one hour of day.
type HourBucket struct {
	Hour    int     `json:"hour"`
	Minutes float64 `json:"minutes"`
}

// EnergyPattern is the duration distribution of the valid sessions.
// When HasData is false it serializes as {"message":"no data"};
// callers branch on that marker, it is not an error.
type EnergyPattern struct {
	HasData    bool
	Median     float64
	Q25        float64
	Q75        float64
	Suggestion string
}

func (e EnergyPattern) MarshalJSON() ([]byte, error) {
	if !e.HasData {
		return json.Marshal(struct {
			Message string `json:"message"`
		}{"no data"})
	}
	return json.Marshal(struct {
		Median     float64 `json:"median"`
		Q25        float64 `json:"q25"`
		Q75        float64 `json:"q75"`
		Suggestion string  `json:"suggestion,omitempty"`
	}{e.Median, e.Q25, e.Q75, e.Suggestion})
}

// Report is the combined analysis result.
type Report struct {
	PeakHours                []HourBucket  `json:"peak_hours"`
	Energy                   EnergyPattern `json:"energy"`
	RecommendedBreakAfterMin int           `json:"recommended_break_after_min"`
	MedianFocusMinutes       float64       `json:"median_focus_minutes"`
}

// Break recommendation policy: the median clamped to a sane range,
// 25 (the default focus-session length) when there is no history.
const (
	DefaultBreakAfterMin = 25
	minBreakAfterMin     = 5
	maxBreakAfterMin     = 120
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses the timestamp formats accepted on the wire.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// valid reports whether the record survives the data-quality filter:
// a parseable start time and a non-negative (or absent) duration.
func (rec Record) valid() (time.Time, float64, bool) {
	t, ok := ParseTime(rec.StartTime)
	if !ok {
		return time.Time{}, 0, false
	}
	m := 0.0
	if rec.FocusedMinutes != nil {
		m = *rec.FocusedMinutes
	}
	if m < 0 {
		return time.Time{}, 0, false
	}
	return t, m, true
}

// ComputePeakHours accumulates focused minutes into the hour of day
// each session started. Records with an unparseable start time are
// dropped; a missing duration contributes 0. The result is sparse
// (zero hours omitted) and sorted by minutes descending, hour
// ascending on ties.
func ComputePeakHours(sessions []Record) []HourBucket {
	var totals [24]float64
	for _, rec := range sessions {
		t, m, ok := rec.valid()
		if !ok {
			continue
		}
		totals[t.Hour()] += m
	}
	out := make([]HourBucket, 0)
	for h, m := range totals {
		if m > 0 {
			out = append(out, HourBucket{Hour: h, Minutes: m})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}

// ComputeEnergyPattern computes the quartiles of per-session focused
// duration. Only sessions with a present, positive duration (and a
// parseable start time) enter the sample; with no such sessions the
// result carries the no-data marker.
func ComputeEnergyPattern(sessions []Record) EnergyPattern {
	durations := make([]float64, 0, len(sessions))
	for _, rec := range sessions {
		_, m, ok := rec.valid()
		if !ok || rec.FocusedMinutes == nil || m == 0 {
			continue
		}
		durations = append(durations, m)
	}
	if len(durations) == 0 {
		return EnergyPattern{}
	}
	sort.Float64s(durations)
	e := EnergyPattern{
		HasData: true,
		Q25:     percentile(durations, 0.25),
		Median:  percentile(durations, 0.5),
		Q75:     percentile(durations, 0.75),
	}
	e.Suggestion = suggestionFor(e.Median)
	return e
}

// percentile interpolates linearly between order statistics of a
// sorted sample: index = p*(n-1).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := p * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func suggestionFor(median float64) string {
	if median > 50 {
		return fmt.Sprintf("You can handle longer sessions (~%g mins). Take breaks every hour.", median)
	}
	return fmt.Sprintf("Try shorter sessions (~%g mins) followed by short breaks.", median)
}

// RecommendBreakAfter maps the energy pattern to a break interval in
// minutes: the rounded median clamped to [5, 120], or the 25-minute
// default when there is no data. Monotonic in the median.
func RecommendBreakAfter(e EnergyPattern) int {
	if !e.HasData {
		return DefaultBreakAfterMin
	}
	m := int(math.Round(e.Median))
	if m < minBreakAfterMin {
		m = minBreakAfterMin
	}
	if m > maxBreakAfterMin {
		m = maxBreakAfterMin
	}
	return m
}

// Analyze runs the full analysis. Deterministic: the same input set
// always yields an identical report.
func Analyze(sessions []Record) Report {
	energy := ComputeEnergyPattern(sessions)
	rep := Report{
		PeakHours:                ComputePeakHours(sessions),
		Energy:                   energy,
		RecommendedBreakAfterMin: RecommendBreakAfter(energy),
	}
	if energy.HasData {
		rep.MedianFocusMinutes = energy.Median
	}
	return rep
}

// TopPeakHours truncates an already-sorted peak-hour list to its n
// biggest entries, for presentation.
func TopPeakHours(buckets []HourBucket, n int) []HourBucket {
	if len(buckets) <= n {
		return buckets
	}
	return buckets[:n]
}
