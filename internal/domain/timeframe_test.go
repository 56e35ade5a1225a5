package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTimeFrame_NamedFrames(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frame     TimeFrame
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"today", TimeFrameToday, now, now},
		{"week", TimeFrameWeek, now.AddDate(0, 0, -7), now},
		{"month", TimeFrameMonth, now.AddDate(0, 0, -28), now},
		{"year", TimeFrameYear, now.AddDate(0, 0, -364), now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveTimeFrame(tt.frame, nil, nil, now)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
		})
	}
}

func TestResolveTimeFrame_UnknownTokenFallsBackToToday(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	r := ResolveTimeFrame("quarter", nil, nil, now)

	assert.Equal(t, now, r.Start)
	assert.Equal(t, now, r.End)
}

func TestResolveTimeFrame_BothDatesForceCustom(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	// Explicit dates win even when a named frame is given
	r := ResolveTimeFrame(TimeFrameWeek, &from, &to, now)

	assert.Equal(t, from, r.Start)
	assert.Equal(t, to, r.End)
}

func TestResolveTimeFrame_CustomReturnsDatesVerbatim(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	r := ResolveTimeFrame(TimeFrameCustom, &from, nil, now)

	assert.Equal(t, from, r.Start)
	assert.True(t, r.End.IsZero())
}

func TestIsKnownTimeFrame(t *testing.T) {
	assert.True(t, IsKnownTimeFrame(TimeFrameToday))
	assert.True(t, IsKnownTimeFrame(TimeFrameCustom))
	assert.False(t, IsKnownTimeFrame("quarter"))
	assert.False(t, IsKnownTimeFrame(""))
}

func TestDateRange_Days(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DateRange{Start: start, End: start.AddDate(0, 0, 7)}.Days())
	assert.Equal(t, 0, DateRange{Start: start, End: start}.Days())
	// Inverted range never goes negative
	assert.Equal(t, 0, DateRange{Start: start.AddDate(0, 0, 3), End: start}.Days())
}
