package get_blocked_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closer-platform/availability-service/internal/domain"
)

func testSettings() domain.BookingSettings {
	return domain.BookingSettings{
		MaxBookingHorizon:       90,
		MemberMaxBookingHorizon: 365,
		MaxDuration:             14,
		MemberMaxDuration:       30,
	}
}

func TestComputeBlockedRanges_NoSelection(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	blocked := computeBlockedRanges(testSettings(), false, nil, nil, now)

	require.Len(t, blocked, 2)

	// Прошлое заблокировано
	require.NotNil(t, blocked[0].Before)
	assert.Equal(t, now, *blocked[0].Before)

	// Горизонт не-участника - 90 дней
	require.NotNil(t, blocked[1].After)
	assert.Equal(t, now.AddDate(0, 0, 90), *blocked[1].After)
}

func TestComputeBlockedRanges_MemberHorizon(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	blocked := computeBlockedRanges(testSettings(), true, nil, nil, now)

	require.Len(t, blocked, 2)
	require.NotNil(t, blocked[1].After)
	assert.Equal(t, now.AddDate(0, 0, 365), *blocked[1].After)
}

func TestComputeBlockedRanges_StartSelected(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	blocked := computeBlockedRanges(testSettings(), false, &start, nil, now)

	require.Len(t, blocked, 4)

	// Окно длительности вокруг start: после start+14 и до start-14
	require.NotNil(t, blocked[2].After)
	assert.Equal(t, start.AddDate(0, 0, 14), *blocked[2].After)

	require.NotNil(t, blocked[3].Before)
	assert.Equal(t, start.AddDate(0, 0, -14), *blocked[3].Before)
}

func TestComputeBlockedRanges_StartAndEndSelected(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	blocked := computeBlockedRanges(testSettings(), true, &start, &end, now)

	require.Len(t, blocked, 5)

	// Для участника окно - 30 дней
	require.NotNil(t, blocked[2].After)
	assert.Equal(t, start.AddDate(0, 0, 30), *blocked[2].After)

	require.NotNil(t, blocked[3].Before)
	assert.Equal(t, end.AddDate(0, 0, -30), *blocked[3].Before)

	require.NotNil(t, blocked[4].Before)
	assert.Equal(t, start.AddDate(0, 0, -30), *blocked[4].Before)
}

func TestComputeBlockedRanges_EndWithoutStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Без выбранного начала окно длительности не применяется
	blocked := computeBlockedRanges(testSettings(), false, nil, &end, now)

	require.Len(t, blocked, 2)
}

func TestComputeBlockedRanges_BlocksPredicate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	blocked := computeBlockedRanges(testSettings(), false, nil, nil, now)

	isBlocked := func(t time.Time) bool {
		for _, r := range blocked {
			if r.Blocks(t) {
				return true
			}
		}
		return false
	}

	assert.True(t, isBlocked(now.AddDate(0, 0, -1)), "yesterday must be blocked")
	assert.False(t, isBlocked(now.AddDate(0, 0, 1)), "tomorrow must be available")
	assert.False(t, isBlocked(now.AddDate(0, 0, 90)), "horizon boundary must be available")
	assert.True(t, isBlocked(now.AddDate(0, 0, 91)), "beyond horizon must be blocked")
}
