package domain

import "time"

// TimeFrame represents a symbolic reporting period name
type TimeFrame string

const (
	TimeFrameToday  TimeFrame = "today"
	TimeFrameWeek   TimeFrame = "week"
	TimeFrameMonth  TimeFrame = "month"
	TimeFrameYear   TimeFrame = "year"
	TimeFrameCustom TimeFrame = "custom"
)

// Offsets in days from "now" for the named time frames
const (
	weekOffsetDays  = 7
	monthOffsetDays = 28
	yearOffsetDays  = 364
)

// DateRange is a concrete interval resolved from a time frame
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsKnownTimeFrame reports whether the token is one of the named frames
func IsKnownTimeFrame(frame TimeFrame) bool {
	switch frame {
	case TimeFrameToday, TimeFrameWeek, TimeFrameMonth, TimeFrameYear, TimeFrameCustom:
		return true
	default:
		return false
	}
}

// ResolveTimeFrame resolves a named time frame into a concrete date range.
//
// The presence of both explicit dates forces the frame to custom, which
// returns them verbatim with no coercion - the caller must have supplied
// valid dates. Unknown tokens resolve to the same-instant range of "today";
// the caller may log the degradation but resolution itself never fails.
// Pure function: wall-clock time is an explicit input.
func ResolveTimeFrame(frame TimeFrame, fromDate, toDate *time.Time, now time.Time) DateRange {
	if fromDate != nil && toDate != nil {
		frame = TimeFrameCustom
	}

	switch frame {
	case TimeFrameCustom:
		r := DateRange{}
		if fromDate != nil {
			r.Start = *fromDate
		}
		if toDate != nil {
			r.End = *toDate
		}
		return r
	case TimeFrameWeek:
		return DateRange{Start: now.AddDate(0, 0, -weekOffsetDays), End: now}
	case TimeFrameMonth:
		return DateRange{Start: now.AddDate(0, 0, -monthOffsetDays), End: now}
	case TimeFrameYear:
		return DateRange{Start: now.AddDate(0, 0, -yearOffsetDays), End: now}
	default:
		// today, and the permissive fallback for unknown tokens
		return DateRange{Start: now, End: now}
	}
}

// Days returns the length of the range in whole days, never negative
func (r DateRange) Days() int {
	days := int(r.End.Sub(r.Start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
