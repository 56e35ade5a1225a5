package domain

import "time"

// BlockedDateRange is either a closed [From, To] interval or an open-ended
// Before/After sentinel. Consumed by calendar-disable predicates, never
// persisted.
type BlockedDateRange struct {
	From   *time.Time
	To     *time.Time
	Before *time.Time
	After  *time.Time
}

// Blocks reports whether the given date falls into the blocked range
func (r BlockedDateRange) Blocks(t time.Time) bool {
	if r.Before != nil && t.Before(*r.Before) {
		return true
	}
	if r.After != nil && t.After(*r.After) {
		return true
	}
	if r.From != nil && r.To != nil {
		return !t.Before(*r.From) && !t.After(*r.To)
	}
	return false
}

// BookingSettings are the horizon and duration caps of the booking config
// category, resolved against the schema defaults
type BookingSettings struct {
	MaxBookingHorizon       int // days a non-member can book ahead
	MemberMaxBookingHorizon int // days a member can book ahead
	MaxDuration             int // max stay length for non-members, days
	MemberMaxDuration       int // max stay length for members, days
}

// HorizonFor returns the booking horizon applicable to the caller
func (s BookingSettings) HorizonFor(isMember bool) int {
	if isMember {
		return s.MemberMaxBookingHorizon
	}
	return s.MaxBookingHorizon
}

// DurationFor returns the stay duration cap applicable to the caller
func (s BookingSettings) DurationFor(isMember bool) int {
	if isMember {
		return s.MemberMaxDuration
	}
	return s.MaxDuration
}
