package domain

import "time"

// PriceDuration represents the billing unit of a listing
type PriceDuration string

const (
	// PriceDurationNight accommodation billed per night (the default)
	PriceDurationNight PriceDuration = "night"
	// PriceDurationHour spaces billed per hour (meeting rooms, studios)
	PriceDurationHour PriceDuration = "hour"
)

// Listing represents a bookable accommodation or space.
// Read-only from this service's perspective - managed by the platform admin.
type Listing struct {
	ID            int64
	Name          string
	PriceDuration PriceDuration
	Quantity      int
	Beds          int
	Private       bool

	// Working hours bound hourly capacity of space listings (0-24)
	WorkingHoursStart int
	WorkingHoursEnd   int

	// Audiences the listing can be booked by: guests, team, volunteer
	AvailableFor []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNightly returns true if the listing is billed per night.
// An unset price duration means nightly.
func (l *Listing) IsNightly() bool {
	return l.PriceDuration == "" || l.PriceDuration == PriceDurationNight
}

// NightlyUnits returns the per-day unit capacity of a nightly listing.
// A private listing is let as a whole, a shared one bed by bed.
func (l *Listing) NightlyUnits() int {
	if l.Private {
		return l.Quantity
	}
	return l.Quantity * l.Beds
}

// HourlyUnits returns the per-day slot capacity of a space listing
func (l *Listing) HourlyUnits() int {
	return l.WorkingHoursEnd - l.WorkingHoursStart
}
