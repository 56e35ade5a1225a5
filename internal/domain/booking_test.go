package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusTransitions(t *testing.T) {
	tests := []struct {
		status     BookingStatus
		canConfirm bool
		canReject  bool
		canCancel  bool
	}{
		{StatusOpen, true, true, true},
		{StatusPending, true, true, true},
		{StatusConfirmed, false, false, true},
		{StatusPaid, false, false, true},
		{StatusCheckedIn, false, false, false},
		{StatusCheckedOut, false, false, false},
		{StatusCancelled, false, false, false},
		{StatusRejected, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canReject, b.CanBeRejected())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusCheckedOut}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())
}

func TestBooking_Overlaps(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	b := &Booking{Start: start, End: start.AddDate(0, 0, 5)}

	assert.True(t, b.Overlaps(start.AddDate(0, 0, 2), start.AddDate(0, 0, 7)))
	assert.True(t, b.Overlaps(start.AddDate(0, 0, -2), start.AddDate(0, 0, 1)))
	// Touching intervals do not overlap
	assert.False(t, b.Overlaps(start.AddDate(0, 0, 5), start.AddDate(0, 0, 8)))
	assert.False(t, b.Overlaps(start.AddDate(0, 0, -3), start))
}

func TestBooking_Nights(t *testing.T) {
	start := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, (&Booking{Start: start, End: start.AddDate(0, 0, 3)}).Nights())
	assert.Equal(t, 0, (&Booking{Start: start, End: start}).Nights())
	assert.Equal(t, 0, (&Booking{Start: start.AddDate(0, 0, 1), End: start}).Nights())
}

func TestListing_Categories(t *testing.T) {
	nightly := &Listing{PriceDuration: ""}
	explicit := &Listing{PriceDuration: PriceDurationNight}
	space := &Listing{PriceDuration: PriceDurationHour}

	assert.True(t, nightly.IsNightly())
	assert.True(t, explicit.IsNightly())
	assert.False(t, space.IsNightly())
}

func TestListing_Units(t *testing.T) {
	private := &Listing{Private: true, Quantity: 3, Beds: 4}
	shared := &Listing{Private: false, Quantity: 2, Beds: 3}
	space := &Listing{WorkingHoursStart: 9, WorkingHoursEnd: 17}

	assert.Equal(t, 3, private.NightlyUnits())
	assert.Equal(t, 6, shared.NightlyUnits())
	assert.Equal(t, 8, space.HourlyUnits())
}

func TestBookingSettings_MemberVariants(t *testing.T) {
	s := BookingSettings{
		MaxBookingHorizon:       90,
		MemberMaxBookingHorizon: 365,
		MaxDuration:             14,
		MemberMaxDuration:       30,
	}

	assert.Equal(t, 90, s.HorizonFor(false))
	assert.Equal(t, 365, s.HorizonFor(true))
	assert.Equal(t, 14, s.DurationFor(false))
	assert.Equal(t, 30, s.DurationFor(true))
}
