package get_occupancy_summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/closer-platform/availability-service/internal/domain"
)

func sharedListing(id int64, quantity, beds int) *domain.Listing {
	return &domain.Listing{
		ID:       id,
		Quantity: quantity,
		Beds:     beds,
		Private:  false,
	}
}

func privateListing(id int64, quantity int) *domain.Listing {
	return &domain.Listing{
		ID:       id,
		Quantity: quantity,
		Private:  true,
	}
}

func spaceListing(id int64, hoursStart, hoursEnd int) *domain.Listing {
	return &domain.Listing{
		ID:                id,
		PriceDuration:     domain.PriceDurationHour,
		WorkingHoursStart: hoursStart,
		WorkingHoursEnd:   hoursEnd,
	}
}

func TestAggregateOccupancy_SharedListing(t *testing.T) {
	// Shared-листинг 2 юнита по 2 кровати: ёмкость 4, забронировано по
	// числу взрослых
	listings := []*domain.Listing{sharedListing(1, 2, 2)}
	bookings := []*domain.Booking{
		{ID: 10, ListingID: 1, Adults: 3},
	}

	nightly, space := aggregateOccupancy(bookings, listings, 1)

	assert.Equal(t, 3, nightly.Booked)
	assert.Equal(t, 4, nightly.TotalCapacity)
	assert.Equal(t, "75.0", nightly.Percentage)
	assert.False(t, nightly.HasNoListings)
	assert.False(t, nightly.HasNoBookings)

	assert.True(t, space.HasNoListings)
	assert.Equal(t, "0", space.Percentage)
}

func TestAggregateOccupancy_PrivateListingCountsOneUnit(t *testing.T) {
	// Private-листинг занимает один юнит независимо от числа гостей
	listings := []*domain.Listing{privateListing(1, 2)}
	bookings := []*domain.Booking{
		{ID: 10, ListingID: 1, Adults: 5},
	}

	nightly, _ := aggregateOccupancy(bookings, listings, 1)

	assert.Equal(t, 1, nightly.Booked)
	assert.Equal(t, 2, nightly.TotalCapacity)
	assert.Equal(t, "50.0", nightly.Percentage)
}

func TestAggregateOccupancy_SpaceCategory(t *testing.T) {
	// Space-листинг с рабочими часами 9-17: 8 слотов в день
	listings := []*domain.Listing{spaceListing(2, 9, 17)}
	bookings := []*domain.Booking{
		{ID: 11, ListingID: 2, Adults: 2},
	}

	nightly, space := aggregateOccupancy(bookings, listings, 2)

	assert.Equal(t, 2, space.Booked)
	assert.Equal(t, 16, space.TotalCapacity)
	assert.Equal(t, "12.5", space.Percentage)

	assert.True(t, nightly.HasNoListings)
}

func TestAggregateOccupancy_CapacityScalesWithDuration(t *testing.T) {
	listings := []*domain.Listing{sharedListing(1, 2, 2)}

	nightly, _ := aggregateOccupancy(nil, listings, 7)

	assert.Equal(t, 28, nightly.TotalCapacity)
	assert.True(t, nightly.HasNoBookings)
	assert.False(t, nightly.HasNoListings)
	assert.Equal(t, "0.0", nightly.Percentage)
}

func TestAggregateOccupancy_ZeroDuration(t *testing.T) {
	// Период "today" даёт нулевую длительность: ёмкость нулевая,
	// процент защищён от деления на ноль
	listings := []*domain.Listing{sharedListing(1, 2, 2)}
	bookings := []*domain.Booking{
		{ID: 10, ListingID: 1, Adults: 3},
	}

	nightly, _ := aggregateOccupancy(bookings, listings, 0)

	assert.Equal(t, 3, nightly.Booked)
	assert.Equal(t, 0, nightly.TotalCapacity)
	assert.Equal(t, "0", nightly.Percentage)
	assert.False(t, nightly.HasNoListings)
}

func TestAggregateOccupancy_NoListingsNoBookings(t *testing.T) {
	nightly, space := aggregateOccupancy(nil, nil, 7)

	assert.True(t, nightly.HasNoListings)
	assert.True(t, nightly.HasNoBookings)
	assert.Equal(t, "0", nightly.Percentage)
	assert.True(t, space.HasNoListings)
}

func TestAggregateOccupancy_BookingForUnknownListingIgnored(t *testing.T) {
	listings := []*domain.Listing{sharedListing(1, 1, 2)}
	bookings := []*domain.Booking{
		{ID: 10, ListingID: 99, Adults: 2},
	}

	nightly, _ := aggregateOccupancy(bookings, listings, 1)

	assert.Equal(t, 0, nightly.Booked)
	assert.True(t, nightly.HasNoBookings)
}

func TestOccupancyPercentage_Rounding(t *testing.T) {
	assert.Equal(t, "33.3", occupancyPercentage(1, 3))
	assert.Equal(t, "66.7", occupancyPercentage(2, 3))
	assert.Equal(t, "100.0", occupancyPercentage(3, 3))
	assert.Equal(t, "0", occupancyPercentage(0, 0))
	assert.Equal(t, "0", occupancyPercentage(5, 0))
}
