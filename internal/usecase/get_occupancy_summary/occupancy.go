package get_occupancy_summary

import (
	"fmt"
	"math"

	"github.com/closer-platform/availability-service/internal/domain"
)

// OccupancyStats агрегированная статистика занятости одной категории листингов
type OccupancyStats struct {
	Booked        int
	TotalCapacity int
	Percentage    string
	HasNoListings bool
	HasNoBookings bool
}

// aggregateOccupancy вычисляет занятость для обеих категорий листингов
// за период durationDays.
//
// Листинг относится к категории nightly, если priceDuration не задан или
// равен "night"; все прочие считаются space-листингами. Ёмкость nightly -
// длительность × юниты (private: quantity, shared: quantity × beds),
// ёмкость space - длительность × рабочие часы. Забронированные юниты
// считаются одной функцией для обеих категорий: private-листинг занимает
// один юнит независимо от числа гостей, shared - по числу взрослых.
func aggregateOccupancy(
	bookings []*domain.Booking,
	listings []*domain.Listing,
	durationDays int,
) (nightly, space OccupancyStats) {
	nightlyListings := make(map[int64]*domain.Listing)
	spaceListings := make(map[int64]*domain.Listing)

	nightlyCapacity := 0
	spaceCapacity := 0

	for _, l := range listings {
		if l.IsNightly() {
			nightlyListings[l.ID] = l
			nightlyCapacity += l.NightlyUnits()
		} else {
			spaceListings[l.ID] = l
			spaceCapacity += l.HourlyUnits()
		}
	}

	nightlyCapacity *= durationDays
	spaceCapacity *= durationDays

	nightlyBooked := bookedUnits(bookings, nightlyListings)
	spaceBooked := bookedUnits(bookings, spaceListings)

	nightly = buildStats(nightlyBooked, nightlyCapacity)
	space = buildStats(spaceBooked, spaceCapacity)
	return nightly, space
}

// bookedUnits считает занятые юниты по бронированиям, попавшим в категорию
func bookedUnits(bookings []*domain.Booking, category map[int64]*domain.Listing) int {
	booked := 0
	for _, b := range bookings {
		listing, ok := category[b.ListingID]
		if !ok {
			continue
		}
		if listing.Private {
			booked++
		} else {
			booked += b.Adults
		}
	}
	return booked
}

func buildStats(booked, capacity int) OccupancyStats {
	return OccupancyStats{
		Booked:        booked,
		TotalCapacity: capacity,
		Percentage:    occupancyPercentage(booked, capacity),
		HasNoListings: capacity == 0 && booked == 0,
		HasNoBookings: booked == 0,
	}
}

// occupancyPercentage возвращает процент занятости с одним знаком после
// запятой. Деление на ноль и нечисловые результаты нормализуются в "0",
// чтобы дашборд оставался отрисовываемым при разреженных данных.
func occupancyPercentage(booked, capacity int) string {
	if capacity == 0 {
		return "0"
	}

	ratio := float64(booked) / float64(capacity) * 100
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "0"
	}

	return fmt.Sprintf("%.1f", ratio)
}
