package get_occupancy_summary

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

// Request запрос на получение сводки занятости за период
type Request struct {
	TimeFrame string     `json:"timeFrame"`
	FromDate  *time.Time `json:"fromDate,omitempty"`
	ToDate    *time.Time `json:"toDate,omitempty"`
}

// CategorySummary сводка занятости одной категории листингов
type CategorySummary struct {
	Booked        int    `json:"booked"`
	TotalCapacity int    `json:"totalCapacity"`
	Percentage    string `json:"percentage"`
	HasNoListings bool   `json:"hasNoListings"`
	HasNoBookings bool   `json:"hasNoBookings"`
}

// Response сводка занятости за разрешённый период
type Response struct {
	Start        string          `json:"start"` // YYYY-MM-DD
	End          string          `json:"end"`   // YYYY-MM-DD
	DurationDays int             `json:"durationDays"`
	Nightly      CategorySummary `json:"nightly"`
	Space        CategorySummary `json:"space"`
}

// Методы конвертации

func toResponse(dateRange domain.DateRange, nightly, space OccupancyStats) *Response {
	return &Response{
		Start:        dateRange.Start.Format(domain.DateFormat),
		End:          dateRange.End.Format(domain.DateFormat),
		DurationDays: dateRange.Days(),
		Nightly:      toCategorySummary(nightly),
		Space:        toCategorySummary(space),
	}
}

func toCategorySummary(stats OccupancyStats) CategorySummary {
	return CategorySummary{
		Booked:        stats.Booked,
		TotalCapacity: stats.TotalCapacity,
		Percentage:    stats.Percentage,
		HasNoListings: stats.HasNoListings,
		HasNoBookings: stats.HasNoBookings,
	}
}
