package get_occupancy_summary

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
	getOccupancySummary "github.com/closer-platform/availability-service/internal/usecase/get_occupancy_summary"
)

// OccupancySummaryResponse HTTP response model
type OccupancySummaryResponse struct {
	Start        string          `json:"start"`
	End          string          `json:"end"`
	DurationDays int             `json:"durationDays"`
	Nightly      CategorySummary `json:"nightly"`
	Space        CategorySummary `json:"space"`
}

// CategorySummary сводка занятости одной категории листингов
type CategorySummary struct {
	Booked        int    `json:"booked"`
	TotalCapacity int    `json:"totalCapacity"`
	Percentage    string `json:"percentage"`
	HasNoListings bool   `json:"hasNoListings"`
	HasNoBookings bool   `json:"hasNoBookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancySummary.Response) *OccupancySummaryResponse {
	return &OccupancySummaryResponse{
		Start:        resp.Start,
		End:          resp.End,
		DurationDays: resp.DurationDays,
		Nightly:      CategorySummary(resp.Nightly),
		Space:        CategorySummary(resp.Space),
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(timeFrame, fromStr, toStr string) (*getOccupancySummary.Request, error) {
	req := &getOccupancySummary.Request{TimeFrame: timeFrame}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.FromDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.ToDate = &to
	}

	return req, nil
}
