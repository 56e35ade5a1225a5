package get_occupancy_summary

import (
	"context"

	getOccupancySummary "github.com/closer-platform/availability-service/internal/usecase/get_occupancy_summary"
)

type GetOccupancySummaryUseCase interface {
	Execute(ctx context.Context, req *getOccupancySummary.Request) (*getOccupancySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
