package get_occupancy_summary

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда fromDate позже toDate
	ErrInvalidDateRange = errors.New("from date must not be after to date")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
