package get_blocked_dates

import "errors"

var (
	// ErrInvalidUserID возвращается при некорректном ID пользователя
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidDateRange возвращается, когда start позже end
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
