package create_booking

import "errors"

var (
	// ErrInvalidUserID возвращается при некорректном ID пользователя
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidListingID возвращается при некорректном ID листинга
	ErrInvalidListingID = errors.New("invalid listing ID")

	// ErrInvalidDateRange возвращается при некорректном интервале дат
	ErrInvalidDateRange = errors.New("start date must be before end date")

	// ErrInvalidGuestCount возвращается при некорректном числе гостей
	ErrInvalidGuestCount = errors.New("at least one adult is required")

	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("listing not found")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("booking start date is in the past")

	// ErrBeyondHorizon возвращается при выходе за горизонт бронирования
	ErrBeyondHorizon = errors.New("booking start date is beyond the allowed horizon")

	// ErrDurationExceeded возвращается при превышении максимальной длительности
	ErrDurationExceeded = errors.New("booking duration exceeds the allowed maximum")

	// ErrNoCapacity возвращается, когда на выбранные даты нет свободных мест
	ErrNoCapacity = errors.New("no capacity available for the selected dates")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
