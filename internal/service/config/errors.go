package config

import "errors"

var (
	// ErrUnknownCategory возвращается для slug без аналога в схеме
	ErrUnknownCategory = errors.New("unknown config category")

	// ErrMemberNotFound возвращается, когда пользователь не найден
	ErrMemberNotFound = errors.New("member not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
