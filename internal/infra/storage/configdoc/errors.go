package configdoc

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документ конфигурации не найден
	ErrDocumentNotFound = errors.New("configdoc.repository: config document not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("configdoc.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("configdoc.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("configdoc.repository: failed to scan row")

	// ErrEncodeValue возвращается при ошибке сериализации значения в JSON
	ErrEncodeValue = errors.New("configdoc.repository: failed to encode value")

	// ErrDecodeValue возвращается при ошибке десериализации значения из JSON
	ErrDecodeValue = errors.New("configdoc.repository: failed to decode value")
)
