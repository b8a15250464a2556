package page

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница не найдена
	ErrPageNotFound = errors.New("page.repository: page not found")

	// ErrSlugTaken возвращается, когда slug уже занят другой страницей
	ErrSlugTaken = errors.New("page.repository: slug already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("page.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("page.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("page.repository: failed to scan row")
)
