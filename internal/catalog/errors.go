package catalog

import "errors"

// Ошибки дескриптора текущего релиза.
var (
	// ErrMissingVersionField — в дескрипторе нет поля с версией.
	ErrMissingVersionField = errors.New("descriptor has no version field")

	// ErrMissingNameField — в дескрипторе нет поля с именем релиза.
	ErrMissingNameField = errors.New("descriptor has no release name field")
)

// ParseError — внешний файл релиза не удалось прочитать или разобрать.
//
// Фатальна: возникает до запуска задач и прерывает запуск целиком.
type ParseError struct {
	Path string // путь к файлу
	Err  error  // причина
}

// Error реализует интерфейс error.
func (e *ParseError) Error() string {
	return "parse " + e.Path + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *ParseError) Unwrap() error {
	return e.Err
}
