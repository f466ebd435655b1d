package state

import "errors"

// Ошибки вычисления соседнего релиза.
var (
	// ErrCurrentNotInCatalog — текущая версия отсутствует в каталоге.
	ErrCurrentNotInCatalog = errors.New("current version does not appear in the available releases")

	// ErrNoNextRelease — в каталоге нет версии выше текущей.
	ErrNoNextRelease = errors.New("no version after the current one is available")

	// ErrNoPreviousRelease — в каталоге нет версии ниже текущей.
	ErrNoPreviousRelease = errors.New("no version before the current one is available")
)

// ResolutionError — не удалось определить соседний релиз.
//
// Фатальна для задачи, которая запросила вычисление: поднимается
// до harness и прерывает оставшиеся задачи.
type ResolutionError struct {
	Direction string // "next" или "previous"
	Version   string // текущая версия, от которой шёл поиск
	Err       error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ResolutionError) Error() string {
	return "can't determine " + e.Direction + " version from " + e.Version + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
