package tasks

import (
	"context"

	"github.com/shaiso/releng/internal/state"
)

// Runner — контракт release-задачи: единственная точка входа,
// принимающая общее состояние запуска.
//
// Задачи выполняются строго последовательно, ctx передаётся
// по общему соглашению для блокирующих операций (сетевые вызовы
// задач); ядро на нём не приостанавливается.
type Runner interface {
	// Run выполняет задачу. Любая ошибка прерывает оставшиеся задачи.
	Run(ctx context.Context, st *state.State) error
}
