// Package tasks содержит контракт release-задач, их реестр
// и встроенные задачи.
//
// # Контракт
//
// Задача — это любое значение, реализующее интерфейс Runner:
//
//	type Runner interface {
//	    Run(ctx context.Context, st *state.State) error
//	}
//
// Общего базового типа нет и не требуется: автор задачи волен
// устроить её как угодно, лишь бы была точка входа Run. Соответствие
// контракту проверяется при регистрации, а не при запуске —
// некорректная задача валит старт, а не середину релиза.
//
// # Registry
//
// Registry отображает стабильное имя задачи в её Runner:
//
//	reg := tasks.NewRegistry()
//	if err := reg.Register("my-task", unit); err != nil {
//	    // RegistrationError: nil-определение, нарушенный контракт,
//	    // пустое или повторяющееся имя
//	}
//
// Default собирает реестр со встроенными задачами. Names возвращает
// имена отсортированными, поэтому порядок запуска по умолчанию
// детерминирован.
//
// # Встроенные задачи
//
//   - create-release-branch  — ветка <имя>/<версия> от базовой ветки
//   - increment-plist        — перевод дескриптора на следующий релиз
//   - generate-feature-report — отчёт об изменениях feature-флагов
//
// # Файлы пакета
//
//   - task.go           — интерфейс Runner
//   - registry.go       — Registry
//   - errors.go         — RegistrationError и sentinel-ошибки
//   - create_branch.go  — CreateBranchTask
//   - increment_plist.go — IncrementPlistTask
//   - feature_report.go — FeatureReportTask
package tasks
