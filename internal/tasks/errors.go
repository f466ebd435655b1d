package tasks

import "errors"

// Ошибки реестра задач.
var (
	// ErrTaskNotFound — задача с таким именем не зарегистрирована.
	ErrTaskNotFound = errors.New("task not found")

	// ErrMissingDefinition — вместо определения задачи передан nil.
	ErrMissingDefinition = errors.New("missing task definition")

	// ErrContractNotMet — определение не реализует контракт задачи.
	ErrContractNotMet = errors.New("does not satisfy task contract")

	// ErrEmptyTaskName — имя задачи пустое.
	ErrEmptyTaskName = errors.New("task name is empty")

	// ErrDuplicateTask — задача с таким именем уже зарегистрирована.
	ErrDuplicateTask = errors.New("duplicate task name")
)

// RegistrationError — задачу не удалось зарегистрировать.
//
// Фатальна на старте: лучше отказаться запускаться, чем молча
// пропустить некорректную задачу.
type RegistrationError struct {
	Task string // имя задачи
	Err  error  // причина
}

// Error реализует интерфейс error.
func (e *RegistrationError) Error() string {
	if e.Task == "" {
		return "register task: " + e.Err.Error()
	}
	return "register task " + e.Task + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *RegistrationError) Unwrap() error {
	return e.Err
}
