package tasks

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shaiso/releng/internal/config"
	"github.com/shaiso/releng/internal/ghclient"
)

// Имена встроенных задач.
const (
	TaskCreateBranch  = "create-release-branch"
	TaskIncrementPlist = "increment-plist"
	TaskFeatureReport = "generate-feature-report"
)

// Registry — реестр release-задач: имя → Runner.
//
// Собирается один раз при старте и далее не меняется.
// Потокобезопасен.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]Runner
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]Runner),
	}
}

// Default создаёт реестр со всеми встроенными задачами.
func Default(cfg *config.Config, gh *ghclient.Client) (*Registry, error) {
	r := NewRegistry()

	builtins := map[string]any{
		TaskCreateBranch: &CreateBranchTask{
			GH:   gh,
			Base: cfg.BaseBranch,
		},
		TaskIncrementPlist: &IncrementPlistTask{
			GH:             gh,
			DescriptorPath: cfg.DescriptorPath,
			RemotePath:     cfg.RemoteDescriptorPath,
		},
		TaskFeatureReport: &FeatureReportTask{
			GH:         gh,
			Base:       cfg.BaseBranch,
			FlagsPath:  cfg.FlagsPath,
			ReportPath: cfg.ReportPath,
		},
	}

	for name, unit := range builtins {
		if err := r.Register(name, unit); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register валидирует определение задачи и регистрирует его под именем name.
//
// Проверка структурная: определение обязано реализовать Runner, всё
// остальное в его устройстве — дело автора. Нарушение контракта,
// nil-определение, пустое или занятое имя — RegistrationError.
func (r *Registry) Register(name string, unit any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &RegistrationError{Err: ErrEmptyTaskName}
	}
	if unit == nil {
		return &RegistrationError{Task: name, Err: ErrMissingDefinition}
	}

	runner, ok := unit.(Runner)
	if !ok {
		return &RegistrationError{Task: name, Err: ErrContractNotMet}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[name]; exists {
		return &RegistrationError{Task: name, Err: ErrDuplicateTask}
	}
	r.tasks[name] = runner

	return nil
}

// Get возвращает задачу по имени.
// Возвращает ErrTaskNotFound, если задачи нет.
func (r *Registry) Get(name string) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	return task, nil
}

// Has проверяет, зарегистрирована ли задача.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tasks[name]
	return exists
}

// Names возвращает имена всех задач в отсортированном порядке.
// Это же — порядок запуска по умолчанию.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count возвращает количество зарегистрированных задач.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
