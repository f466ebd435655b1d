package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/releng/internal/state"
	"github.com/shaiso/releng/internal/tasks"
)

// Harness выполняет release-задачи над общим состоянием запуска.
type Harness struct {
	registry *tasks.Registry
	state    *state.State
	logger   *slog.Logger
	metrics  *Metrics
}

// Config — конфигурация Harness.
type Config struct {
	// Registry — реестр задач.
	Registry *tasks.Registry

	// State — общее состояние запуска.
	State *state.State

	// Logger — логгер; по умолчанию логгер состояния.
	Logger *slog.Logger

	// Metrics — метрики запуска; nil отключает их.
	Metrics *Metrics
}

// New создаёт Harness.
func New(cfg Config) *Harness {
	logger := cfg.Logger
	if logger == nil {
		logger = cfg.State.Logger
	}
	return &Harness{
		registry: cfg.Registry,
		state:    cfg.State,
		logger:   logger,
		metrics:  cfg.Metrics,
	}
}

// Run выполняет задачи names в заданном порядке.
// Пустой names означает все зарегистрированные задачи в порядке Names().
func (h *Harness) Run(ctx context.Context, names []string) error {
	if len(names) == 0 {
		names = h.registry.Names()
	}

	// сначала резолвим весь список: ошибка в имени не должна
	// обнаруживаться после того, как половина задач уже отработала
	runners := make([]tasks.Runner, len(names))
	for i, name := range names {
		task, err := h.registry.Get(name)
		if err != nil {
			return err
		}
		runners[i] = task
	}

	for i, name := range names {
		h.logger.Info("running task", "task", name)
		start := time.Now()

		if err := runners[i].Run(ctx, h.state); err != nil {
			h.metrics.observeTask(name, "failed", time.Since(start))
			return fmt.Errorf("task %s: %w", name, err)
		}

		h.metrics.observeTask(name, "succeeded", time.Since(start))
		h.logger.Info("successfully completed task", "task", name)
	}

	return nil
}
