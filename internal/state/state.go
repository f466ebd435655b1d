package state

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/shaiso/releng/internal/domain"
	"github.com/shaiso/releng/internal/version"
)

// State — общее состояние одного запуска release-задач.
//
// В будущем сюда же может добавиться task-локальное состояние,
// например для rollback-операций.
type State struct {
	// Logger — логгер запуска с проставленным run_id.
	Logger *slog.Logger

	// RunID — уникальный идентификатор запуска.
	RunID uuid.UUID

	// Current — текущий релиз из дескриптора.
	Current domain.Release

	// Catalog — все известные релизы.
	Catalog domain.Catalog
}

// New создаёт State для нового запуска.
func New(logger *slog.Logger, current domain.Release, catalog domain.Catalog) *State {
	runID := uuid.New()
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		Logger:  logger.With("run_id", runID.String()),
		RunID:   runID,
		Current: current,
		Catalog: catalog,
	}
}

// NextRelease возвращает следующий релиз: версию с наименьшим номером
// среди версий каталога, строго бо́льших текущей.
func (s *State) NextRelease() (domain.Release, error) {
	return s.adjacent("next", 1)
}

// PreviousRelease возвращает предыдущий релиз: версию с наибольшим
// номером среди версий каталога, строго ме́ньших текущей.
func (s *State) PreviousRelease() (domain.Release, error) {
	return s.adjacent("previous", -1)
}

// adjacent ищет соседний релиз в направлении dir (+1 — выше, -1 — ниже).
func (s *State) adjacent(direction string, dir int) (domain.Release, error) {
	cur := s.Current.Version

	name, ok := s.Catalog[cur]
	if !ok {
		return domain.Release{}, &ResolutionError{
			Direction: direction,
			Version:   cur,
			Err:       ErrCurrentNotInCatalog,
		}
	}
	if name != s.Current.Name {
		// расхождение имён не фатально, но о нём стоит знать
		s.Logger.Warn("current version appears in the available releases under a different name",
			"version", cur, "descriptor_name", s.Current.Name, "catalog_name", name)
	}

	best := ""
	for ver := range s.Catalog {
		if version.Compare(ver, cur) != dir {
			continue
		}
		if best == "" || version.Compare(ver, best) == -dir {
			best = ver
		}
	}

	if best == "" {
		err := ErrNoNextRelease
		if dir < 0 {
			err = ErrNoPreviousRelease
		}
		return domain.Release{}, &ResolutionError{Direction: direction, Version: cur, Err: err}
	}

	return domain.Release{Version: best, Name: s.Catalog[best]}, nil
}
