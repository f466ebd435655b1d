package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/shaiso/releng/internal/config"
	"github.com/shaiso/releng/internal/ghclient"
	"github.com/shaiso/releng/internal/state"
)

// noopTask — минимальное определение, удовлетворяющее контракту.
type noopTask struct{}

func (noopTask) Run(ctx context.Context, st *state.State) error { return nil }

// statefulTask — контракт через указатель и с дополнительным
// состоянием: внутреннее устройство задачи реестр не ограничивает.
type statefulTask struct {
	calls int
	extra string
}

func (t *statefulTask) Run(ctx context.Context, st *state.State) error {
	t.calls++
	return nil
}

// notATask не имеет точки входа Run.
type notATask struct{}

// wrongSignature имеет Run с другой сигнатурой — контракт не выполнен.
type wrongSignature struct{}

func (wrongSignature) Run() {}

func TestRegister_AcceptsAnyConformingStructure(t *testing.T) {
	tests := []struct {
		name string
		unit any
	}{
		{name: "value receiver", unit: noopTask{}},
		{name: "pointer with state", unit: &statefulTask{extra: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			if err := reg.Register("unit", tt.unit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reg.Has("unit") {
				t.Error("expected task to be registered")
			}
		})
	}
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		unit    any
		wantErr error
	}{
		{name: "nil unit", task: "broken", unit: nil, wantErr: ErrMissingDefinition},
		{name: "no entry point", task: "broken", unit: notATask{}, wantErr: ErrContractNotMet},
		{name: "wrong signature", task: "broken", unit: wrongSignature{}, wantErr: ErrContractNotMet},
		{name: "empty name", task: "", unit: noopTask{}, wantErr: ErrEmptyTaskName},
		{name: "blank name", task: "   ", unit: noopTask{}, wantErr: ErrEmptyTaskName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()

			err := reg.Register(tt.task, tt.unit)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var regErr *RegistrationError
			if !errors.As(err, &regErr) {
				t.Fatalf("expected RegistrationError, got %T", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("unit", noopTask{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := reg.Register("unit", &statefulTask{})
	if !errors.Is(err, ErrDuplicateTask) {
		t.Errorf("expected ErrDuplicateTask, got %v", err)
	}
}

func TestGet_Unknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("nope")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := reg.Register(name, noopTask{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	names := reg.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDefault_RegistersBuiltins(t *testing.T) {
	gh := ghclient.New(ghclient.DefaultBaseURL, "acme/app", "token")

	reg, err := Default(config.Default(), gh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{TaskCreateBranch, TaskIncrementPlist, TaskFeatureReport} {
		if !reg.Has(name) {
			t.Errorf("expected builtin task %s", name)
		}
	}
	if reg.Count() != 3 {
		t.Errorf("expected 3 tasks, got %d", reg.Count())
	}
}
