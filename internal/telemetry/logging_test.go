package telemetry

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "fatal", want: LevelFatal},
		{input: "error", want: slog.LevelError},
		{input: "warn", want: slog.LevelWarn},
		{input: "info", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	for _, input := range []string{"", "verbose", "INFO", "trace"} {
		if _, err := ParseLevel(input); err == nil {
			t.Errorf("ParseLevel(%q): expected error, got nil", input)
		}
	}
}
