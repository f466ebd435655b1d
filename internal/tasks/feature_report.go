package tasks

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/shaiso/releng/internal/ghclient"
	"github.com/shaiso/releng/internal/state"
	"github.com/shaiso/releng/internal/telemetry"
)

// FeatureReportTask строит отчёт об изменениях feature-флагов между
// текущим и предыдущим релизом.
//
// Флаги читаются из CSV в репозитории: текущие — с базовой ветки,
// предыдущие — с ветки предыдущего релиза. Если предыдущий релиз
// определить не удалось, отчёт строится только по текущим флагам.
type FeatureReportTask struct {
	// GH — клиент репозитория.
	GH *ghclient.Client

	// Base — ветка с текущим состоянием флагов.
	Base string

	// FlagsPath — путь к CSV c флагами внутри репозитория.
	FlagsPath string

	// ReportPath — локальный путь для готового отчёта.
	ReportPath string
}

// Run реализует Runner.
func (t *FeatureReportTask) Run(ctx context.Context, st *state.State) error {
	log := telemetry.WithTask(st.Logger, TaskFeatureReport)

	log.Info("generating a feature flag change report")
	log.Info("current release", "release", st.Current.String())

	current, err := t.readFlags(ctx, log, t.Base)
	if err != nil {
		return fmt.Errorf("read current feature flags: %w", err)
	}

	// предыдущие флаги — best effort: без предыдущего релиза или его
	// ветки отчёт вырождается в срез текущего состояния
	previous := t.readPreviousFlags(ctx, log, st)

	report := buildReport(current, previous)

	log.Info("feature flag report", "flags", len(report))
	for _, row := range report {
		log.Info("flag", "name", row.name, "current", row.current, "previous", row.previous)
	}

	if err := writeReport(t.ReportPath, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Info("feature flag report has been generated", "path", t.ReportPath)
	return nil
}

// readPreviousFlags возвращает флаги предыдущего релиза либо nil.
func (t *FeatureReportTask) readPreviousFlags(ctx context.Context, log *slog.Logger, st *state.State) map[string]string {
	prev, err := st.PreviousRelease()
	if err != nil {
		log.Warn("could not determine the previous release, reporting current flags only", "error", err)
		return nil
	}
	log.Info("previous release", "release", prev.String())

	flags, err := t.readFlags(ctx, log, prev.String())
	if err != nil {
		if errors.Is(err, ghclient.ErrNotFound) {
			log.Warn("no feature flag data on the previous release branch", "branch", prev.String())
		} else {
			log.Warn("could not read previous feature flags", "branch", prev.String(), "error", err)
		}
		return nil
	}
	return flags
}

// readFlags читает и нормализует CSV с флагами с ветки ref.
// Имена и значения приводятся к верхнему регистру; значения кроме
// ON/OFF отбрасываются с предупреждением.
func (t *FeatureReportTask) readFlags(ctx context.Context, log *slog.Logger, ref string) (map[string]string, error) {
	file, err := t.GH.GetContents(ctx, t.FlagsPath, ref)
	if err != nil {
		return nil, err
	}
	raw, err := file.Decoded()
	if err != nil {
		return nil, err
	}

	flags := make(map[string]string)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn("skipping malformed feature flag row", "error", err)
			continue
		}
		if len(record) != 2 {
			continue
		}

		name := strings.ToUpper(strings.TrimSpace(record[0]))
		value := strings.ToUpper(strings.TrimSpace(record[1]))

		if value != "ON" && value != "OFF" {
			log.Warn("unknown value for feature flag", "flag", name, "value", value)
			continue
		}
		flags[name] = value
	}

	return flags, nil
}

// reportRow — строка отчёта по одному флагу.
type reportRow struct {
	name     string
	current  string
	previous string
}

// buildReport объединяет имена флагов обеих сторон: флаг мог быть
// добавлен или удалён между релизами. Отсутствующая сторона — "-".
func buildReport(current, previous map[string]string) []reportRow {
	names := make([]string, 0, len(current)+len(previous))
	seen := make(map[string]struct{})
	for name := range current {
		names = append(names, name)
		seen[name] = struct{}{}
	}
	for name := range previous {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	rows := make([]reportRow, len(names))
	for i, name := range names {
		rows[i] = reportRow{
			name:     name,
			current:  valueOrDash(current, name),
			previous: valueOrDash(previous, name),
		}
	}
	return rows
}

func valueOrDash(flags map[string]string, name string) string {
	if v, ok := flags[name]; ok {
		return v
	}
	return "-"
}

// writeReport записывает отчёт в CSV-файл.
func writeReport(path string, rows []reportRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"flag_name", "current_version", "previous_version"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.name, row.current, row.previous}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
