// Package telemetry обеспечивает наблюдаемость инструмента.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Уровень логирования задаётся флагом --log-level (fatal, error,
// warn, info, debug). Логгер создаётся один раз при старте; явного
// завершения нет — буферы сбрасываются при выходе процесса.
package telemetry
