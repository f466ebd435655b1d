package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shaiso/releng/internal/domain"
	"github.com/shaiso/releng/internal/version"
)

// LoadFile читает каталог доступных релизов из CSV-файла.
// Нечитаемый файл — ParseError; некорректные строки внутри файла
// пропускаются (см. Load).
func LoadFile(path string, logger *slog.Logger) (domain.Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("parsing available releases", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	cat, err := Load(f, logger)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cat, nil
}

// Load читает каталог из двухколоночного CSV (имя, версия).
//
// Цикл в основном занят фильтрацией непригодных данных. Пропускаются:
//   - пустые строки
//   - строки с числом колонок, отличным от двух
//   - строки с пустым именем или версией (после обрезки пробелов)
//   - версии в неверном формате — так же отсеивается строка-заголовок
//   - повторяющиеся имена и повторяющиеся версии
//
// Каждый пропуск логируется на уровне debug и не является ошибкой.
func Load(r io.Reader, logger *slog.Logger) (domain.Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// имена и версии должны быть уникальны; два независимых набора,
	// чтобы дубликат версии не маскировался дубликатом имени
	names := make(map[string]struct{})
	versions := make(map[string]struct{})
	releases := make(domain.Catalog)

	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				logger.Debug("ignoring row: malformed csv", "row", row, "error", err)
				continue
			}
			return nil, err
		}

		if len(record) != 2 {
			logger.Debug("ignoring row: expected 2 values", "row", row, "got", len(record))
			continue
		}

		name := strings.TrimSpace(record[0])
		ver := strings.TrimSpace(record[1])

		if name == "" || ver == "" {
			logger.Debug("ignoring row: name and version cannot be empty", "row", row)
			continue
		}

		if !version.IsWellFormed(ver) {
			// сюда же попадает строка-заголовок
			logger.Debug("ignoring row: version is invalid", "row", row, "version", ver)
			continue
		}

		if _, seen := names[name]; seen {
			logger.Debug("ignoring row: duplicate release name", "row", row, "name", name)
			continue
		}
		names[name] = struct{}{}

		if _, seen := versions[ver]; seen {
			logger.Debug("ignoring row: duplicate release version", "row", row, "version", ver)
			continue
		}
		versions[ver] = struct{}{}

		releases[ver] = name

		logger.Debug("found release", "name", name, "version", ver)
	}

	return releases, nil
}
