package catalog

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"howett.net/plist"

	"github.com/shaiso/releng/internal/domain"
)

// Ключи plist-дескриптора текущего релиза.
const (
	// VersionKey — поле с короткой версией.
	VersionKey = "CFBundleShortVersionString"

	// NameKey — поле с именем релиза.
	NameKey = "SLKReleaseName"
)

// LoadCurrentRelease читает дескриптор текущего релиза из XML plist.
//
// Перед разбором содержимое обрезается от окружающих пробелов и
// переводов строк: plist-парсеры падают на пробелах в начале файла,
// а файл периодически правят руками.
func LoadCurrentRelease(path string, logger *slog.Logger) (domain.Release, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("parsing current release information", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Release{}, &ParseError{Path: path, Err: err}
	}

	fields, err := decodeDescriptor(raw)
	if err != nil {
		return domain.Release{}, &ParseError{Path: path, Err: err}
	}

	ver, ok := fields[VersionKey].(string)
	if ver = strings.TrimSpace(ver); !ok || ver == "" {
		return domain.Release{}, &ParseError{Path: path, Err: ErrMissingVersionField}
	}

	name, ok := fields[NameKey].(string)
	if name = strings.TrimSpace(name); !ok || name == "" {
		return domain.Release{}, &ParseError{Path: path, Err: ErrMissingNameField}
	}

	rel := domain.Release{Version: ver, Name: name}
	logger.Debug("current release parsed", "release", rel.String())

	return rel, nil
}

// SaveCurrentRelease перезаписывает дескриптор новым релизом.
//
// Остальные поля дескриптора сохраняются как есть: файл читается,
// обновляются только два ключа, и весь словарь записывается обратно
// в том же XML-формате.
func SaveCurrentRelease(path string, rel domain.Release) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}

	fields, err := decodeDescriptor(raw)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}

	fields[VersionKey] = rel.Version
	fields[NameKey] = rel.Name

	out, err := plist.MarshalIndent(fields, plist.XMLFormat, "\t")
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}

// decodeDescriptor разбирает plist-словарь, терпимо к окружающим пробелам.
func decodeDescriptor(raw []byte) (map[string]any, error) {
	var fields map[string]any
	if _, err := plist.Unmarshal(bytes.TrimSpace(raw), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
