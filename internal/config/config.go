// Package config загружает конфигурацию запуска из YAML-файла.
//
// Файл необязателен: без него действуют значения по умолчанию.
// Токен доступа к GitHub в конфиг не входит — он берётся только
// из окружения (см. internal/ghclient).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath — имя конфиг-файла, которое ищется в текущей директории,
// если путь не задан флагом.
const DefaultPath = "releng.yaml"

// Config — конфигурация запуска release-задач.
type Config struct {
	// Repository — репозиторий GitHub в формате "owner/name".
	Repository string `yaml:"repository"`

	// BaseBranch — ветка, от которой создаются release-ветки
	// и из которой читаются файлы по умолчанию.
	BaseBranch string `yaml:"base_branch"`

	// DescriptorPath — локальный путь к plist-дескриптору текущего релиза.
	DescriptorPath string `yaml:"descriptor_path"`

	// RemoteDescriptorPath — путь к дескриптору внутри репозитория.
	RemoteDescriptorPath string `yaml:"remote_descriptor_path"`

	// CatalogPath — локальный путь к CSV-каталогу доступных релизов.
	CatalogPath string `yaml:"catalog_path"`

	// FlagsPath — путь к CSV c feature-флагами внутри репозитория.
	FlagsPath string `yaml:"flags_path"`

	// ReportPath — локальный путь для отчёта по feature-флагам.
	ReportPath string `yaml:"report_path"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		BaseBranch:           "master",
		DescriptorPath:       "release.plist",
		RemoteDescriptorPath: "release.plist",
		CatalogPath:          "releng/release_info.csv",
		FlagsPath:            "featureflags/FF.csv",
		ReportPath:           "out_flags.csv",
	}
}

// Load читает конфигурацию из path поверх значений по умолчанию.
//
// Пустой path означает DefaultPath; отсутствие файла по умолчанию
// не ошибка, отсутствие явно указанного файла — ошибка.
// Неизвестные поля в YAML отвергаются.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
