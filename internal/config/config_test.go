package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releng.yaml")
	content := `repository: acme/app
base_branch: main
catalog_path: data/releases.csv
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Repository != "acme/app" {
		t.Errorf("repository = %q, want acme/app", cfg.Repository)
	}
	if cfg.BaseBranch != "main" {
		t.Errorf("base_branch = %q, want main", cfg.BaseBranch)
	}
	if cfg.CatalogPath != "data/releases.csv" {
		t.Errorf("catalog_path = %q", cfg.CatalogPath)
	}
	// незаданные поля сохраняют значения по умолчанию
	if cfg.DescriptorPath != "release.plist" {
		t.Errorf("descriptor_path = %q, want default", cfg.DescriptorPath)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoad_DefaultFileMissing(t *testing.T) {
	// без явного пути отсутствие releng.yaml не ошибка
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseBranch != "master" {
		t.Errorf("base_branch = %q, want master", cfg.BaseBranch)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releng.yaml")
	if err := os.WriteFile(path, []byte("repositry: typo/field\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}
