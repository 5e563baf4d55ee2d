package schemascope_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	schemascope "github.com/tyltnine/schemascope"
)

func TestFindConfig_WalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")

	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(root, ".schemascope.yaml")
	if err := os.WriteFile(cfgPath, []byte("dataset: custom.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := schemascope.FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}

	if found != cfgPath {
		t.Errorf("got %q, want %q", found, cfgPath)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	config := `
dataset: schemas/prod.yaml
layout:
  columns: 6
  row_height: 200
serve:
  addr: ":9000"
`

	if err := os.WriteFile(filepath.Join(dir, ".schemascope.yaml"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, baseDir, err := schemascope.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if baseDir != dir {
		t.Errorf("baseDir = %q, want %q", baseDir, dir)
	}

	if cfg.Dataset != "schemas/prod.yaml" {
		t.Errorf("Dataset = %q", cfg.Dataset)
	}

	if cfg.Layout.Columns != 6 || cfg.Layout.RowHeight != 200 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}

	if cfg.Serve.Addr != ":9000" {
		t.Errorf("Serve.Addr = %q", cfg.Serve.Addr)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	// An empty temp dir has no config anywhere up to the filesystem root,
	// unless the environment plants one; tolerate only the sentinel error.
	_, _, err := schemascope.LoadConfig(t.TempDir())
	if err != nil && !errors.Is(err, schemascope.ErrConfigNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
}
