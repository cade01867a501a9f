package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/tasklist/internal/config"
)

func TestInit_CreatesConfig(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := Init(&out, dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, ConfigName))
	if err != nil {
		t.Fatalf("%s not created: %v", ConfigName, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", ConfigName)
	}
	if !strings.Contains(out.String(), "Initialized") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(&bytes.Buffer{}, dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, ConfigName))
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}
	if *cfg != *config.Default() {
		t.Fatalf("generated config = %+v, want defaults", cfg)
	}

	found, err := config.Find(dir)
	if err != nil {
		t.Fatal(err)
	}
	if found != filepath.Join(dir, ConfigName) {
		t.Fatalf("Find = %q", found)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigName)
	if err := os.WriteFile(path, []byte("data-file: mine.json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Init(&bytes.Buffer{}, dir)
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "data-file: mine.json\n" {
		t.Fatalf("existing config was modified: %q", data)
	}
}
