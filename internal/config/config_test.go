package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("default YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "hextide.yaml")

	// A partial file: everything not mentioned keeps its default.
	content := "island:\n  radius: 20\n  ports: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Island.Radius != 20 {
		t.Errorf("Island.Radius = %d, expected 20", cfg.Island.Radius)
	}
	if cfg.Island.Ports != 5 {
		t.Errorf("Island.Ports = %d, expected 5", cfg.Island.Ports)
	}
	if cfg.Island.SeaLevel != Default().Island.SeaLevel {
		t.Errorf("Island.SeaLevel = %v, expected default %v", cfg.Island.SeaLevel, Default().Island.SeaLevel)
	}
	if cfg.World.Orientation != "pointy" {
		t.Errorf("World.Orientation = %q, expected default \"pointy\"", cfg.World.Orientation)
	}
	if cfg.World.HexSize != 10.0 {
		t.Errorf("World.HexSize = %v, expected default 10.0", cfg.World.HexSize)
	}
	if cfg.Explorer.HexSpan != 4 {
		t.Errorf("Explorer.HexSpan = %d, expected default 4", cfg.Explorer.HexSpan)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("world: [not: a: mapping"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed explicit config should fail")
	}
}
