package urock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidateRejectsNonPositiveMesh(t *testing.T) {
	c := DefaultConfig()
	c.Grid = GridConfig{MeshSize: 0, DZ: 2, VerticalExtend: 20}
	c.BuildingsPath = "buildings.csv"
	if err := c.Validate(); err == nil {
		t.Fatal("expected a ConfigError for a non-positive mesh size")
	}
}

func TestConfigValidateRejectsMissingPaths(t *testing.T) {
	c := DefaultConfig()
	c.Grid = GridConfig{MeshSize: 2, DZ: 2, VerticalExtend: 20}
	if err := c.Validate(); err == nil {
		t.Fatal("expected a ConfigError when neither buildings_path nor vegetation_path is set")
	}
}

func TestConfigValidateAcceptsWellFormed(t *testing.T) {
	c := DefaultConfig()
	c.Grid = GridConfig{MeshSize: 2, DZ: 2, VerticalExtend: 20}
	c.BuildingsPath = "buildings.csv"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadConfigDecodesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "urock.toml")
	contents := `
buildings_path = "buildings.csv"

[grid]
mesh_size = 2.0
dz = 2.0
vertical_extend = 40.0

[reference_wind]
z_ref = 10.0
v_ref = 3.0
wind_direction = 270.0
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ReferenceWind.VRef != 3.0 {
		t.Errorf("v_ref = %v, want 3.0", cfg.ReferenceWind.VRef)
	}
	if cfg.Grid.MeshSize != 2.0 {
		t.Errorf("mesh_size = %v, want 2.0", cfg.Grid.MeshSize)
	}
}
