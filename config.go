package urock

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ReferenceWindConfig is the {z_ref, v_ref, wind_direction} input of §6.
type ReferenceWindConfig struct {
	ZRef         float64 `toml:"z_ref"`
	VRef         float64 `toml:"v_ref"`
	WindDirection float64 `toml:"wind_direction"`
}

// Config is the top-level TOML-decoded run descriptor, embedding the
// stage configs and reference wind, in the style of the teacher's own
// configuration surface (BurntSushi/toml is already in the teacher's
// go.mod for parts of its own configuration).
type Config struct {
	Geometry      GeometryConfig      `toml:"geometry"`
	Grid          GridConfig          `toml:"grid"`
	Solver        SolverConfig        `toml:"solver"`
	ReferenceWind ReferenceWindConfig `toml:"reference_wind"`

	BuildingsPath  string `toml:"buildings_path"`
	VegetationPath string `toml:"vegetation_path"`
}

// DefaultConfig returns a Config with every literal default named
// across §4.1 and §4.8/§7.
func DefaultConfig() Config {
	return Config{
		Geometry: DefaultGeometryConfig(),
		Solver:   DefaultSolverConfig(),
	}
}

// LoadConfig decodes a TOML file at path into a Config seeded with
// DefaultConfig, then validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if !fileExists(path) {
		return cfg, &ConfigError{Field: "config path", Reason: fmt.Sprintf("%s does not exist", path)}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("urock: reading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate performs the ConfigurationError checks of §7: non-positive
// mesh size, empty building set, and mesh/vertical-extent conflicts.
func (c *Config) Validate() error {
	if c.Grid.MeshSize <= 0 {
		return &ConfigError{Field: "grid.mesh_size", Reason: "must be positive"}
	}
	if c.Grid.DZ <= 0 {
		return &ConfigError{Field: "grid.dz", Reason: "must be positive"}
	}
	if c.Grid.VerticalExtend <= c.Grid.DZ {
		return &ConfigError{Field: "grid.vertical_extend", Reason: "must exceed dz"}
	}
	if c.BuildingsPath == "" && c.VegetationPath == "" {
		return &ConfigError{Field: "buildings_path", Reason: "at least one of buildings_path or vegetation_path must be set"}
	}
	if c.Solver.MaxIterations <= 0 {
		return &ConfigError{Field: "solver.max_iterations", Reason: "must be positive"}
	}
	if c.Solver.Threshold <= 0 {
		return &ConfigError{Field: "solver.threshold", Reason: "must be positive"}
	}
	return nil
}

// fileExists reports whether path names a regular file, used by the
// CLI to give a clearer ConfigurationError than a bare decode failure.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
