package urock

import (
	"context"
	"runtime"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// WindDirection is one reference-wind scenario to run the pipeline
// against. Each direction reruns the whole pipeline, geometry
// preparation included; a batch run shares only the rotation center.
type WindDirection struct {
	DirectionDeg float64
	ZRef, VRef   float64
}

// Model assembles the eight pipeline stages behind a single entry
// point, the idiom of the teacher's InMAP struct and its Run/Init
// split.
type Model struct {
	Obstacles  []Obstacle
	Vegetation []Vegetation

	Geometry GeometryConfig
	Grid     GridConfig
	Solver   SolverConfig
	// ProfileKind selects the ambient vertical wind profile evaluated
	// outside zones of influence, per §4.7. Defaults to ProfileUrban.
	ProfileKind ProfileKind

	Log *logrus.Logger
}

// NewModel returns a Model with the literal defaults named across
// §4.1-§4.8.
func NewModel(obstacles []Obstacle, vegetation []Vegetation) *Model {
	return &Model{
		Obstacles:  obstacles,
		Vegetation: vegetation,
		Geometry:   DefaultGeometryConfig(),
		Solver:     DefaultSolverConfig(),
		ProfileKind: ProfileUrban,
		Log:        newLogger(),
	}
}

// Result is the outcome of a single Model.Run: the solved field plus
// the run's convergence status. Field and Grid are in the rotated frame
// (wind along -Y) and are not rotated back to geographic axes;
// RotationAngle records the rotation that was applied.
type Result struct {
	Direction WindDirection
	Field     *Field
	Grid      *Grid
	Solve     SolveResult
	Profile   *Profile
	RotationAngle float64
	RotationCenter geom.Point
}

// Run executes the full pipeline for a single wind direction: geometry
// preparation, facade extraction, zone construction, grid assignment,
// 3D wind-factor evaluation, superimposition, initial profile, and the
// SOR solve, in the order named by §2.
func (m *Model) Run(ctx context.Context, dir WindDirection) (*Result, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	log := m.Log.WithField("direction_deg", dir.DirectionDeg)
	concurrency := m.Solver.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	angle, obstacles, vegetation := RotateScene(m.Obstacles, m.Vegetation, dir.DirectionDeg, m.Geometry)
	center := geom.Point{}
	if m.Geometry.RotationCenter != nil {
		center = *m.Geometry.RotationCenter
	}
	log.WithField("rotation_rad", angle).Info("geometry prepared")

	blocks := BuildStackedBlocks(obstacles, m.Geometry)
	facades := ExtractUpwindFacades(blocks)
	log.WithFields(logrus.Fields{"blocks": len(blocks), "facades": len(facades)}).Info("stacked blocks and facades built")

	lengths := make(map[string]ZoneLengths, len(blocks))
	for _, b := range blocks {
		eg := EffectiveGeometryOf(b.Polygon)
		lengths[b.ID] = ZoneLengthsOf(eg, b.Height)
	}

	var zones []Zone
	var warnings []error
	dz, dw := BuildDisplacementZones(facades, lengths, m.Grid.MeshSize)
	zones = append(zones, dz...)
	warnings = append(warnings, dw...)
	cz, cw := BuildCavityAndWakeZones(blocks, lengths)
	zones = append(zones, cz...)
	warnings = append(warnings, cw...)
	zones = append(zones, BuildStreetCanyonZones(facades, filterZones(zones, ZoneCavity))...)
	zones = append(zones, BuildRooftopZones(facades, lengths)...)

	for _, w := range warnings {
		log.Warn(w.Error())
	}
	log.WithField("zones", len(zones)).Info("zones constructed")

	vegZones := BuildVegetationZones(vegetation, filterZones(zones, ZoneWake))

	grid := NewGrid(zones, blocks, m.Grid)
	zcps := AssignPointsToZones(grid, zones)
	log.WithFields(logrus.Fields{"nx": grid.NX, "ny": grid.NY, "nz": grid.NZ, "zone_points": len(zcps)}).Info("grid built")

	h, lambdaF := meanHeightAndDensity(blocks)
	rough := DeriveRoughness(lambdaF, h)
	profile := &Profile{
		Kind: m.ProfileKind, ZRef: dir.ZRef, VRef: dir.VRef,
		Z0: rough.Z0.Value(), D: rough.D.Value(), H: h, LambdaF: lambdaF,
	}

	field := NewField(grid.NX, grid.NY, grid.NZ, m.Grid.MeshSize, m.Grid.MeshSize, m.Grid.DZ, grid.Solid)
	populateFirstGuess(field, grid, profile, zcps, vegZones, rough, dir.ZRef, concurrency)

	solveResult := Solve(ctx, field, m.Solver, log)
	log.WithFields(logrus.Fields{"status": solveResult.Status, "iterations": solveResult.Iterations, "residual": solveResult.Residual}).Info("solve complete")

	return &Result{
		Direction: dir, Field: field, Grid: grid, Solve: solveResult, Profile: profile,
		RotationAngle: angle, RotationCenter: center,
	}, nil
}

// RunDirections runs the pipeline once per wind direction, reusing the
// same rotation center across the batch per §2's supplemented batch
// operation.
func (m *Model) RunDirections(ctx context.Context, dirs []WindDirection) ([]*Result, error) {
	if len(dirs) == 0 {
		return nil, &ConfigError{Field: "directions", Reason: "must be non-empty"}
	}
	if m.Geometry.RotationCenter == nil {
		env := geom.NewBounds()
		for _, o := range m.Obstacles {
			env.Extend(o.Polygon.Bounds())
		}
		for _, v := range m.Vegetation {
			env.Extend(v.Polygon.Bounds())
		}
		c := geom.Point{X: env.Max.X, Y: env.Max.Y}
		m.Geometry.RotationCenter = &c
	}

	results := make([]*Result, 0, len(dirs))
	for _, d := range dirs {
		r, err := m.Run(ctx, d)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (m *Model) validate() error {
	if m.Grid.MeshSize <= 0 {
		return &ConfigError{Field: "Grid.MeshSize", Reason: "must be positive"}
	}
	if m.Grid.DZ <= 0 {
		return &ConfigError{Field: "Grid.DZ", Reason: "must be positive"}
	}
	if len(m.Obstacles) == 0 && len(m.Vegetation) == 0 {
		return &ConfigError{Field: "Obstacles", Reason: "building set and vegetation set are both empty"}
	}
	if m.Grid.VerticalExtend <= m.Grid.DZ {
		return &ConfigError{Field: "Grid.VerticalExtend", Reason: "must exceed DZ"}
	}
	return nil
}

func filterZones(zones []Zone, kind ZoneKind) []Zone {
	var out []Zone
	for _, z := range zones {
		if z.Kind == kind {
			out = append(out, z)
		}
	}
	return out
}

func meanHeightAndDensity(blocks []StackedBlock) (h, lambdaF float64) {
	if len(blocks) == 0 {
		return 10, 0.1
	}
	var sumH, sumArea, sumFrontal float64
	for _, b := range blocks {
		sumH += b.Height
		sumArea += b.Polygon.Area()
		eg := EffectiveGeometryOf(b.Polygon)
		sumFrontal += eg.Width * b.Height
	}
	h = sumH / float64(len(blocks))
	if sumArea > 0 {
		lambdaF = sumFrontal / sumArea
	}
	return h, lambdaF
}
