package urockcli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/urock"
)

// readObstacles reads a minimal CSV encoding of building footprints:
// id,base,height,x1,y1,x2,y2,... (a single closed ring per row). This
// is the thin file-reading adapter named in §6 — geospatial vector
// format support itself (shapefile, GeoJSON) is explicitly out of
// scope for the core and is not reproduced here either.
func readObstacles(path string) ([]urock.Obstacle, error) {
	if path == "" {
		return nil, nil
	}
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	obstacles := make([]urock.Obstacle, 0, len(rows))
	for _, row := range rows {
		if len(row) < 9 {
			return nil, fmt.Errorf("row for %q has too few fields for a closed ring", row[0])
		}
		base, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		height, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		ring, err := parseRing(row[3:])
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, urock.Obstacle{
			ID: row[0], Base: base, Height: height, Polygon: geom.Polygon{ring},
		})
	}
	return obstacles, nil
}

// readVegetation reads a minimal CSV encoding of vegetation patches:
// id,crown_base,crown_top,attenuation,x1,y1,x2,y2,...
func readVegetation(path string) ([]urock.Vegetation, error) {
	if path == "" {
		return nil, nil
	}
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	vegetation := make([]urock.Vegetation, 0, len(rows))
	for _, row := range rows {
		if len(row) < 10 {
			return nil, fmt.Errorf("row for %q has too few fields for a closed ring", row[0])
		}
		crownBase, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		crownTop, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		attenuation, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, err
		}
		ring, err := parseRing(row[4:])
		if err != nil {
			return nil, err
		}
		vegetation = append(vegetation, urock.Vegetation{
			ID: row[0], CrownBase: crownBase, CrownTop: crownTop, Attenuation: attenuation,
			Polygon: geom.Polygon{ring},
		})
	}
	return vegetation, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func parseRing(coords []string) ([]geom.Point, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinate fields")
	}
	ring := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		x, err := strconv.ParseFloat(coords[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(coords[i+1], 64)
		if err != nil {
			return nil, err
		}
		ring = append(ring, geom.Point{X: x, Y: y})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring, nil
}
