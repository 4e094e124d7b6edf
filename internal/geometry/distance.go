// Distance helpers for galactic coordinates (light years)
package geometry

import (
	"encoding/json"
	"math"
	"strconv"
)

// Point is a position in galactic coordinates.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Reference points used by the signal reports.
var (
	Sol    = Point{X: 0, Y: 0, Z: 0}
	Merope = Point{X: -78.59375, Y: -149.625, Z: -340.53125}
)

// Distance returns the Euclidean distance between a and b rounded to two decimals.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return round2(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// DistanceToSol returns the distance from p to Sol.
func DistanceToSol(p Point) float64 {
	return Distance(Sol, p)
}

// DistanceToMerope returns the distance from p to Merope.
func DistanceToMerope(p Point) float64 {
	return Distance(Merope, p)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PointFromValues builds a Point from loosely typed journal values.
// It reports false if any component is not numeric.
func PointFromValues(x, y, z any) (Point, bool) {
	fx, ok := toFloat(x)
	if !ok {
		return Point{}, false
	}
	fy, ok := toFloat(y)
	if !ok {
		return Point{}, false
	}
	fz, ok := toFloat(z)
	if !ok {
		return Point{}, false
	}
	return Point{X: fx, Y: fy, Z: fz}, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
