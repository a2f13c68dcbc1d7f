package system

import "textrogue/internal/gamemap"

// DefaultSightRadius is the hard visibility cutoff in cells.
const DefaultSightRadius = 5

// Sees reports whether (x2, y2) is visible from (x1, y1).
//
// A cell always sees itself. Beyond radius (by squared Euclidean distance)
// nothing is visible. Otherwise the segment is sampled in max(|dx|,|dy|)
// steps, each coordinate rounded half-up; the first sample that leaves the
// map or lands on an opaque tile short of the target hides it.
//
// Rounding is done in integer arithmetic. Because floor(v+0.5) depends only
// on the absolute sample position, both directions sample the same cells and
// the relation is symmetric for in-bounds endpoints.
func Sees(gmap *gamemap.GameMap, radius, x1, y1, x2, y2 int) bool {
	if x1 == x2 && y1 == y2 {
		return true
	}
	dx, dy := x2-x1, y2-y1
	if dx*dx+dy*dy > radius*radius {
		return false
	}
	steps := max(abs(dx), abs(dy))
	for i := 1; i <= steps; i++ {
		x := x1 + roundDiv(dx*i, steps)
		y := y1 + roundDiv(dy*i, steps)
		if x == x1 && y == y1 {
			continue
		}
		if !gmap.InBounds(x, y) {
			return false
		}
		if x == x2 && y == y2 {
			return true
		}
		if gmap.Get(x, y).Opaque() {
			return false
		}
	}
	return false
}

// ComputeFOV applies Sees from (x, y) to every cell of the map.
func ComputeFOV(gmap *gamemap.GameMap, radius, x, y int) *gamemap.Mask {
	fov := gamemap.NewMask(gmap.Width, gmap.Height)
	// Only cells within the radius box can pass the distance cutoff.
	for ty := max(0, y-radius); ty <= min(gmap.Height-1, y+radius); ty++ {
		for tx := max(0, x-radius); tx <= min(gmap.Width-1, x+radius); tx++ {
			if Sees(gmap, radius, x, y, tx, ty) {
				fov.Set(tx, ty, true)
			}
		}
	}
	return fov
}

// roundDiv returns floor(n/d + 1/2) for d > 0.
func roundDiv(n, d int) int {
	return floorDiv(2*n+d, 2*d)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
