package system

import (
	"textrogue/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Permeability is the set of tile kinds a query may cross.
type Permeability = mapset.Set[gamemap.TileKind]

// Exclusions is a set of cells treated as impassable for a single query,
// typically the cells occupied by other actors.
type Exclusions = mapset.Set[gamemap.Point]

// Passable is the set of kinds actors may stand on.
var Passable = Kinds(
	gamemap.TileDoor,
	gamemap.TileCorridor,
	gamemap.TileRoom,
	gamemap.TileStairsUp,
	gamemap.TileStairsDown,
)

// NoExclusions is an empty exclusion set.
var NoExclusions = Cells()

// Kinds builds a Permeability from the listed tile kinds.
func Kinds(kinds ...gamemap.TileKind) Permeability {
	s := mapset.New[gamemap.TileKind]()
	for _, k := range kinds {
		s.Put(k)
	}
	return s
}

// Cells builds an Exclusions set from the listed points.
func Cells(pts ...gamemap.Point) Exclusions {
	s := mapset.New[gamemap.Point]()
	for _, p := range pts {
		s.Put(p)
	}
	return s
}

// Generation values with special meaning in a DistanceField.
const (
	Impassable = -1 // tile not permeable, or excluded
	Unreached  = 0  // permeable but not connected to the target
	TargetGen  = 1  // the target cell itself
)

// DistanceField maps every cell to its flood-fill generation from a target:
// TargetGen at the target, n at n-1 steps away, Unreached or Impassable
// otherwise. A field is valid for any number of path extractions toward the
// same target on an unchanged map.
type DistanceField struct {
	Width, Height int
	Target        gamemap.Point
	gen           []int
}

// At returns the generation at (x, y), Impassable outside the field.
func (f *DistanceField) At(x, y int) int {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Impassable
	}
	return f.gen[y*f.Width+x]
}

// Reached reports whether (x, y) is connected to the target.
func (f *DistanceField) Reached(x, y int) bool {
	return f.At(x, y) >= TargetGen
}

// BuildDistanceField floods outward from target across 4-connected cells
// whose kind is in allowed and which are not excluded.
//
// The flood is a queue-based breadth-first traversal that expands
// neighbours in North, East, South, West order. Generation numbers equal
// those of a generation-by-generation full-grid rescan.
func BuildDistanceField(gmap *gamemap.GameMap, allowed Permeability, target gamemap.Point, exclude Exclusions) *DistanceField {
	f := &DistanceField{
		Width:  gmap.Width,
		Height: gmap.Height,
		Target: target,
		gen:    make([]int, gmap.Width*gmap.Height),
	}
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if !allowed.Has(gmap.Get(x, y)) || exclude.Has(gamemap.Point{X: x, Y: y}) {
				f.gen[y*f.Width+x] = Impassable
			}
		}
	}
	if !gmap.InBounds(target.X, target.Y) {
		return f
	}
	f.gen[target.Y*f.Width+target.X] = TargetGen

	queue := []gamemap.Point{target}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		g := f.gen[cur.Y*f.Width+cur.X]
		for _, d := range gamemap.Dirs {
			n := cur.Add(d)
			if !gmap.InBounds(n.X, n.Y) {
				continue
			}
			i := n.Y*f.Width + n.X
			if f.gen[i] != Unreached {
				continue
			}
			f.gen[i] = g + 1
			queue = append(queue, n)
		}
	}
	return f
}

// PathFrom walks the field from src down to the target, stepping to the
// first neighbour (North, East, South, West) whose generation is exactly one
// less. The returned cells exclude src and end at the target. It is empty
// when src is not connected to the target or src is the target.
func (f *DistanceField) PathFrom(src gamemap.Point) []gamemap.Point {
	if !f.Reached(src.X, src.Y) {
		return nil
	}
	var path []gamemap.Point
	cur := src
	for cur != f.Target {
		g := f.At(cur.X, cur.Y)
		next := cur
		for _, d := range gamemap.Dirs {
			n := cur.Add(d)
			if f.At(n.X, n.Y) == g-1 {
				next = n
				break
			}
		}
		if next == cur {
			return nil
		}
		cur = next
		path = append(path, cur)
	}
	return path
}

// FindPath returns the shortest 4-connected route from src to dst over
// cells whose kind is in allowed and which are not excluded. The result
// excludes src and ends at dst; it is empty when either endpoint is not
// permeable or no route exists.
func FindPath(gmap *gamemap.GameMap, allowed Permeability, src, dst gamemap.Point, exclude Exclusions) []gamemap.Point {
	if !allowed.Has(gmap.At(src)) || !allowed.Has(gmap.At(dst)) {
		return nil
	}
	return BuildDistanceField(gmap, allowed, dst, exclude).PathFrom(src)
}
