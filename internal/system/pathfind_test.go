package system

import (
	"testing"

	"textrogue/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replay applies each step of path from src and checks it is a unit move
// onto an allowed tile. It returns the final cell.
func replay(t *testing.T, gmap *gamemap.GameMap, allowed Permeability, src gamemap.Point, path []gamemap.Point) gamemap.Point {
	t.Helper()
	cur := src
	for i, p := range path {
		_, ok := gamemap.DirectionOf(gamemap.Point{X: p.X - cur.X, Y: p.Y - cur.Y})
		require.Truef(t, ok, "step %d from %v to %v is not a unit move", i, cur, p)
		require.Truef(t, allowed.Has(gmap.At(p)), "step %d lands on %c", i, gmap.At(p).Char())
		cur = p
	}
	return cur
}

func TestDistanceFieldGenerations(t *testing.T) {
	gmap := gamemap.Parse(
		".....",
		".###.",
		".....",
	)
	f := BuildDistanceField(gmap, Passable, gamemap.Point{X: 0, Y: 0}, NoExclusions)

	assert.Equal(t, TargetGen, f.At(0, 0))
	assert.Equal(t, 2, f.At(1, 0))
	assert.Equal(t, 5, f.At(4, 0))
	assert.Equal(t, 3, f.At(0, 2))
	assert.Equal(t, 7, f.At(4, 2), "around either side of the wall is 6 steps")
	assert.Equal(t, Impassable, f.At(2, 1))
	assert.Equal(t, Impassable, f.At(-1, 0))
}

func TestDistanceFieldUnreachedRegion(t *testing.T) {
	gmap := gamemap.Parse(
		"..#..",
		"..#..",
	)
	f := BuildDistanceField(gmap, Passable, gamemap.Point{X: 0, Y: 0}, NoExclusions)
	assert.Equal(t, Unreached, f.At(4, 1))
	assert.False(t, f.Reached(3, 0))
	assert.True(t, f.Reached(1, 1))
}

func TestFindPathReachesDestination(t *testing.T) {
	gmap := gamemap.Parse(
		"..........",
		".########.",
		".#......#.",
		".#.####.#.",
		"...#..+.#.",
		"####..#...",
	)
	cases := []struct {
		name     string
		src, dst gamemap.Point
	}{
		{"around the outside", gamemap.Point{X: 0, Y: 4}, gamemap.Point{X: 9, Y: 5}},
		{"into the spiral", gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 4, Y: 4}},
		{"adjacent", gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 1, Y: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := FindPath(gmap, Passable, tc.src, tc.dst, NoExclusions)
			require.NotEmpty(t, path)
			assert.Equal(t, tc.dst, replay(t, gmap, Passable, tc.src, path))

			f := BuildDistanceField(gmap, Passable, tc.dst, NoExclusions)
			assert.Len(t, path, f.At(tc.src.X, tc.src.Y)-1, "path must be shortest")
		})
	}
}

func TestFindPathSameCellIsEmpty(t *testing.T) {
	gmap := gamemap.Parse("...")
	p := gamemap.Point{X: 1, Y: 0}
	assert.Empty(t, FindPath(gmap, Passable, p, p, NoExclusions))
}

func TestFindPathDisjointRegions(t *testing.T) {
	gmap := gamemap.Parse(
		"...#...",
		"...#...",
	)
	path := FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 6, Y: 1}, NoExclusions)
	assert.Empty(t, path)
}

func TestFindPathImpermeableEndpoints(t *testing.T) {
	gmap := gamemap.Parse("..#..")
	assert.Empty(t, FindPath(gmap, Passable, gamemap.Point{X: 2, Y: 0}, gamemap.Point{X: 0, Y: 0}, NoExclusions))
	assert.Empty(t, FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 2, Y: 0}, NoExclusions))
}

func TestFindPathTieBreakNorthEastSouthWest(t *testing.T) {
	// From (1,1) to (0,0) on an open grid, North and West both reach
	// generation-1 neighbours; North wins. From (0,1) to (1,0), North beats East.
	gmap := gamemap.Parse(
		"...",
		"...",
		"...",
	)
	path := FindPath(gmap, Passable, gamemap.Point{X: 1, Y: 1}, gamemap.Point{X: 0, Y: 0}, NoExclusions)
	assert.Equal(t, []gamemap.Point{{X: 1, Y: 0}, {X: 0, Y: 0}}, path)

	path = FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 2}, gamemap.Point{X: 2, Y: 0}, NoExclusions)
	assert.Equal(t, []gamemap.Point{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, path)

	// East before South.
	path = FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 2, Y: 2}, NoExclusions)
	assert.Equal(t, []gamemap.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, path)
}

func TestFindPathRespectsExclusions(t *testing.T) {
	gmap := gamemap.Parse(
		".....",
		".....",
	)
	blocked := Cells(gamemap.Point{X: 2, Y: 0})
	path := FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 4, Y: 0}, blocked)
	require.NotEmpty(t, path)
	for _, p := range path {
		assert.NotEqual(t, gamemap.Point{X: 2, Y: 0}, p)
	}
	assert.Len(t, path, 6)

	// The shared grid is untouched by exclusions.
	assert.Equal(t, gamemap.TileRoom, gmap.Get(2, 0))

	wall := Cells(gamemap.Point{X: 2, Y: 0}, gamemap.Point{X: 2, Y: 1})
	assert.Empty(t, FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 4, Y: 0}, wall))
}

func TestDistanceFieldReusableForManySources(t *testing.T) {
	gmap := gamemap.Parse(
		"......",
		".####.",
		"......",
	)
	target := gamemap.Point{X: 5, Y: 2}
	f := BuildDistanceField(gmap, Passable, target, NoExclusions)
	for _, src := range []gamemap.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 5, Y: 0}, {X: 3, Y: 0}} {
		path := f.PathFrom(src)
		require.NotEmpty(t, path)
		assert.Equal(t, target, replay(t, gmap, Passable, src, path))
	}
}

func TestFindPathPermissiveSetCrossesRock(t *testing.T) {
	gmap := gamemap.Parse(
		".  .",
		"####",
	)
	allowed := Kinds(gamemap.TileRoom, gamemap.TileRock)
	path := FindPath(gmap, allowed, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 3, Y: 0}, NoExclusions)
	assert.Len(t, path, 3)
	assert.Empty(t, FindPath(gmap, Passable, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 3, Y: 0}, NoExclusions))
}
