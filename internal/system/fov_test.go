package system

import (
	"testing"

	"textrogue/internal/gamemap"

	"github.com/stretchr/testify/assert"
)

// openMap creates a w×h map that is entirely room floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gmap.Set(x, y, gamemap.TileRoom)
		}
	}
	return gmap
}

func TestSeesSelf(t *testing.T) {
	gmap := gamemap.New(5, 5) // solid rock
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.True(t, Sees(gmap, DefaultSightRadius, x, y, x, y))
		}
	}
}

func TestSeesRadiusCutoff(t *testing.T) {
	gmap := openMap(20, 20)
	assert.True(t, Sees(gmap, 5, 10, 10, 15, 10), "distance² 25 is inside")
	assert.True(t, Sees(gmap, 5, 10, 10, 13, 14), "distance² 25 is inside")
	assert.False(t, Sees(gmap, 5, 10, 10, 16, 10))
	assert.False(t, Sees(gmap, 5, 10, 10, 14, 14), "distance² 32 is outside")
	assert.False(t, Sees(gmap, 5, 10, 10, 11, 15), "distance² 26 is outside")
}

func TestSeesBlockedByOpaqueTiles(t *testing.T) {
	for _, blocker := range []gamemap.TileKind{gamemap.TileWall, gamemap.TileRock, gamemap.TileDoor} {
		gmap := openMap(10, 3)
		gmap.Set(4, 1, blocker)
		assert.Falsef(t, Sees(gmap, 5, 2, 1, 6, 1), "%c should block sight", blocker.Char())
		assert.Truef(t, Sees(gmap, 5, 2, 1, 4, 1), "the %c itself is visible", blocker.Char())
	}
}

func TestSeesThroughCorridorAndStairs(t *testing.T) {
	gmap := gamemap.Parse(".-<>-.")
	assert.True(t, Sees(gmap, 5, 0, 0, 5, 0))
}

func TestSeesDiagonalSampling(t *testing.T) {
	// (0,0)->(2,1): samples (1,1) then (2,1); rounding half-up puts the
	// midpoint (1,0.5) on row 1.
	gmap := gamemap.Parse(
		"...",
		"...",
	)
	gmap.Set(1, 1, gamemap.TileWall)
	assert.False(t, Sees(gmap, 5, 0, 0, 2, 1))
	gmap.Set(1, 1, gamemap.TileRoom)
	gmap.Set(1, 0, gamemap.TileWall)
	assert.True(t, Sees(gmap, 5, 0, 0, 2, 1))
}

func TestSeesOutOfBoundsTarget(t *testing.T) {
	gmap := openMap(5, 5)
	assert.False(t, Sees(gmap, 5, 4, 4, 5, 4))
}

func TestSeesIsSymmetric(t *testing.T) {
	gmap := gamemap.Parse(
		"...........",
		"..#....+...",
		"....-.#....",
		".#.........",
		"......#..#.",
		"...+.......",
		".....#.....",
	)
	for y1 := 0; y1 < gmap.Height; y1++ {
		for x1 := 0; x1 < gmap.Width; x1++ {
			for y2 := 0; y2 < gmap.Height; y2++ {
				for x2 := 0; x2 < gmap.Width; x2++ {
					a := Sees(gmap, 5, x1, y1, x2, y2)
					b := Sees(gmap, 5, x2, y2, x1, y1)
					if a != b {
						t.Fatalf("Sees(%d,%d -> %d,%d)=%v but reverse=%v", x1, y1, x2, y2, a, b)
					}
				}
			}
		}
	}
}

func TestComputeFOVMatchesSees(t *testing.T) {
	gmap := gamemap.Parse(
		"          ",
		" ........ ",
		" ..#..... ",
		" .....+.. ",
		" ........ ",
		"          ",
	)
	fov := ComputeFOV(gmap, 5, 4, 3)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			assert.Equalf(t, Sees(gmap, 5, 4, 3, x, y), fov.Get(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.True(t, fov.Get(4, 3), "origin is visible")
	assert.True(t, fov.Get(6, 3), "the door is visible")
	assert.False(t, fov.Get(7, 3), "cells behind the door are hidden")
	assert.False(t, fov.Get(2, 1), "cells behind the pillar are hidden")
}
