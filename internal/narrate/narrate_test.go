package narrate

import (
	"testing"

	"textrogue/internal/gamemap"
	"textrogue/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int) gamemap.Point { return gamemap.Point{X: x, Y: y} }

func TestWhere(t *testing.T) {
	cases := []struct {
		to   gamemap.Point
		want string
	}{
		{pt(5, 5), "here"},
		{pt(8, 4), "at 3 E 1 N"},
		{pt(5, 9), "at 4 S"},
		{pt(2, 5), "at 3 W"},
		{pt(4, 6), "at 1 W 1 S"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Where(pt(5, 5), tc.to))
	}
}

func TestListPrefixes(t *testing.T) {
	l := NewList("There is", "And")
	assert.Empty(t, l.Lines())
	l.Add("a door here")
	l.Addf("the exit %s", "at 2 E")
	l.Add("a Goblin at 1 N")
	assert.Equal(t, []string{
		"There is a door here",
		"And the exit at 2 E",
		"And a Goblin at 1 N",
	}, l.Lines())
	assert.Equal(t, 3, l.Len())
}

func TestDoorwayCorridorNorthRoomSouth(t *testing.T) {
	gmap := gamemap.Parse(
		"   -    ",
		"   +    ",
		" ....   ",
		" ....   ",
		" ....   ",
		"        ",
	)
	lines := Position(gmap, system.DefaultSightRadius, pt(3, 1))
	assert.Equal(t, []string{
		"You are in a doorway",
		"There is a corridor north",
		"And a 4x3 room south",
	}, lines)
}

func TestDoorwaySkipsEdgesAndDoors(t *testing.T) {
	gmap := gamemap.Parse(
		"++.",
		"   ",
	)
	assert.Equal(t, []string{
		"You are in a doorway",
		"There is a 1x1 room east",
	}, Position(gmap, system.DefaultSightRadius, pt(1, 0)))
}

func TestRoomSize(t *testing.T) {
	gmap := gamemap.Parse(
		"         ",
		" ....>.. ",
		" ....... ",
		" +...... ",
		"         ",
	)
	assert.Equal(t, gamemap.Rect{X1: 1, Y1: 1, X2: 7, Y2: 3}, RoomSize(gmap, pt(3, 2)))
	// the scan runs along the observer's own row and column only
	assert.Equal(t, gamemap.Rect{X1: 2, Y1: 1, X2: 7, Y2: 3}, RoomSize(gmap, pt(3, 3)))
	assert.Equal(t, []string{"You are in a 7x3 room at 2 1"}, Position(gmap, 5, pt(3, 2)))
}

func TestRoomSizeStopsAtMapEdge(t *testing.T) {
	gmap := gamemap.Parse("...", "...")
	assert.Equal(t, gamemap.Rect{X1: 0, Y1: 0, X2: 2, Y2: 1}, RoomSize(gmap, pt(1, 1)))
}

func TestCorridorStraightDeadEnds(t *testing.T) {
	gmap := gamemap.Parse(
		"         ",
		" ------- ",
		"         ",
	)
	assert.Equal(t, []string{
		"You are in a E W corridor",
		"With a dead end at 3 E",
		"And a dead end at 3 W",
	}, Position(gmap, system.DefaultSightRadius, pt(4, 1)))
}

func TestCorridorTurn(t *testing.T) {
	gmap := gamemap.Parse(
		"       ",
		" ----  ",
		"    -  ",
		"    -  ",
		"       ",
	)
	assert.Equal(t, []string{
		"You are in a E corridor",
		"With a S turn at 3 E",
	}, Position(gmap, system.DefaultSightRadius, pt(1, 1)))
}

func TestCorridorFork(t *testing.T) {
	gmap := gamemap.Parse(
		"       ",
		" ----- ",
		"   -   ",
		"   -   ",
		"       ",
	)
	assert.Equal(t, []string{
		"You are in a N corridor",
		"With a E W fork at 2 N",
	}, Position(gmap, system.DefaultSightRadius, pt(3, 3)))
}

func TestCorridorIntoDoorIsNotDeadEnd(t *testing.T) {
	gmap := gamemap.Parse(
		"       ",
		" ---+. ",
		"       ",
	)
	assert.Equal(t, []string{"You are in a E corridor"},
		Position(gmap, system.DefaultSightRadius, pt(1, 1)))
}

func TestCorridorBeyondSightIsNotReported(t *testing.T) {
	gmap := gamemap.Parse(
		"               ",
		" ------------- ",
		"               ",
	)
	assert.Equal(t, []string{"You are in a E corridor"},
		Position(gmap, system.DefaultSightRadius, pt(1, 1)))
}

func TestIsolatedCorridorCell(t *testing.T) {
	gmap := gamemap.Parse("   ", " - ", "   ")
	assert.Equal(t, []string{"You are in a corridor"}, Position(gmap, 5, pt(1, 1)))
}

func TestDescribe(t *testing.T) {
	gmap := gamemap.Parse(
		"         ",
		" ....>.. ",
		" ....... ",
		" +...... ",
		"         ",
	)
	scene := Scene{
		Map:    gmap,
		Radius: system.DefaultSightRadius,
		At:     pt(3, 2),
		Status: &Status{HP: 7, MaxHP: 10, MP: 0, MaxMP: 0},
		Actors: []Sighting{
			{Name: "Goblin", At: pt(6, 2)},
			{Name: "Goblin", At: pt(2, 1), Dead: true},
			{Name: "Goblin", At: pt(60, 2)},
		},
	}
	assert.Equal(t, []string{
		"",
		"HP 7/10 MP 0/0",
		"You are in a 7x3 room at 2 1",
		"There is the exit at 2 E 1 N",
		"And a door at 2 W 1 S",
		"There is a Goblin at 3 E",
		"And a dead Goblin at 1 W 1 N",
	}, Describe(scene))

	scene.Status = nil
	lines := Describe(scene)
	require.NotEmpty(t, lines)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "You are in a 7x3 room at 2 1", lines[1])
}

func TestLandmarksOnlyInView(t *testing.T) {
	gmap := gamemap.Parse(
		"     ",
		" .<. ",
		"  #  ",
		" .>. ",
		"     ",
	)
	fov := system.ComputeFOV(gmap, system.DefaultSightRadius, 2, 1)
	assert.Equal(t, []string{"There is the entrance here"}, Landmarks(gmap, fov, pt(2, 1)))
}
