package assets

import (
	"strings"
	"testing"

	"textrogue/internal/gamemap"
)

func TestPrefabsAreRectangular(t *testing.T) {
	for i, pf := range Prefabs {
		w := pf.Width()
		for y, row := range pf.Rows {
			if len(row) != w {
				t.Errorf("prefab %d row %d: width %d, want %d", i, y, len(row), w)
			}
		}
	}
}

func TestPrefabConnectorsArePassable(t *testing.T) {
	for i, pf := range Prefabs {
		if pf.ConnX < 0 || pf.ConnX >= pf.Width() || pf.ConnY < 0 || pf.ConnY >= pf.Height() {
			t.Fatalf("prefab %d connector (%d,%d) outside template", i, pf.ConnX, pf.ConnY)
		}
		k := gamemap.KindForChar(pf.Rows[pf.ConnY][pf.ConnX])
		if k != gamemap.TileRoom && k != gamemap.TileCorridor {
			t.Errorf("prefab %d connector on %q", i, k.Char())
		}
	}
}

func TestPrefabsFitCoarseCell(t *testing.T) {
	// A 50x30 map on a 4x4 grid gives 12x7 cells.
	for i, pf := range Prefabs {
		if pf.Width() > 12 || pf.Height() > 7 {
			t.Errorf("prefab %d is %dx%d, larger than a cell", i, pf.Width(), pf.Height())
		}
	}
}

func TestHelpCoversEveryVerb(t *testing.T) {
	verbs := []string{"north", "east", "south", "west", "up", "down", "wait", "quit", "help", "look", "explore", "rest", "go"}
	var all string
	for _, h := range Help {
		all += h.Usage + " "
	}
	for _, v := range verbs {
		if !containsWord(all, v) {
			t.Errorf("help table does not mention %q", v)
		}
	}
}

func TestStartingStats(t *testing.T) {
	if Player.MaxHP != 10 || Player.Strength != 3 || Player.Level != 1 || Player.NextXP != 10 {
		t.Errorf("unexpected player stats %+v", Player)
	}
	if Goblin.MaxHP != 5 || Goblin.Strength != 2 || Goblin.Level != 1 {
		t.Errorf("unexpected goblin stats %+v", Goblin)
	}
}

func containsWord(s, w string) bool {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '/' || r == '<' || r == '>'
	})
	for _, f := range words {
		if f == w {
			return true
		}
	}
	return false
}
