package assets

// HelpEntry is one row of the help table.
type HelpEntry struct {
	Usage       string
	Description string
}

// Help lists the commands in display order.
var Help = []HelpEntry{
	{"help", "Show this list"},
	{"north/east/south/west", "Move/attack in a direction"},
	{"up/down", "Ascend/descend stairs"},
	{"look", "Repeat description of surroundings"},
	{"quit", "Quit the game"},
	{"go <location>", "Go to a known location on the map"},
	{"rest", "Rest until HP/MP are restored"},
	{"explore", "Explore the map"},
	{"wait", "Let a turn pass"},
}

// HelpHints follow the table.
var HelpHints = []string{
	"Commands can be shortened, e.g. n for north or ex for explore.",
	"Locations for go: entrance, exit, door.",
}
