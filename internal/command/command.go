// Package command reads player commands line by line and drives a game
// session with them.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"

	"textrogue/assets"
	"textrogue/internal/game"
	"textrogue/internal/gamemap"
)

// Prompt is shown before every command.
const Prompt = ">"

// LineReader supplies one line of input at a time. *term.Terminal
// satisfies it.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

type handler func(it *Interpreter, args []string)

type verb struct {
	name string
	run  handler
}

// verbs is matched in order: the first verb the typed word is a prefix of
// wins, so "e" is east and "ex" is explore.
var verbs = []verb{
	{"north", move(gamemap.North)},
	{"east", move(gamemap.East)},
	{"south", move(gamemap.South)},
	{"west", move(gamemap.West)},
	{"up", (*Interpreter).up},
	{"down", func(it *Interpreter, _ []string) { it.game.Descend() }},
	{"wait", func(it *Interpreter, _ []string) { it.game.Wait() }},
	{"quit", func(it *Interpreter, _ []string) { it.game.Quit() }},
	{"help", (*Interpreter).help},
	{"look", func(it *Interpreter, _ []string) { it.game.Look() }},
	{"explore", func(it *Interpreter, _ []string) { it.game.Explore() }},
	{"rest", func(it *Interpreter, _ []string) { it.game.Rest() }},
	{"go", (*Interpreter).goTo},
}

func move(dir gamemap.Direction) handler {
	return func(it *Interpreter, _ []string) { it.game.Move(dir) }
}

// Resolve returns the verb that word abbreviates, or "" when none does.
func Resolve(word string) string {
	if word == "" {
		return ""
	}
	for _, v := range verbs {
		if strings.HasPrefix(v.name, word) {
			return v.name
		}
	}
	return ""
}

func lookup(name string) handler {
	for _, v := range verbs {
		if v.name == name {
			return v.run
		}
	}
	return nil
}

// Tokenize lower-cases and splits a command line. Quotes group words; an
// unbalanced quote falls back to splitting on whitespace.
func Tokenize(line string) []string {
	line = strings.ToLower(strings.TrimSpace(line))
	words, err := shlex.Split(line, true)
	if err != nil {
		return strings.Fields(line)
	}
	return words
}

// Interpreter runs commands against one session.
type Interpreter struct {
	game *game.Session
	in   LineReader
	out  io.Writer
	log  logrus.FieldLogger
}

// New returns an interpreter reading from in and narrating to out.
func New(s *game.Session, in LineReader, out io.Writer, log logrus.FieldLogger) *Interpreter {
	return &Interpreter{game: s, in: in, out: out, log: log}
}

// Run greets the player and executes commands until the session ends.
// End of input closes the session cleanly.
func (it *Interpreter) Run() error {
	fmt.Fprintln(it.out, "textrogue")
	fmt.Fprintln(it.out, `Type "help" for a list of game commands`)
	it.game.Look()

	it.in.SetPrompt(Prompt)
	for !it.game.Over() {
		line, err := it.in.ReadLine()
		if err != nil {
			it.game.Close()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		it.Execute(line)
	}
	return nil
}

// Execute runs a single command line.
func (it *Interpreter) Execute(line string) {
	words := Tokenize(line)
	if len(words) == 0 {
		fmt.Fprintln(it.out, "Enter a command.")
		return
	}
	name := Resolve(words[0])
	if name == "" {
		fmt.Fprintln(it.out, "You can't do that.")
		return
	}
	it.log.WithFields(logrus.Fields{"command": name, "args": words[1:]}).Debug("command")
	lookup(name)(it, words[1:])
}

func (it *Interpreter) up(_ []string) {
	if it.game.Level() == 1 && it.game.OnStairs(gamemap.TileStairsUp) {
		if it.confirm("Leave the dungeon?") {
			it.game.Leave()
		}
		return
	}
	it.game.Ascend()
}

func (it *Interpreter) goTo(args []string) {
	if len(args) > 0 && args[0] == "to" {
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprintln(it.out, "Invalid location.")
		return
	}
	for _, loc := range game.Locations {
		if strings.HasPrefix(loc.Name, args[0]) {
			it.game.GoTo(loc)
			return
		}
	}
	fmt.Fprintln(it.out, "Invalid location.")
}

func (it *Interpreter) help(_ []string) {
	width := 0
	for _, h := range assets.Help {
		width = max(width, runewidth.StringWidth(h.Usage))
	}
	fmt.Fprintln(it.out)
	for _, h := range assets.Help {
		fmt.Fprintf(it.out, "%s  %s\n", runewidth.FillRight(h.Usage, width), h.Description)
	}
	fmt.Fprintln(it.out)
	for _, hint := range assets.HelpHints {
		fmt.Fprintln(it.out, hint)
	}
}

// confirm asks a yes/no question. Anything but y, ye, yes or yeah is no,
// including end of input.
func (it *Interpreter) confirm(question string) bool {
	it.in.SetPrompt(question + " y/N ")
	defer it.in.SetPrompt(Prompt)
	answer, err := it.in.ReadLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "ye", "yes", "yeah":
		return true
	}
	return false
}
