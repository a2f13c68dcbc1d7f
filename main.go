// textrogue plays the dungeon on the controlling terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"textrogue/internal/command"
	"textrogue/internal/config"
	"textrogue/internal/game"
	"textrogue/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "textrogue.yaml", "Path to the YAML config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	// Logs never share the terminal with the game.
	log := logger.New(cfg.Logging, nil)

	opts := game.Options{
		Width:         cfg.Game.MapWidth,
		Height:        cfg.Game.MapHeight,
		SightRadius:   cfg.Game.SightRadius,
		RegenInterval: cfg.Game.RegenInterval,
		Seed:          cfg.Game.Seed,
	}

	var (
		in  command.LineReader
		out io.Writer
	)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(fd, state) //nolint:errcheck
		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, "")
		if w, h, err := term.GetSize(fd); err == nil {
			_ = t.SetSize(w, h)
		}
		in, out = t, t
	} else {
		in, out = command.NewLines(os.Stdin, os.Stdout), os.Stdout
	}

	sess := game.New(opts, out, log)
	return command.New(sess, in, out, log).Run()
}
