// textrogue-server hosts textrogue over SSH. Every connection gets its own
// dungeon. Build:
//
//	go build -o textrogue-server ./cmd/server
//
// Usage:
//
//	./textrogue-server [-config textrogue.yaml] [-port 2222] [-key server_host_key] [-seed 0]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"

	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"textrogue/internal/config"
	"textrogue/internal/game"
	"textrogue/internal/logger"
	internalssh "textrogue/internal/ssh"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("textrogue-server", flag.ContinueOnError)
	cfgPath := fs.String("config", "textrogue.yaml", "Path to the YAML config file")
	port := fs.Int("port", 0, "SSH server port (overrides config)")
	keyFile := fs.String("key", "", "Path to the PEM-encoded host key, auto-generated if absent (overrides config)")
	seed := fs.Int64("seed", 0, "Fixed dungeon seed for every session (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Logging, os.Stderr)
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		return err
	}

	h := internalssh.NewHandler(gameOptions(cfg.Game), cfg.Server.MaxSessions, log)
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     h.Handle,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.WithFields(logrus.Fields{
		"port":         cfg.Server.Port,
		"max_sessions": cfg.Server.MaxSessions,
	}).Info("textrogue SSH server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func gameOptions(g config.GameConfig) game.Options {
	return game.Options{
		Width:         g.MapWidth,
		Height:        g.MapHeight,
		SightRadius:   g.SightRadius,
		RegenInterval: g.RegenInterval,
		Seed:          g.Seed,
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log logrus.FieldLogger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	log.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run; failure only costs a new key next time.
	pemBlock, err := xssh.MarshalPrivateKey(key, "textrogue server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.WithError(err).Warn("could not save host key")
	}
	return signer, nil
}
