// Package ssh hosts independent game sessions over SSH connections.
package ssh

import (
	"fmt"
	"io"
	"sync/atomic"

	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"textrogue/internal/command"
	"textrogue/internal/game"
)

// Handler runs one game per SSH session. Sessions share nothing but the
// slot counter.
type Handler struct {
	opts  game.Options
	log   logrus.FieldLogger
	slots chan struct{} // nil when unlimited
	seq   atomic.Int64
}

// NewHandler hosts games with opts, at most maxSessions at a time
// (0 for no limit).
func NewHandler(opts game.Options, maxSessions int, log logrus.FieldLogger) *Handler {
	h := &Handler{opts: opts, log: log}
	if maxSessions > 0 {
		h.slots = make(chan struct{}, maxSessions)
	}
	return h
}

func (h *Handler) acquire() bool {
	if h.slots == nil {
		return true
	}
	select {
	case h.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (h *Handler) release() {
	if h.slots != nil {
		<-h.slots
	}
}

// Handle is the gliderlabs session handler. It blocks until the game ends
// or the client disconnects.
func (h *Handler) Handle(s gossh.Session) {
	log := h.log.WithFields(logrus.Fields{
		"session": h.seq.Add(1),
		"user":    sanitizeName(s.User()),
		"remote":  s.RemoteAddr().String(),
	})

	if !h.acquire() {
		fmt.Fprintln(s, "The dungeon is full. Try again later.")
		log.Warn("session rejected: server full")
		return
	}
	defer h.release()
	log.Info("session started")

	in, out := lineIO(s)
	sess := game.New(h.opts, out, log)
	if err := command.New(sess, in, out, log).Run(); err != nil {
		log.WithError(err).Warn("session aborted")
	}
	log.Info("session closed")
}

// lineIO picks the line reader for a session: an editing terminal when the
// client asked for a PTY, plain lines otherwise (e.g. piped input).
func lineIO(s gossh.Session) (command.LineReader, io.Writer) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return command.NewLines(s, s), s
	}
	t := term.NewTerminal(s, "")
	_ = t.SetSize(pty.Window.Width, pty.Window.Height)
	go func() {
		for win := range winCh {
			_ = t.SetSize(win.Width, win.Height)
		}
	}()
	return t, t
}
