package game

import (
	"github.com/sirupsen/logrus"
)

// Outcome says how a session ended.
type Outcome string

const (
	OutcomeDied   Outcome = "died"
	OutcomeLeft   Outcome = "left"
	OutcomeQuit   Outcome = "quit"
	OutcomeClosed Outcome = "disconnected"
)

// RunLog records statistics gathered during one session.
type RunLog struct {
	Turns        int
	DeepestLevel int
	Kills        map[string]int
	CauseOfDeath string
	Outcome      Outcome
}

func newRunLog() RunLog {
	return RunLog{Kills: make(map[string]int)}
}

func (r *RunLog) reachedLevel(level int) {
	if level > r.DeepestLevel {
		r.DeepestLevel = level
	}
}

// TotalKills sums kills over every enemy kind.
func (r RunLog) TotalKills() int {
	n := 0
	for _, k := range r.Kills {
		n += k
	}
	return n
}

// Fields renders the run as structured log fields.
func (r RunLog) Fields() logrus.Fields {
	f := logrus.Fields{
		"turns":         r.Turns,
		"deepest_level": r.DeepestLevel,
		"kills":         r.TotalKills(),
		"outcome":       string(r.Outcome),
	}
	for name, n := range r.Kills {
		f["kills_"+name] = n
	}
	if r.CauseOfDeath != "" {
		f["cause_of_death"] = r.CauseOfDeath
	}
	return f
}

// RunLog returns a copy of the statistics so far.
func (s *Session) RunLog() RunLog {
	out := s.runLog
	out.Kills = make(map[string]int, len(s.runLog.Kills))
	for k, v := range s.runLog.Kills {
		out.Kills[k] = v
	}
	return out
}

// Close ends the session if it is still running, e.g. when the
// connection drops.
func (s *Session) Close() { s.finish(OutcomeClosed) }
