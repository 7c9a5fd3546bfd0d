package practice

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/score"
)

// DefaultAdvanceDelay is the pause between a correct answer and the next problem.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// Settings is the learner's current difficulty and operation selection.
type Settings struct {
	Difficulty problemgen.Difficulty
	Operation  problemgen.Operation
}

// Options configures a new Session. Zero values fall back to defaults.
type Options struct {
	Settings     Settings
	AdvanceDelay time.Duration

	// Logger receives session events. Nil disables logging.
	Logger *zerolog.Logger
}

// Ticket identifies one pending auto-advance. Only the most recently
// issued ticket is honored by Advance.
type Ticket struct {
	ID    uint64
	Delay time.Duration
}

// Result is the outcome of a submission.
type Result struct {
	Outcome score.Outcome
	Problem problemgen.Problem

	// Advance is set after a correct answer. The caller should pass it to
	// Session.Advance once Advance.Delay has elapsed.
	Advance *Ticket
}

// Session holds the state of one practice run: the settings, the current
// problem and the score. It is not safe for concurrent use.
type Session struct {
	id       string
	gen      problemgen.Generator
	tracker  *score.Tracker
	settings Settings
	delay    time.Duration
	log      zerolog.Logger

	current  problemgen.Problem
	problems int

	lastTicket uint64
	pending    *Ticket
}

// New creates a Session and generates its first problem.
func New(gen problemgen.Generator, opts Options) *Session {
	delay := opts.AdvanceDelay
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}
	base := zerolog.Nop()
	if opts.Logger != nil {
		base = *opts.Logger
	}
	id := uuid.New().String()
	s := &Session{
		id:      id,
		gen:     gen,
		tracker: score.NewTracker(),
		settings: Settings{
			Difficulty: opts.Settings.Difficulty.OrDefault(),
			Operation:  opts.Settings.Operation.OrDefault(),
		},
		delay: delay,
		log:   base.With().Str("session", id).Logger(),
	}
	s.generate("start")
	return s
}

// ID returns the session identifier attached to log lines.
func (s *Session) ID() string { return s.id }

// Current returns the problem awaiting an answer.
func (s *Session) Current() problemgen.Problem { return s.current }

// Settings returns the active difficulty and operation.
func (s *Session) Settings() Settings { return s.settings }

// Score returns the running counts.
func (s *Session) Score() score.State { return s.tracker.State() }

// ProblemsServed returns how many problems have been generated.
func (s *Session) ProblemsServed() int { return s.problems }

// AdvanceDelay returns the configured auto-advance pause.
func (s *Session) AdvanceDelay() time.Duration { return s.delay }

// Pending reports whether an auto-advance is armed.
func (s *Session) Pending() bool { return s.pending != nil }

// SetDifficulty changes the difficulty and draws a new problem.
func (s *Session) SetDifficulty(d problemgen.Difficulty) problemgen.Problem {
	s.settings.Difficulty = d.OrDefault()
	return s.generate("settings")
}

// SetOperation changes the operation and draws a new problem.
func (s *Session) SetOperation(op problemgen.Operation) problemgen.Problem {
	s.settings.Operation = op.OrDefault()
	return s.generate("settings")
}

// Apply replaces both settings and draws a new problem.
func (s *Session) Apply(settings Settings) problemgen.Problem {
	s.settings = Settings{
		Difficulty: settings.Difficulty.OrDefault(),
		Operation:  settings.Operation.OrDefault(),
	}
	return s.generate("settings")
}

// NextProblem discards the current problem and draws a new one.
func (s *Session) NextProblem() problemgen.Problem {
	return s.generate("manual")
}

// Submit evaluates raw against the current problem. A correct answer arms
// a fresh auto-advance ticket, replacing any earlier one.
func (s *Session) Submit(raw string) Result {
	out := s.tracker.Evaluate(raw, s.current.Answer)
	res := Result{Outcome: out, Problem: s.current}

	ev := s.log.Info()
	if out.Kind == score.Invalid {
		ev = s.log.Debug()
	}
	ev.Str("problem", s.current.String()).
		Str("input", raw).
		Stringer("outcome", out.Kind).
		Int("total", s.tracker.Total()).
		Msg("answer evaluated")

	if out.Kind == score.Correct {
		s.lastTicket++
		t := Ticket{ID: s.lastTicket, Delay: s.delay}
		s.pending = &t
		res.Advance = &t
	}
	return res
}

// Advance draws the next problem if t is still the pending ticket.
// A stale ticket is a no-op and reports false.
func (s *Session) Advance(t Ticket) bool {
	if s.pending == nil || s.pending.ID != t.ID {
		s.log.Debug().Uint64("ticket", t.ID).Msg("stale auto-advance ignored")
		return false
	}
	s.generate("auto")
	return true
}

// Reset zeroes the score and draws a new problem.
func (s *Session) Reset() problemgen.Problem {
	s.tracker.Reset()
	s.log.Info().Msg("score reset")
	return s.generate("reset")
}

// generate replaces the current problem. Any pending auto-advance is
// cancelled so it cannot overwrite the new problem.
func (s *Session) generate(reason string) problemgen.Problem {
	s.pending = nil
	s.current = s.gen.Generate(s.settings.Difficulty, s.settings.Operation)
	s.problems++
	s.log.Debug().
		Str("reason", reason).
		Stringer("difficulty", s.settings.Difficulty).
		Stringer("operation", s.settings.Operation).
		Str("problem", s.current.String()).
		Msg("problem generated")
	return s.current
}

// Summary is the end-of-run report shown when the learner stops practicing.
type Summary struct {
	Settings Settings
	Score    score.State
	Problems int
	Duration time.Duration
}

// Summary builds the end-of-run report. elapsed is measured by the caller.
func (s *Session) Summary(elapsed time.Duration) Summary {
	return Summary{
		Settings: s.settings,
		Score:    s.tracker.State(),
		Problems: s.problems,
		Duration: elapsed,
	}
}
