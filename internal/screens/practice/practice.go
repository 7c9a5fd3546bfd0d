package practice

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	prac "github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/score"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// PracticeScreen implements screen.Screen for the problem/answer loop.
type PracticeScreen struct {
	session *prac.Session
	input   components.TextInput

	// feedback is the outcome of the last submission for the current problem.
	feedback *score.Outcome

	confirmingReset bool
	started         time.Time
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen driving session.
func New(session *prac.Session) *PracticeScreen {
	return &PracticeScreen{
		session: session,
		input:   components.NewTextInput("Type your answer...", 12),
		started: time.Now(),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) Status() string {
	st := s.session.Score()
	return fmt.Sprintf("✓ %d  ✗ %d  Σ %d", st.Correct, st.Incorrect, st.Total())
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.confirmingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset score"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Operation"},
		{Key: "Ctrl+D", Description: "Difficulty"},
		{Key: "Ctrl+N", Description: "New"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.session.Advance(msg.Ticket) {
			s.problemChanged()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmingReset {
		switch key {
		case "y", "Y":
			s.confirmingReset = false
			s.session.Reset()
			s.problemChanged()
		case "n", "N", "esc":
			s.confirmingReset = false
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s.submit()
	case "tab":
		s.session.SetOperation(s.session.Settings().Operation.Next())
		s.problemChanged()
		return s, nil
	case "shift+tab":
		s.session.SetOperation(s.session.Settings().Operation.Prev())
		s.problemChanged()
		return s, nil
	case "ctrl+d":
		s.session.SetDifficulty(s.session.Settings().Difficulty.Next())
		s.problemChanged()
		return s, nil
	case "ctrl+n":
		s.session.NextProblem()
		s.problemChanged()
		return s, nil
	case "ctrl+r":
		s.confirmingReset = true
		return s, nil
	case "esc":
		sum := s.session.Summary(time.Since(s.started))
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum)}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit evaluates the typed answer and schedules auto-advance on success.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	res := s.session.Submit(s.input.Value())
	out := res.Outcome
	s.feedback = &out

	if out.Kind != score.Invalid {
		s.input.Mark(out.Kind == score.Correct)
	}
	if res.Advance == nil {
		return s, nil
	}

	ticket := *res.Advance
	return s, tea.Tick(ticket.Delay, func(time.Time) tea.Msg {
		return advanceMsg{Ticket: ticket}
	})
}

// problemChanged resets per-problem UI state after a new problem is drawn.
func (s *PracticeScreen) problemChanged() {
	s.feedback = nil
	s.input.Clear()
}
