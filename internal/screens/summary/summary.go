package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// SummaryScreen displays the end-of-run summary.
type SummaryScreen struct {
	summary practice.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary practice.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline(sum)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %s · %d problems · %d:%02d",
			sum.Settings.Difficulty.Label(), sum.Settings.Operation.Label(),
			sum.Problems, mins, secs)))
	b.WriteString("\n\n")

	st := sum.Score
	stats := fmt.Sprintf("Correct: %d        Incorrect: %d        Total: %d",
		st.Correct, st.Incorrect, st.Total())
	cw := components.ContentWidth(width)
	bar := components.NewProgressBar("Accuracy", st.Accuracy(), true, cw-10).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(stats+"\n\n"+bar, cw)))

	return b.String()
}

func headline(sum practice.Summary) string {
	switch {
	case sum.Score.Total() == 0:
		return "See you next time!"
	case sum.Score.Accuracy() >= 0.9:
		return "Outstanding work!"
	case sum.Score.Accuracy() >= 0.6:
		return "Nice practice!"
	default:
		return "Keep at it!"
	}
}
