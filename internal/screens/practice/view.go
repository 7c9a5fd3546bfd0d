package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/score"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.confirmingReset {
		return renderResetConfirm(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(width, renderSettings(s.session.Settings().Difficulty, s.session.Settings().Operation)))
	b.WriteString("\n\n\n")
	b.WriteString(center(width, renderProblem(s.session.Current())))
	b.WriteString("\n\n")
	b.WriteString(center(width, "Answer: "+s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(center(width, renderFeedback(s.feedback)))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	b.WriteString(center(width, renderScore(s.session.Score(), cw)))

	return b.String()
}

// renderSettings shows every difficulty and operation with the active ones highlighted.
func renderSettings(d problemgen.Difficulty, op problemgen.Operation) string {
	var diffs []string
	for _, c := range problemgen.Difficulties() {
		if c == d {
			diffs = append(diffs, theme.Chip.Render(c.Label()))
		} else {
			diffs = append(diffs, theme.ChipDim.Render(c.Label()))
		}
	}
	var ops []string
	for _, c := range problemgen.Operations() {
		label := c.Symbol() + " " + c.Label()
		if c == op {
			ops = append(ops, theme.Chip.Render(label))
		} else {
			ops = append(ops, theme.ChipDim.Render(label))
		}
	}
	return strings.Join(diffs, " ") + "\n\n" + strings.Join(ops, " ")
}

func renderProblem(p problemgen.Problem) string {
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		theme.Operand.Render(fmt.Sprint(p.Operand1)),
		theme.Operator.Render(p.Operation.Symbol()),
		theme.Operand.Render(fmt.Sprint(p.Operand2)),
		theme.Operator.Render("="),
		theme.Hint.Render("?"),
	)
}

func renderFeedback(out *score.Outcome) string {
	if out == nil {
		return " "
	}
	switch out.Kind {
	case score.Correct:
		return theme.Correct.Render("✓ " + out.Message())
	case score.Incorrect:
		return theme.Incorrect.Render("✗ " + out.Message())
	default:
		return theme.Invalid.Render("⚠ " + out.Message())
	}
}

func renderScore(st score.State, cw int) string {
	line := fmt.Sprintf("%s   %s   %s",
		theme.Correct.Render(fmt.Sprintf("Correct %d", st.Correct)),
		theme.Incorrect.Render(fmt.Sprintf("Incorrect %d", st.Incorrect)),
		theme.Body.Render(fmt.Sprintf("Total %d", st.Total())),
	)
	bar := components.NewProgressBar("Accuracy", st.Accuracy(), true, cw-10).View()
	return components.ArcadeCard(line+"\n\n"+bar, cw)
}

func renderResetConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Are you sure you want to reset your score?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, reset"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep my score"))
	return b.String()
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
