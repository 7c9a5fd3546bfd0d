package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"7", 7, true},
		{"  42", 42, true},
		{"42 ", 42, true},
		{"+5", 5, true},
		{"-12", -12, true},
		{"007", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{"--3", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAnswer(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Invalid(t *testing.T) {
	tr := NewTracker()
	for _, raw := range []string{"", "abc", " ", "seven"} {
		out := tr.Evaluate(raw, 7)
		assert.Equal(t, Invalid, out.Kind, "input %q", raw)
	}
	assert.Equal(t, State{}, tr.State())
	assert.Equal(t, 0, tr.Total())
}

func TestEvaluate_Correct(t *testing.T) {
	tr := NewTracker()
	out := tr.Evaluate("7", 7)
	require.Equal(t, Correct, out.Kind)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, State{Correct: 1}, tr.State())

	out = tr.Evaluate(" 7", 7)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, 0, tr.State().Incorrect)
}

func TestEvaluate_Incorrect(t *testing.T) {
	tr := NewTracker()
	out := tr.Evaluate("5", 7)
	require.Equal(t, Incorrect, out.Kind)
	assert.Equal(t, 7, out.Answer)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, State{Incorrect: 1}, tr.State())
	assert.Equal(t, "Not quite. The answer is 7. Try again!", out.Message())
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.Evaluate("1", 1)
	tr.Evaluate("2", 1)
	tr.Evaluate("3", 1)
	require.Equal(t, 3, tr.Total())

	tr.Reset()
	assert.Equal(t, State{}, tr.State())
	assert.Equal(t, 0, tr.Total())
}

func TestTotalTracksSequence(t *testing.T) {
	var tr Tracker
	steps := []struct {
		raw     string
		reset   bool
		correct int
	}{
		{raw: "4", correct: 4},
		{raw: "x", correct: 4},
		{raw: "5", correct: 4},
		{reset: true},
		{raw: "9", correct: 9},
		{raw: "", correct: 9},
		{raw: "-1", correct: 9},
	}
	for i, s := range steps {
		if s.reset {
			tr.Reset()
		} else {
			tr.Evaluate(s.raw, s.correct)
		}
		st := tr.State()
		assert.Equal(t, st.Correct+st.Incorrect, tr.Total(), "step %d", i)
	}
	assert.Equal(t, State{Correct: 1, Incorrect: 1}, tr.State())
}

func TestAccuracy(t *testing.T) {
	assert.Zero(t, State{}.Accuracy())
	assert.InDelta(t, 0.75, State{Correct: 3, Incorrect: 1}.Accuracy(), 1e-9)
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "Please enter a number!", Outcome{Kind: Invalid}.Message())
	assert.Equal(t, "Correct! Great job!", Outcome{Kind: Correct, Count: 1}.Message())
	assert.Equal(t, "correct", Correct.String())
}
