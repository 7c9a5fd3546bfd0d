package score

import (
	"strconv"
	"strings"
)

// Kind tags the result of evaluating a submitted answer.
type Kind int

const (
	Invalid   Kind = iota // input was empty or not an integer
	Correct               // input matched the answer
	Incorrect             // input was an integer but not the answer
)

func (k Kind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "invalid"
	}
}

// Outcome is the result of a single Evaluate call.
type Outcome struct {
	Kind Kind

	// Answer is the correct result. Set only for Incorrect outcomes.
	Answer int

	// Count is the new correct count for Correct outcomes and the new
	// incorrect count for Incorrect outcomes.
	Count int
}

// Message returns the feedback line shown to the learner.
func (o Outcome) Message() string {
	switch o.Kind {
	case Correct:
		return "Correct! Great job!"
	case Incorrect:
		return "Not quite. The answer is " + strconv.Itoa(o.Answer) + ". Try again!"
	default:
		return "Please enter a number!"
	}
}

// State is a snapshot of the running counts.
type State struct {
	Correct   int
	Incorrect int
}

// Total returns Correct + Incorrect.
func (s State) Total() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns the fraction of answers that were correct, 0 when empty.
func (s State) Accuracy() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total())
}

// Tracker judges answers and keeps cumulative counts.
// The zero value is ready to use. It is not safe for concurrent use.
type Tracker struct {
	state State
}

// NewTracker returns a Tracker with zero counts.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Evaluate parses raw and compares it with correct. Invalid input leaves
// the counters untouched.
func (t *Tracker) Evaluate(raw string, correct int) Outcome {
	n, ok := ParseAnswer(raw)
	if !ok {
		return Outcome{Kind: Invalid}
	}
	if n == correct {
		t.state.Correct++
		return Outcome{Kind: Correct, Count: t.state.Correct}
	}
	t.state.Incorrect++
	return Outcome{Kind: Incorrect, Answer: correct, Count: t.state.Incorrect}
}

// Reset zeroes both counters.
func (t *Tracker) Reset() {
	t.state = State{}
}

// Total returns the number of evaluated (non-invalid) answers.
func (t *Tracker) Total() int {
	return t.state.Total()
}

// State returns a copy of the current counts.
func (t *Tracker) State() State {
	return t.state
}

// ParseAnswer parses an integer answer. Surrounding whitespace and a single
// leading sign are accepted; anything else, including an empty string,
// is rejected.
func ParseAnswer(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
