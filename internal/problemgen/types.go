package problemgen

import (
	"fmt"
	"strings"
)

// Difficulty is a named tier controlling the magnitude of generated operands.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// DefaultDifficulty is used whenever a difficulty is missing or unrecognized.
const DefaultDifficulty = DifficultyMedium

// difficultyBounds holds the per-tier operand and division multiplier limits.
var difficultyBounds = map[Difficulty]struct {
	maxMagnitude  int
	maxMultiplier int
}{
	DifficultyEasy:   {maxMagnitude: 10, maxMultiplier: 10},
	DifficultyMedium: {maxMagnitude: 50, maxMultiplier: 12},
	DifficultyHard:   {maxMagnitude: 100, maxMultiplier: 15},
}

// Difficulties lists every difficulty in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	_, ok := difficultyBounds[d]
	return ok
}

// OrDefault returns d, or DefaultDifficulty when d is not a known difficulty.
func (d Difficulty) OrDefault() Difficulty {
	if d.Valid() {
		return d
	}
	return DefaultDifficulty
}

// MaxMagnitude returns the largest operand drawn for this difficulty.
func (d Difficulty) MaxMagnitude() int {
	return difficultyBounds[d.OrDefault()].maxMagnitude
}

// MaxMultiplier returns the largest quotient of a division problem.
func (d Difficulty) MaxMultiplier() int {
	return difficultyBounds[d.OrDefault()].maxMultiplier
}

// Next cycles to the following difficulty, wrapping from Hard to Easy.
func (d Difficulty) Next() Difficulty {
	switch d.OrDefault() {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Label returns the capitalized name used in the UI.
func (d Difficulty) Label() string {
	s := d.OrDefault().String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty maps a name such as "easy" to a Difficulty.
// Unrecognized names fall back to DefaultDifficulty.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DefaultDifficulty
	}
}

// Operation is one of the four arithmetic operations.
type Operation int

const (
	OpAddition Operation = iota + 1
	OpSubtraction
	OpMultiplication
	OpDivision
)

// DefaultOperation is used whenever an operation is missing or unrecognized.
const DefaultOperation = OpAddition

// Operations lists every operation in display order.
func Operations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	return op >= OpAddition && op <= OpDivision
}

// OrDefault returns op, or DefaultOperation when op is not a known operation.
func (op Operation) OrDefault() Operation {
	if op.Valid() {
		return op
	}
	return DefaultOperation
}

// Symbol returns the display symbol for the operation.
func (op Operation) Symbol() string {
	switch op.OrDefault() {
	case OpSubtraction:
		return "−"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "+"
	}
}

// Apply combines a and b. Division is integer division; callers only
// apply it to operands built as exact multiples.
func (op Operation) Apply(a, b int) int {
	switch op.OrDefault() {
	case OpSubtraction:
		return a - b
	case OpMultiplication:
		return a * b
	case OpDivision:
		return a / b
	default:
		return a + b
	}
}

// Next cycles to the following operation, wrapping from Division to Addition.
func (op Operation) Next() Operation {
	if !op.Valid() || op == OpDivision {
		return OpAddition
	}
	return op + 1
}

// Prev cycles to the preceding operation, wrapping from Addition to Division.
func (op Operation) Prev() Operation {
	if !op.Valid() || op == OpAddition {
		return OpDivision
	}
	return op - 1
}

func (op Operation) String() string {
	switch op {
	case OpAddition:
		return "addition"
	case OpSubtraction:
		return "subtraction"
	case OpMultiplication:
		return "multiplication"
	case OpDivision:
		return "division"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Label returns the capitalized name used in the UI.
func (op Operation) Label() string {
	s := op.OrDefault().String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseOperation maps a name such as "division" to an Operation.
// Unrecognized names fall back to DefaultOperation.
func ParseOperation(s string) Operation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "addition":
		return OpAddition
	case "subtraction":
		return OpSubtraction
	case "multiplication":
		return OpMultiplication
	case "division":
		return OpDivision
	default:
		return DefaultOperation
	}
}

// Problem is a single generated arithmetic problem.
type Problem struct {
	Operand1  int
	Operand2  int
	Operation Operation

	// Answer is Operation applied to Operand1 and Operand2, always exact.
	Answer int
}

// String renders the problem as "a op b", e.g. "12 × 4".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.Operand1, p.Operation.Symbol(), p.Operand2)
}
