package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"Medium", DifficultyMedium},
		{" HARD ", DifficultyHard},
		{"", DifficultyMedium},
		{"expert", DifficultyMedium},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDifficulty(tt.in))
		})
	}
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"addition", OpAddition},
		{"subtraction", OpSubtraction},
		{"Multiplication", OpMultiplication},
		{"division", OpDivision},
		{"modulo", OpAddition},
		{"", OpAddition},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOperation(tt.in))
		})
	}
}

func TestDifficultyBounds(t *testing.T) {
	tests := []struct {
		d             Difficulty
		maxMagnitude  int
		maxMultiplier int
	}{
		{DifficultyEasy, 10, 10},
		{DifficultyMedium, 50, 12},
		{DifficultyHard, 100, 15},
		{Difficulty(99), 50, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.maxMagnitude, tt.d.MaxMagnitude(), "magnitude for %s", tt.d)
		assert.Equal(t, tt.maxMultiplier, tt.d.MaxMultiplier(), "multiplier for %s", tt.d)
	}
}

func TestOperationSymbolAndApply(t *testing.T) {
	tests := []struct {
		op     Operation
		symbol string
		a, b   int
		want   int
	}{
		{OpAddition, "+", 7, 3, 10},
		{OpSubtraction, "−", 7, 3, 4},
		{OpMultiplication, "×", 7, 3, 21},
		{OpDivision, "÷", 21, 3, 7},
		{Operation(0), "+", 2, 2, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.symbol, tt.op.Symbol())
		assert.Equal(t, tt.want, tt.op.Apply(tt.a, tt.b))
	}
}

func TestCycling(t *testing.T) {
	assert.Equal(t, DifficultyMedium, DifficultyEasy.Next())
	assert.Equal(t, DifficultyEasy, DifficultyHard.Next())
	assert.Equal(t, OpSubtraction, OpAddition.Next())
	assert.Equal(t, OpAddition, OpDivision.Next())
	assert.Equal(t, OpDivision, OpAddition.Prev())
	assert.Equal(t, OpMultiplication, OpDivision.Prev())
}

func TestProblemString(t *testing.T) {
	p := Problem{Operand1: 12, Operand2: 4, Operation: OpDivision, Answer: 3}
	assert.Equal(t, "12 ÷ 4", p.String())
	assert.Equal(t, "Hard", DifficultyHard.Label())
	assert.Equal(t, "Multiplication", OpMultiplication.Label())
}
