package problemgen

import "math/rand/v2"

// Generator produces arithmetic problems.
type Generator interface {
	// Generate returns a problem for the difficulty and operation.
	// Unrecognized values are defaulted, never rejected.
	Generate(d Difficulty, op Operation) Problem
}

// RandomGenerator draws operands uniformly at random.
// It is not safe for concurrent use.
type RandomGenerator struct {
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator seeded from the runtime's random source.
func New() *RandomGenerator {
	return NewWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource creates a RandomGenerator driven by src.
func NewWithSource(src rand.Source) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(src)}
}

// Generate builds a problem whose Answer is exact:
//   - subtraction operands are ordered so the result is never negative
//   - division builds Operand1 as Operand2 times a drawn multiplier
func (g *RandomGenerator) Generate(d Difficulty, op Operation) Problem {
	d = d.OrDefault()
	op = op.OrDefault()

	if op == OpDivision {
		multiplier := g.draw(d.MaxMultiplier())
		divisor := g.draw(d.MaxMagnitude())
		return Problem{
			Operand1:  divisor * multiplier,
			Operand2:  divisor,
			Operation: op,
			Answer:    multiplier,
		}
	}

	a := g.draw(d.MaxMagnitude())
	b := g.draw(d.MaxMagnitude())
	if op == OpSubtraction && b > a {
		a, b = b, a
	}
	return Problem{
		Operand1:  a,
		Operand2:  b,
		Operation: op,
		Answer:    op.Apply(a, b),
	}
}

// draw returns a uniform integer in [1, max]. Never zero, so divisors are safe.
func (g *RandomGenerator) draw(max int) int {
	if max < 1 {
		return 1
	}
	return g.rng.IntN(max) + 1
}
