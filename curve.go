package interpolator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Eval maps a raw value x in [0, 1] through the curve with the given
// strength s (> 1):
//
//	Concave: log2((s-1)*x + 1) / log2(s)
//	Convex:  (s^x - 1) / (s - 1)
//
// Both formulas map 0 to 0 and 1 to 1 exactly and are strictly
// increasing on [0, 1]. The two curves are inverses of each other.
func (c Curvature) Eval(strength, x float64) float64 {
	if c == Concave {
		return math.Log2((strength-1)*x+1) / math.Log2(strength)
	}
	return (math.Pow(strength, x) - 1) / (strength - 1)
}

// CurveTable returns n samples of the curve taken at uniformly spaced
// raw values spanning [0, 1] inclusive. It fails when strength is not
// greater than 1 or n < 2.
func CurveTable(c Curvature, strength float64, n int) ([]float64, error) {
	if strength <= 1 {
		return nil, fmt.Errorf("%w: strength must be greater than 1", ErrInvalidArgument)
	}

	if n < minTableSamples {
		return nil, fmt.Errorf("%w: curve table needs at least %d samples", ErrInvalidArgument, minTableSamples)
	}

	table := make([]float64, n)
	floats.Span(table, 0, 1)
	for i, x := range table {
		table[i] = c.Eval(strength, x)
	}

	return table, nil
}
