package polynomial

import (
	"errors"
	"fmt"

	"github.com/tumberger/zkcore/field"
)

var (
	// ErrDuplicatePoint is returned when two interpolation abscissas are equal.
	ErrDuplicatePoint = errors.New("polynomial: duplicate interpolation point")

	// ErrLengthMismatch is returned when xs and ys don't have the same length.
	ErrLengthMismatch = errors.New("polynomial: xs and ys have different lengths")

	// ErrNoPoints is returned when interpolating an empty set of points.
	ErrNoPoints = errors.New("polynomial: no interpolation points")
)

// Interpolate returns the unique polynomial P of degree < len(xs) such that
// P(xs[i]) = ys[i] for all i, using Lagrange's formula
//
//	P(x) = Σᵢ yᵢ · Πⱼ≠ᵢ (x - xⱼ)/(xᵢ - xⱼ)
//
// The basis polynomials are built explicitly: with T(x) = Πⱼ (x - xⱼ), the
// numerator of the i-th basis polynomial is T(x)/(x - xᵢ) and its
// denominator is that same quotient evaluated at xᵢ.
func Interpolate(xs, ys []field.Element) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Polynomial{}, ErrNoPoints
	}
	f := xs[0].Field()
	if err := checkDistinct(f, xs, ys); err != nil {
		return Polynomial{}, err
	}

	n := len(xs)
	t := Vanishing(f, xs)

	// numerators[i] = T / (x - xs[i]), by synthetic division
	numerators := make([][]field.Element, n)
	denominators := make([]field.Element, n)
	for i := range xs {
		q := syntheticDivide(t.coeffs, xs[i])
		numerators[i] = q
		denominators[i] = Polynomial{f: f, coeffs: q}.Eval(xs[i])
	}

	// the xs are distinct so none of the denominators vanishes
	invDenominators, err := field.BatchInverse(denominators)
	if err != nil {
		return Polynomial{}, err
	}

	res := make([]field.Element, n)
	for k := range res {
		res[k] = f.Zero()
	}
	for i := range xs {
		scale := ys[i].Mul(invDenominators[i])
		if scale.IsZero() {
			continue
		}
		for k, c := range numerators[i] {
			res[k] = res[k].Add(c.Mul(scale))
		}
	}

	return Polynomial{f: f, coeffs: trim(res)}, nil
}

// syntheticDivide returns the coefficients of t / (x - r) where r is a root
// of the monic polynomial t.
func syntheticDivide(t []field.Element, r field.Element) []field.Element {
	m := len(t) - 1
	q := make([]field.Element, m)
	q[m-1] = t[m]
	for k := m - 2; k >= 0; k-- {
		q[k] = t[k+1].Add(r.Mul(q[k+1]))
	}
	return q
}

func checkDistinct(f *field.Field, xs, ys []field.Element) error {
	seen := make(map[string]int, len(xs))
	for i := range xs {
		if !f.Equal(xs[i].Field()) || !f.Equal(ys[i].Field()) {
			panic("polynomial: interpolation points are not all in " + f.String())
		}
		key := string(xs[i].Bytes())
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: xs[%d] == xs[%d] == %s", ErrDuplicatePoint, j, i, xs[i])
		}
		seen[key] = i
	}
	return nil
}
