// Package polynomial implements dense univariate polynomials over a prime
// field: arithmetic, long division, evaluation and Lagrange interpolation.
//
// Coefficients are stored low-to-high: Coefficient(i) is the coefficient of
// xⁱ. Polynomials are normalised (no trailing zero coefficients) and
// immutable; the zero polynomial has no coefficients and degree -1.
package polynomial

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tumberger/zkcore/field"
)

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("polynomial: division by the zero polynomial")
)

// Polynomial over a prime field
type Polynomial struct {
	f      *field.Field
	coeffs []field.Element
}

// New returns the polynomial Σ coeffs[i]·xⁱ. coeffs is copied.
// All coefficients must belong to f.
func New(f *field.Field, coeffs []field.Element) Polynomial {
	c := make([]field.Element, len(coeffs))
	for i := range coeffs {
		if !f.Equal(coeffs[i].Field()) {
			panic("polynomial: coefficient is not an element of " + f.String())
		}
		c[i] = coeffs[i]
	}
	return Polynomial{f: f, coeffs: trim(c)}
}

// FromInt64 returns Σ coeffs[i]·xⁱ with coefficients reduced into f.
func FromInt64(f *field.Field, coeffs ...int64) Polynomial {
	return Polynomial{f: f, coeffs: trim(f.Elements(coeffs...))}
}

// Zero returns the zero polynomial of f.
func Zero(f *field.Field) Polynomial {
	return Polynomial{f: f}
}

// Constant returns the degree 0 polynomial c (zero polynomial if c == 0).
func Constant(c field.Element) Polynomial {
	return New(c.Field(), []field.Element{c})
}

// Linear returns x - root.
func Linear(root field.Element) Polynomial {
	f := root.Field()
	return Polynomial{f: f, coeffs: []field.Element{root.Neg(), f.One()}}
}

// Vanishing returns Π (x - points[k]), the monic polynomial whose roots are
// exactly the given points. It returns the constant 1 for no points.
func Vanishing(f *field.Field, points []field.Element) Polynomial {
	// built in place: res[k] = res[k-1] - p*res[k]
	res := make([]field.Element, len(points)+1)
	for i := range res {
		res[i] = f.Zero()
	}
	res[0] = f.One()
	for n, p := range points {
		if !f.Equal(p.Field()) {
			panic("polynomial: root is not an element of " + f.String())
		}
		for k := n + 1; k >= 1; k-- {
			res[k] = res[k-1].Sub(p.Mul(res[k]))
		}
		res[0] = p.Mul(res[0]).Neg()
	}
	return Polynomial{f: f, coeffs: res}
}

// trim removes trailing zero coefficients
func trim(c []field.Element) []field.Element {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	return c[:n]
}

func (p Polynomial) mustMatch(q Polynomial) {
	if p.f == nil || q.f == nil {
		panic("polynomial: use of uninitialized polynomial")
	}
	if !p.f.Equal(q.f) {
		panic("polynomial: mixing polynomials over " + p.f.String() + " and " + q.f.String())
	}
}

// Field returns the coefficient field
func (p Polynomial) Field() *field.Field {
	return p.f
}

// Degree returns the degree of p, -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficients returns a copy of the coefficients, low-to-high.
func (p Polynomial) Coefficients() []field.Element {
	res := make([]field.Element, len(p.coeffs))
	copy(res, p.coeffs)
	return res
}

// Coefficient returns the coefficient of xⁱ (zero above the degree).
func (p Polynomial) Coefficient(i int) field.Element {
	if i < 0 || i >= len(p.coeffs) {
		return p.f.Zero()
	}
	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest power, zero for
// the zero polynomial.
func (p Polynomial) LeadingCoefficient() field.Element {
	return p.Coefficient(p.Degree())
}

// Equal reports whether p and q have the same coefficients
func (p Polynomial) Equal(q Polynomial) bool {
	p.mustMatch(q)
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q
func (p Polynomial) Add(q Polynomial) Polynomial {
	p.mustMatch(q)
	if len(p.coeffs) < len(q.coeffs) {
		p, q = q, p
	}
	res := make([]field.Element, len(p.coeffs))
	copy(res, p.coeffs)
	for i := range q.coeffs {
		res[i] = res[i].Add(q.coeffs[i])
	}
	return Polynomial{f: p.f, coeffs: trim(res)}
}

// Sub returns p - q
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p
func (p Polynomial) Neg() Polynomial {
	res := make([]field.Element, len(p.coeffs))
	for i := range p.coeffs {
		res[i] = p.coeffs[i].Neg()
	}
	return Polynomial{f: p.f, coeffs: res}
}

// ScalarMul returns c·p
func (p Polynomial) ScalarMul(c field.Element) Polynomial {
	if !p.f.Equal(c.Field()) {
		panic("polynomial: scalar is not an element of " + p.f.String())
	}
	if c.IsZero() {
		return Zero(p.f)
	}
	res := make([]field.Element, len(p.coeffs))
	for i := range p.coeffs {
		res[i] = p.coeffs[i].Mul(c)
	}
	return Polynomial{f: p.f, coeffs: res}
}

// Mul returns p·q, the convolution of the coefficient vectors.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	p.mustMatch(q)
	if p.IsZero() || q.IsZero() {
		return Zero(p.f)
	}
	res := make([]field.Element, len(p.coeffs)+len(q.coeffs)-1)
	for k := range res {
		res[k] = p.f.Zero()
	}
	for i := range p.coeffs {
		if p.coeffs[i].IsZero() {
			continue
		}
		for j := range q.coeffs {
			res[i+j] = res[i+j].Add(p.coeffs[i].Mul(q.coeffs[j]))
		}
	}
	return Polynomial{f: p.f, coeffs: trim(res)}
}

// DivRem divides p by d and returns (quotient, remainder) such that
// p = quotient·d + remainder with deg(remainder) < deg(d).
// It returns ErrDivisionByZero if d is the zero polynomial.
func (p Polynomial) DivRem(d Polynomial) (quotient, remainder Polynomial, err error) {
	p.mustMatch(d)
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	}
	if p.Degree() < d.Degree() {
		return Zero(p.f), p, nil
	}

	// d is normalised, its leading coefficient is non-zero
	lcInv, err := d.LeadingCoefficient().Inverse()
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}

	rem := p.Coefficients()
	dd := d.Degree()
	q := make([]field.Element, p.Degree()-dd+1)
	for k := len(q) - 1; k >= 0; k-- {
		// eliminate the coefficient of x^(k+dd)
		c := rem[k+dd].Mul(lcInv)
		q[k] = c
		if c.IsZero() {
			continue
		}
		for j := 0; j <= dd; j++ {
			rem[k+j] = rem[k+j].Sub(c.Mul(d.coeffs[j]))
		}
	}

	return Polynomial{f: p.f, coeffs: trim(q)}, Polynomial{f: p.f, coeffs: trim(rem[:dd])}, nil
}

// Eval returns p(x) using Horner's method.
func (p Polynomial) Eval(x field.Element) field.Element {
	if !p.f.Equal(x.Field()) {
		panic("polynomial: evaluation point is not an element of " + p.f.String())
	}
	res := p.f.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		res = res.Mul(x).Add(p.coeffs[i])
	}
	return res
}

// String returns p with decreasing powers, e.g. "3x^2 + 2x + 1".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sbb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		if sbb.Len() > 0 {
			sbb.WriteString(" + ")
		}
		if !c.IsOne() || i == 0 {
			sbb.WriteString(c.String())
		}
		switch i {
		case 0:
		case 1:
			sbb.WriteString("x")
		default:
			sbb.WriteString("x^")
			sbb.WriteString(strconv.Itoa(i))
		}
	}
	return sbb.String()
}
