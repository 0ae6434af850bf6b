/*
Package curve implements the group law of elliptic curves in short
Weierstrass form with a = 0 (j-invariant 0),

	y² = x³ + b

over a prime base field, in affine coordinates with an explicit point at
infinity. BN254 G1 is the default curve; BLS12-381 G1 and secp256k1 are
provided as presets generated from the same template.
*/
package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/tumberger/zkcore/field"
)

var (
	// ErrInvalidPoint is returned when the coordinates of an affine point don't
	// satisfy the curve equation, or are not canonical base field values.
	ErrInvalidPoint = errors.New("curve: point is not on the curve")
)

// Params describes a curve y² = x³ + b with a generator of a subgroup of
// prime order Order.
type Params struct {
	Name string

	// Modulus of the base field
	Modulus *big.Int
	// Order of the subgroup generated by (Gx, Gy), i.e. the scalar field modulus
	Order *big.Int

	B      *big.Int
	Gx, Gy *big.Int
}

// Curve is an immutable handle on a curve, its base field and scalar field.
type Curve struct {
	name   string
	base   *field.Field
	scalar *field.Field
	b      field.Element
	g      Point
}

// New validates p and returns the corresponding curve. The generator must lie
// on the curve and have order p.Order.
func New(p Params) (*Curve, error) {
	base, err := field.New(p.Modulus)
	if err != nil {
		return nil, fmt.Errorf("base field: %w", err)
	}
	scalar, err := field.New(p.Order)
	if err != nil {
		return nil, fmt.Errorf("scalar field: %w", err)
	}
	c := &Curve{
		name:   p.Name,
		base:   base,
		scalar: scalar,
		b:      base.FromBigInt(p.B),
	}
	g, err := c.PointFromBigInt(p.Gx, p.Gy)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	c.g = g
	if !c.IsInSubgroup(g) {
		return nil, fmt.Errorf("generator of %s does not have order %s", p.Name, p.Order)
	}
	return c, nil
}

func mustNew(p Params) *Curve {
	c, err := New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the curve name
func (c *Curve) Name() string {
	return c.name
}

// BaseField returns the field the coordinates live in
func (c *Curve) BaseField() *field.Field {
	return c.base
}

// ScalarField returns the field of integers modulo the subgroup order
func (c *Curve) ScalarField() *field.Field {
	return c.scalar
}

// Order returns a copy of the subgroup order
func (c *Curve) Order() *big.Int {
	return c.scalar.Modulus()
}

// B returns the constant coefficient of the curve equation
func (c *Curve) B() field.Element {
	return c.b
}

// Generator returns the base point of the prime order subgroup.
func (c *Curve) Generator() Point {
	return c.g
}

// Infinity returns the point at infinity (group identity).
func (c *Curve) Infinity() Point {
	return Point{curve: c, infinity: true}
}

// Point returns the affine point (x, y). It returns ErrInvalidPoint if the
// point is not on the curve.
func (c *Curve) Point(x, y field.Element) (Point, error) {
	if !c.base.Equal(x.Field()) || !c.base.Equal(y.Field()) {
		panic("curve: coordinates are not in the base field of " + c.name)
	}
	if !c.onCurve(x, y) {
		return Point{}, fmt.Errorf("%w: (%s, %s)", ErrInvalidPoint, x, y)
	}
	return Point{curve: c, x: x, y: y}, nil
}

// PointFromBigInt returns the affine point (x, y). Coordinates must already
// be canonical, in [0, p): they are never reduced.
func (c *Curve) PointFromBigInt(x, y *big.Int) (Point, error) {
	q := c.base.Modulus()
	if x.Sign() < 0 || x.Cmp(q) >= 0 || y.Sign() < 0 || y.Cmp(q) >= 0 {
		return Point{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidPoint)
	}
	return c.Point(c.base.FromBigInt(x), c.base.FromBigInt(y))
}

// y² == x³ + b
func (c *Curve) onCurve(x, y field.Element) bool {
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(c.b)
	return lhs.Equal(rhs)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	c.mustOwn(p)
	if p.infinity {
		return true
	}
	return c.onCurve(p.x, p.y)
}

// IsInSubgroup reports whether [order]p == ∞.
func (c *Curve) IsInSubgroup(p Point) bool {
	return c.ScalarMul(p, c.scalar.Modulus()).IsInfinity()
}

// String implements fmt.Stringer
func (c *Curve) String() string {
	return c.name
}

func (c *Curve) mustOwn(points ...Point) {
	for _, p := range points {
		if p.curve == nil {
			panic("curve: use of uninitialized point")
		}
		if p.curve != c && !(p.curve.base.Equal(c.base) && p.curve.b.Equal(c.b)) {
			panic("curve: point of " + p.curve.name + " used with " + c.name)
		}
	}
}
