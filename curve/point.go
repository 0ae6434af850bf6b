package curve

import (
	"math/big"

	"github.com/tumberger/zkcore/field"
)

// Point is either an affine point (X, Y) of a curve or the point at infinity.
// Points are immutable values; the zero value is not a valid point.
type Point struct {
	curve    *Curve
	x, y     field.Element
	infinity bool
}

// IsInfinity reports whether p is the group identity
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Affine returns the coordinates of p. ok is false for the point at infinity,
// which has no affine coordinates.
func (p Point) Affine() (x, y field.Element, ok bool) {
	if p.infinity {
		return field.Element{}, field.Element{}, false
	}
	return p.x, p.y, true
}

// Curve returns the curve p belongs to
func (p Point) Curve() *Curve {
	return p.curve
}

// Marshal returns X ‖ Y, each coordinate encoded big-endian on the base field
// byte length. The point at infinity encodes as all zeroes ((0, 0) is never on
// a curve with b != 0).
func (p Point) Marshal() []byte {
	n := p.curve.base.ByteLen()
	res := make([]byte, 2*n)
	if p.infinity {
		return res
	}
	copy(res[:n], p.x.Bytes())
	copy(res[n:], p.y.Bytes())
	return res
}

// String implements fmt.Stringer
func (p Point) String() string {
	if p.curve == nil {
		return "<nil>"
	}
	if p.infinity {
		return "∞"
	}
	return "(" + p.x.String() + ", " + p.y.String() + ")"
}

// Equal reports whether p and q are the same point.
func (c *Curve) Equal(p, q Point) bool {
	c.mustOwn(p, q)
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg outputs -p
func (c *Curve) Neg(p Point) Point {
	c.mustOwn(p)
	if p.infinity {
		return p
	}
	return Point{curve: c, x: p.x, y: p.y.Neg()}
}

// Add returns p + q using the affine chord-and-tangent formulas.
//
// The slope (q.y-p.y)/(q.x-p.x) is only computed for distinct abscissas;
// equal abscissas are routed either to Double (p == q) or to the identity
// (p == -q).
func (c *Curve) Add(p, q Point) Point {
	c.mustOwn(p, q)
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Equal(q.x) {
		if p.y.Equal(q.y) {
			return c.Double(p)
		}
		// q = -p
		return c.Infinity()
	}

	// compute lambda = (q.y-p.y)/(q.x-p.x)
	lambda, err := q.y.Sub(p.y).Div(q.x.Sub(p.x))
	if err != nil {
		// q.x != p.x
		panic(err)
	}
	return c.chord(lambda, p, q.x)
}

// Sub returns p - q
func (c *Curve) Sub(p, q Point) Point {
	return c.Add(p, c.Neg(q))
}

// Double returns 2p.
func (c *Curve) Double(p Point) Point {
	c.mustOwn(p)
	if p.infinity || p.y.IsZero() {
		// vertical tangent
		return c.Infinity()
	}

	// compute lambda = (3*p.x**2+a)/2*p.y, here a=0 (j invariant 0 curve)
	x2 := p.x.Square()
	lambda, err := x2.Double().Add(x2).Div(p.y.Double())
	if err != nil {
		// p.y != 0 and the characteristic is odd
		panic(err)
	}
	return c.chord(lambda, p, p.x)
}

// chord completes an addition once the slope is known:
// xr = lambda²-p.x-qx, yr = lambda(p.x-xr) - p.y
func (c *Curve) chord(lambda field.Element, p Point, qx field.Element) Point {
	xr := lambda.Square().Sub(p.x).Sub(qx)
	yr := lambda.Mul(p.x.Sub(xr)).Sub(p.y)
	return Point{curve: c, x: xr, y: yr}
}

// ScalarMul returns [k]p using left-to-right double-and-add over the bits of
// |k|. k is not reduced modulo the group order. A negative k yields -[|k|]p.
func (c *Curve) ScalarMul(p Point, k *big.Int) Point {
	c.mustOwn(p)
	if k.Sign() == 0 || p.infinity {
		return c.Infinity()
	}

	e := new(big.Int).Abs(k)
	res := c.Infinity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		res = c.Double(res)
		if e.Bit(i) == 1 {
			res = c.Add(res, p)
		}
	}

	if k.Sign() < 0 {
		return c.Neg(res)
	}
	return res
}

// ScalarMulElement returns [s]p for an element s of the scalar field.
func (c *Curve) ScalarMulElement(p Point, s field.Element) Point {
	if !c.scalar.Equal(s.Field()) {
		panic("curve: scalar is not an element of the scalar field of " + c.name)
	}
	return c.ScalarMul(p, s.BigInt())
}

// ScalarMulBase returns [k]G where G is the curve generator.
func (c *Curve) ScalarMulBase(k *big.Int) Point {
	return c.ScalarMul(c.g, k)
}
