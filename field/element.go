package field

import (
	"math/big"
)

// Element is a value of a prime field, always in canonical form [0, q).
//
// Elements are immutable: every operation returns a fresh Element and never
// modifies its operands. The zero value is not a valid element; obtain
// elements through a *Field.
type Element struct {
	f *Field
	v *big.Int
}

func (z Element) mustBeValid() {
	if z.f == nil {
		panic("field: use of uninitialized element")
	}
}

// mustMatch panics if x and y don't belong to the same field.
func mustMatch(x, y Element) {
	x.mustBeValid()
	y.mustBeValid()
	if !x.f.Equal(y.f) {
		panic("field: mixing elements of " + x.f.String() + " and " + y.f.String())
	}
}

func (z Element) reduced(r *big.Int) Element {
	return Element{f: z.f, v: r.Mod(r, z.f.q)}
}

// Field returns the field z belongs to.
func (z Element) Field() *Field {
	return z.f
}

// Add returns z + y mod q
func (z Element) Add(y Element) Element {
	mustMatch(z, y)
	return z.reduced(new(big.Int).Add(z.v, y.v))
}

// Sub returns z - y mod q
func (z Element) Sub(y Element) Element {
	mustMatch(z, y)
	return z.reduced(new(big.Int).Sub(z.v, y.v))
}

// Neg returns -z mod q
func (z Element) Neg() Element {
	z.mustBeValid()
	if z.v.Sign() == 0 {
		return z.f.Zero()
	}
	return Element{f: z.f, v: new(big.Int).Sub(z.f.q, z.v)}
}

// Double returns 2z mod q
func (z Element) Double() Element {
	z.mustBeValid()
	return z.reduced(new(big.Int).Lsh(z.v, 1))
}

// Mul returns z * y mod q
func (z Element) Mul(y Element) Element {
	mustMatch(z, y)
	return z.reduced(new(big.Int).Mul(z.v, y.v))
}

// Square returns z² mod q
func (z Element) Square() Element {
	z.mustBeValid()
	return z.reduced(new(big.Int).Mul(z.v, z.v))
}

// Inverse returns z⁻¹ mod q, computed with the extended Euclidean algorithm.
// It returns ErrDivisionByZero if z == 0.
func (z Element) Inverse() (Element, error) {
	z.mustBeValid()
	if z.v.Sign() == 0 {
		return Element{}, ErrDivisionByZero
	}
	r := new(big.Int).ModInverse(z.v, z.f.q)
	if r == nil {
		// unreachable for a prime modulus
		return Element{}, ErrDivisionByZero
	}
	return Element{f: z.f, v: r}, nil
}

// Div returns z / y mod q. It returns ErrDivisionByZero if y == 0.
func (z Element) Div(y Element) (Element, error) {
	mustMatch(z, y)
	yInv, err := y.Inverse()
	if err != nil {
		return Element{}, err
	}
	return z.Mul(yInv), nil
}

// Exp returns z^e mod q.
//
// A negative exponent is interpreted as (z⁻¹)^|e|; since the multiplicative
// group has order q-1, e is reduced mod (q-1) first. In that case z must be
// non-zero, otherwise ErrDivisionByZero is returned.
func (z Element) Exp(e *big.Int) (Element, error) {
	z.mustBeValid()
	if e.Sign() >= 0 {
		return Element{f: z.f, v: new(big.Int).Exp(z.v, e, z.f.q)}, nil
	}
	if z.v.Sign() == 0 {
		return Element{}, ErrDivisionByZero
	}
	// z^e = z^(e mod (q-1)) for z != 0
	r := new(big.Int).Mod(e, z.f.qMinus1)
	return Element{f: z.f, v: r.Exp(z.v, r, z.f.q)}, nil
}

// Pow returns z^n mod q
func (z Element) Pow(n uint64) Element {
	z.mustBeValid()
	return Element{f: z.f, v: new(big.Int).Exp(z.v, new(big.Int).SetUint64(n), z.f.q)}
}

// Equal reports whether z and y hold the same value.
// It panics if they belong to different fields.
func (z Element) Equal(y Element) bool {
	mustMatch(z, y)
	return z.v.Cmp(y.v) == 0
}

// Cmp compares the canonical integer representatives of z and y.
func (z Element) Cmp(y Element) int {
	mustMatch(z, y)
	return z.v.Cmp(y.v)
}

// IsZero reports whether z == 0
func (z Element) IsZero() bool {
	z.mustBeValid()
	return z.v.Sign() == 0
}

// IsOne reports whether z == 1
func (z Element) IsOne() bool {
	z.mustBeValid()
	return z.v.IsInt64() && z.v.Int64() == 1
}

// IsUint64 reports whether the canonical value of z fits in a uint64.
func (z Element) IsUint64() bool {
	z.mustBeValid()
	return z.v.IsUint64()
}

// Uint64 returns the canonical value of z truncated to 64 bits.
func (z Element) Uint64() uint64 {
	z.mustBeValid()
	return z.v.Uint64()
}

// BigInt returns a copy of the canonical value of z.
func (z Element) BigInt() *big.Int {
	z.mustBeValid()
	return new(big.Int).Set(z.v)
}

// Bytes returns the big-endian encoding of z on Field.ByteLen() bytes.
func (z Element) Bytes() []byte {
	z.mustBeValid()
	res := make([]byte, z.f.byteLen)
	z.v.FillBytes(res)
	return res
}

// String returns the decimal representation of z.
func (z Element) String() string {
	if z.f == nil {
		return "<nil>"
	}
	return z.v.String()
}
