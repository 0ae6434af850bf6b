// Package field implements arithmetic in prime fields GF(q).
//
// The modulus is carried by an explicit *Field handle; every Element keeps a
// pointer to the field it belongs to. Elements of two different fields must
// never be combined: doing so is a programming error and panics.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when inverting (or dividing by) zero.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrInvalidModulus is returned by New when the modulus is not a prime > 1.
	ErrInvalidModulus = errors.New("field: modulus must be a prime greater than 1")

	// ErrInvalidString is returned by SetString when the input can't be parsed.
	ErrInvalidString = errors.New("field: invalid integer string")
)

// number of Miller-Rabin rounds used to validate a modulus
const primalityRounds = 20

// Field is a prime field GF(q). It is immutable once constructed.
type Field struct {
	q       *big.Int
	qMinus1 *big.Int
	byteLen int
}

// New returns the field of integers modulo q. q must be prime.
func New(q *big.Int) (*Field, error) {
	if q == nil || q.Cmp(big.NewInt(2)) < 0 || !q.ProbablyPrime(primalityRounds) {
		return nil, ErrInvalidModulus
	}
	f := &Field{
		q:       new(big.Int).Set(q),
		qMinus1: new(big.Int).Sub(q, big.NewInt(1)),
		byteLen: (q.BitLen() + 7) / 8,
	}
	return f, nil
}

// MustNew is like New but panics on invalid moduli. It is meant for
// package-level field definitions.
func MustNew(q *big.Int) *Field {
	f, err := New(q)
	if err != nil {
		panic(fmt.Sprintf("%v: %s", err, q))
	}
	return f
}

// Modulus returns a copy of q.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.q)
}

// BitLen returns the bit length of q.
func (f *Field) BitLen() int {
	return f.q.BitLen()
}

// ByteLen returns the number of bytes of the fixed width encoding of an element.
func (f *Field) ByteLen() int {
	return f.byteLen
}

// Equal reports whether f and g have the same modulus.
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return f.q.Cmp(g.q) == 0
}

// String implements fmt.Stringer
func (f *Field) String() string {
	return "GF(" + f.q.String() + ")"
}

// FromBigInt returns v mod q.
func (f *Field) FromBigInt(v *big.Int) Element {
	r := new(big.Int).Mod(v, f.q)
	return Element{f: f, v: r}
}

// NewElement returns v mod q. Negative values are mapped to q - |v| mod q.
func (f *Field) NewElement(v int64) Element {
	return f.FromBigInt(big.NewInt(v))
}

// FromUint64 returns v mod q.
func (f *Field) FromUint64(v uint64) Element {
	return f.FromBigInt(new(big.Int).SetUint64(v))
}

// SetString parses s (base prefix accepted, as in big.Int.SetString with base 0)
// and reduces it mod q.
func (f *Field) SetString(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrInvalidString, s)
	}
	return f.FromBigInt(v), nil
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{f: f, v: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{f: f, v: big.NewInt(1)}
}

// Elements maps each int64 in values to the field.
func (f *Field) Elements(values ...int64) []Element {
	res := make([]Element, len(values))
	for i, v := range values {
		res[i] = f.NewElement(v)
	}
	return res
}
