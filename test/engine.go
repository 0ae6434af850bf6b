package test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fp_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fp"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fr_secp256k1 "github.com/consensys/gnark-crypto/ecc/secp256k1/fr"

	"github.com/tumberger/zkcore/constraint"
	"github.com/tumberger/zkcore/debug"
	"github.com/tumberger/zkcore/field"
)

// ErrUnsupportedField is returned when gnark-crypto has no implementation
// of the field.
var ErrUnsupportedField = errors.New("test: no reference implementation for this field")

// engine re-computes field operations with the gnark-crypto implementation
// of the same field.
type engine[E any, ptE element[E]] struct {
	f *field.Field
}

type checker interface {
	isSolved(system *constraint.R1CS, witness []field.Element) error
	checkArithmetic(x, y field.Element) error
}

func newEngine(f *field.Field) (checker, error) {
	// yet another "type switch", it keeps generics away from the exported api.
	q := f.Modulus()
	if q.Cmp(ecc.BN254.ScalarField()) == 0 {
		return &engine[fr_bn254.Element, *fr_bn254.Element]{f: f}, nil
	}
	if q.Cmp(ecc.BN254.BaseField()) == 0 {
		return &engine[fp_bn254.Element, *fp_bn254.Element]{f: f}, nil
	}
	if q.Cmp(ecc.BLS12_381.ScalarField()) == 0 {
		return &engine[fr_bls12381.Element, *fr_bls12381.Element]{f: f}, nil
	}
	if q.Cmp(fr_secp256k1.Modulus()) == 0 {
		return &engine[fr_secp256k1.Element, *fr_secp256k1.Element]{f: f}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedField, f)
}

// IsSolved checks that witness satisfies system, computing the dot products
// with gnark-crypto. It returns ErrUnsupportedField (wrapped) for fields
// gnark-crypto doesn't implement.
func IsSolved(system *constraint.R1CS, witness []field.Element) (err error) {
	e, err := newEngine(system.Field())
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v\n%s", r, debug.Stack())
		}
	}()
	return e.isSolved(system, witness)
}

// CheckArithmetic compares the field operations on x and y with gnark-crypto.
func CheckArithmetic(x, y field.Element) error {
	e, err := newEngine(x.Field())
	if err != nil {
		return err
	}
	return e.checkArithmetic(x, y)
}

func (e *engine[E, ptE]) toElement(v field.Element) *E {
	var r E
	ptE(&r).SetBigInt(v.BigInt())
	return &r
}

func (e *engine[E, ptE]) fromElement(v *E) field.Element {
	return e.f.FromBigInt(new(big.Int).SetBytes(ptE(v).Marshal()))
}

func (e *engine[E, ptE]) dot(row []field.Element, witness []field.Element) *E {
	var res, tmp E
	for j := range row {
		ptE(&tmp).Mul(e.toElement(row[j]), e.toElement(witness[j]))
		ptE(&res).Add(&res, &tmp)
	}
	return &res
}

func (e *engine[E, ptE]) isSolved(system *constraint.R1CS, witness []field.Element) error {
	if len(witness) != system.GetNbWires() {
		return constraint.ErrWitnessSize
	}
	L, R, O := system.Matrices()
	for i := range L {
		l, r, o := e.dot(L[i], witness), e.dot(R[i], witness), e.dot(O[i], witness)
		var lr E
		ptE(&lr).Mul(l, r)
		if !ptE(&lr).Equal(o) {
			return &constraint.UnsatisfiedConstraintError{
				Row: i,
				L:   e.fromElement(l),
				R:   e.fromElement(r),
				O:   e.fromElement(o),
			}
		}
	}
	return nil
}

func (e *engine[E, ptE]) checkArithmetic(x, y field.Element) error {
	a, b := e.toElement(x), e.toElement(y)
	var res E

	check := func(op string, got field.Element, expected *E) error {
		if !got.Equal(e.fromElement(expected)) {
			return fmt.Errorf("%s(%s, %s): got %s, expected %s", op, x, y, got, ptE(expected).String())
		}
		return nil
	}

	if err := check("add", x.Add(y), ptE(&res).Add(a, b)); err != nil {
		return err
	}
	if err := check("sub", x.Sub(y), ptE(&res).Sub(a, b)); err != nil {
		return err
	}
	if err := check("mul", x.Mul(y), ptE(&res).Mul(a, b)); err != nil {
		return err
	}
	if err := check("neg", x.Neg(), ptE(&res).Neg(a)); err != nil {
		return err
	}
	if err := check("double", x.Double(), ptE(&res).Double(a)); err != nil {
		return err
	}
	if err := check("square", x.Square(), ptE(&res).Square(a)); err != nil {
		return err
	}
	if err := check("exp", x.Pow(y.BigInt().Uint64()), ptE(&res).Exp(*a, new(big.Int).SetUint64(y.BigInt().Uint64()))); err != nil {
		return err
	}
	if y.IsZero() {
		if _, err := x.Div(y); !errors.Is(err, field.ErrDivisionByZero) {
			return fmt.Errorf("div(%s, 0): expected %v, got %v", x, field.ErrDivisionByZero, err)
		}
		return nil
	}
	q, err := x.Div(y)
	if err != nil {
		return err
	}
	var inv E
	ptE(&inv).Inverse(b)
	return check("div", q, ptE(&res).Mul(a, &inv))
}
