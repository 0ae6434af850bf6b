package qap_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/tumberger/zkcore/constraint"
	"github.com/tumberger/zkcore/field"
	"github.com/tumberger/zkcore/internal/circuits"
	"github.com/tumberger/zkcore/polynomial"
	"github.com/tumberger/zkcore/qap"
	"github.com/tumberger/zkcore/test"
)

func TestCircuits(t *testing.T) {
	var names []string
	for name := range circuits.Circuits {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tc := circuits.Circuits[name]
		t.Run(name, func(t *testing.T) {
			assert := test.NewAssert(t)
			assert.QAPSucceeded(tc.System, tc.ValidWitness)
			for _, w := range tc.InvalidWitness {
				assert.QAPFailed(tc.System, w, constraint.ErrUnsatisfiedConstraint)
			}
		})
	}
}

func TestQuarticGF79(t *testing.T) {
	assert := test.NewAssert(t)

	tc := circuits.Circuits["quartic/gf79"]
	f := circuits.GF79
	a := assert.QAPSucceeded(tc.System, tc.ValidWitness)

	assert.True(a.T.Equal(polynomial.FromInt64(f, 24, -50, 35, -10, 1)))
	assert.True(a.Term1.Equal(polynomial.FromInt64(f, 59, 28, 76, 78)))
	assert.True(a.Term2.Equal(polynomial.FromInt64(f, 54, 20, 77, 11)))
	assert.True(a.Term3.Equal(polynomial.FromInt64(f, 32, 20, 40, 3)))
	assert.True(a.H.Equal(polynomial.FromInt64(f, 59, 17, 68)))

	// column of y in L: [0, 0, -5, 0]
	assert.True(a.U[3].Equal(polynomial.FromInt64(f, 59, 35, 22, 42)))
	// the constant wire is never used
	assert.True(a.U[0].IsZero())
	assert.True(a.V[0].IsZero())
	assert.True(a.W[0].IsZero())
}

func TestUnsatisfiedRow(t *testing.T) {
	assert := test.NewAssert(t)

	tc := circuits.Circuits["quartic/bn254"]
	_, err := qap.Transform(tc.System, tc.InvalidWitness[0])
	var uErr *constraint.UnsatisfiedConstraintError
	assert.True(errors.As(err, &uErr))
	assert.Equal(3, uErr.Row)
}

func TestDivisibilityFailure(t *testing.T) {
	assert := test.NewAssert(t)

	tc := circuits.Circuits["quartic/gf79"]
	a := assert.QAPSucceeded(tc.System, tc.ValidWitness)

	// T with a root that isn't an evaluation point
	wrongT := polynomial.Vanishing(circuits.GF79, circuits.GF79.Elements(1, 2, 3, 5))
	_, err := qap.Quotient(a.Term1, a.Term2, a.Term3, wrongT)
	assert.ErrorIs(err, qap.ErrDivisibility)

	_, err = qap.Quotient(a.Term1, a.Term2, a.Term3, polynomial.Zero(circuits.GF79))
	assert.ErrorIs(err, polynomial.ErrDivisionByZero)

	h, err := qap.Quotient(a.Term1, a.Term2, a.Term3, a.T)
	assert.NoError(err)
	assert.True(h.Equal(a.H))

	broken := *a
	broken.H = a.H.Add(polynomial.FromInt64(circuits.GF79, 1))
	assert.ErrorIs(broken.Verify(), qap.ErrDivisibility)
	assert.False(broken.CheckAt(circuits.GF79.NewElement(6)))
}

func TestEvaluationPoints(t *testing.T) {
	assert := test.NewAssert(t)

	tc := circuits.Circuits["quartic/gf79"]
	f := circuits.GF79

	a := assert.QAPSucceeded(tc.System, tc.ValidWitness, qap.WithEvaluationPoints(f.Elements(3, 10, 42, 78)...))
	assert.True(a.T.Equal(polynomial.Vanishing(f, f.Elements(3, 10, 42, 78))))

	for _, points := range [][]field.Element{
		f.Elements(1, 2, 3),
		f.Elements(1, 2, 3, 4, 5),
		f.Elements(1, 2, 2, 4),
		f.Elements(1, 2, 81, 4), // 81 ≡ 2
		f.Elements(0, 1, 2, 3),
		circuits.BN254.Elements(1, 2, 3, 4),
	} {
		assert.QAPFailed(tc.System, tc.ValidWitness, qap.ErrInvalidEvaluationPoints, qap.WithEvaluationPoints(points...))
	}

	_, err := qap.Transform(tc.System, tc.ValidWitness, qap.WithNbTasks(0))
	assert.Error(err)
}

func TestDeterminism(t *testing.T) {
	assert := test.NewAssert(t)

	tc := circuits.Circuits["product/bn254"]
	a1, err := qap.Transform(tc.System, tc.ValidWitness)
	assert.NoError(err)
	a2, err := qap.Transform(tc.System, tc.ValidWitness, qap.WithNbTasks(1))
	assert.NoError(err)

	for j := range a1.U {
		assert.True(a1.U[j].Equal(a2.U[j]))
		assert.True(a1.V[j].Equal(a2.V[j]))
		assert.True(a1.W[j].Equal(a2.W[j]))
	}
	assert.True(a1.H.Equal(a2.H))
	assert.True(a1.Challenge().Equal(a2.Challenge()))

	// the challenge depends on the witness
	w := []field.Element{circuits.BN254.One()}
	w = append(w, circuits.BN254.Elements(420, 2, 3, 10, 7, 6, 70)...)
	a3, err := qap.Transform(tc.System, w)
	assert.NoError(err)
	assert.False(a3.Challenge().Equal(a1.Challenge()))
}

func TestSolveThenTransform(t *testing.T) {
	for name, tc := range circuits.Circuits {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert := test.NewAssert(t)
			witness := assert.SolvingSucceeded(tc.System, tc.Assignment)
			for i := range witness {
				assert.True(witness[i].Equal(tc.ValidWitness[i]), "wire %d", i)
			}
			assert.QAPSucceeded(tc.System, witness)
		})
	}
}
