// Package test provides assertion helpers for constraint systems and QAPs
// and a cross-check of the field arithmetic against gnark-crypto.
package test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tumberger/zkcore/constraint"
	"github.com/tumberger/zkcore/field"
	"github.com/tumberger/zkcore/qap"
)

// Assert is a helper to test constraint systems
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience
func NewAssert(t *testing.T) *Assert {
	return &Assert{t, require.New(t)}
}

// QAPSucceeded transforms system and witness into a QAP and checks the
// result: the column polynomials take the matrix values at the evaluation
// points, the divisibility identity holds both as polynomials and at the
// derived challenge, and a single-task run gives identical polynomials.
func (assert *Assert) QAPSucceeded(system *constraint.R1CS, witness []field.Element, opts ...qap.Option) *qap.Artifacts {
	assert.t.Helper()

	assert.checkIsSolved(system, witness)

	a, err := qap.Transform(system, witness, opts...)
	assert.NoError(err, "transforming r1cs to qap")

	n := system.GetNbConstraints()
	assert.Len(a.Points, n)
	assert.Equal(n, a.T.Degree())
	if !a.H.IsZero() {
		assert.LessOrEqual(a.H.Degree(), n-2)
	}

	L, R, O := system.Matrices()
	for j := 0; j < system.GetNbWires(); j++ {
		assert.LessOrEqual(a.U[j].Degree(), n-1)
		for i, p := range a.Points {
			assert.True(a.U[j].Eval(p).Equal(L[i][j]), "U[%d](p%d) != L[%d][%d]", j, i, i, j)
			assert.True(a.V[j].Eval(p).Equal(R[i][j]), "V[%d](p%d) != R[%d][%d]", j, i, i, j)
			assert.True(a.W[j].Eval(p).Equal(O[i][j]), "W[%d](p%d) != O[%d][%d]", j, i, i, j)
		}
	}

	assert.NoError(a.Verify())
	assert.True(a.CheckAt(a.Challenge()), "identity doesn't hold at the challenge")

	sequential, err := qap.Transform(system, witness, append(opts, qap.WithNbTasks(1))...)
	assert.NoError(err)
	assert.True(sequential.H.Equal(a.H), "H depends on the number of tasks")
	assert.True(sequential.Challenge().Equal(a.Challenge()), "challenge depends on the number of tasks")

	return a
}

// QAPFailed checks that the transform fails with an error matching target.
func (assert *Assert) QAPFailed(system *constraint.R1CS, witness []field.Element, target error, opts ...qap.Option) {
	assert.t.Helper()

	_, err := qap.Transform(system, witness, opts...)
	assert.ErrorIs(err, target)
}

// SolvingSucceeded completes assignment with the witness solver and checks
// the witness satisfies the system.
func (assert *Assert) SolvingSucceeded(system *constraint.R1CS, assignment map[int]field.Element, opts ...constraint.SolverOption) []field.Element {
	assert.t.Helper()

	witness, err := system.Solve(assignment, opts...)
	assert.NoError(err, "solving witness")
	for wID, v := range assignment {
		assert.True(witness[wID].Equal(v), "assigned wire %d was modified", wID)
	}
	assert.NoError(system.IsSatisfied(witness))
	assert.checkIsSolved(system, witness)
	return witness
}

// SolvingFailed checks that the solver fails with an error matching target.
func (assert *Assert) SolvingFailed(system *constraint.R1CS, assignment map[int]field.Element, target error, opts ...constraint.SolverOption) {
	assert.t.Helper()

	_, err := system.Solve(assignment, opts...)
	assert.ErrorIs(err, target)
}

// checkIsSolved cross-checks the witness with gnark-crypto when the field is supported.
func (assert *Assert) checkIsSolved(system *constraint.R1CS, witness []field.Element) {
	err := IsSolved(system, witness)
	if errors.Is(err, ErrUnsupportedField) {
		return
	}
	assert.NoError(err, "gnark-crypto reference")
}
