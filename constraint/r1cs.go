// Package constraint holds Rank-1 Constraint Systems: for every row i of the
// matrices L, R and O and a witness w,
//
//	(Lᵢ·w) * (Rᵢ·w) = Oᵢ·w
//
// where · is the dot product over the field. By convention slot 0 of the
// witness holds the constant 1.
package constraint

import (
	"errors"
	"fmt"

	"github.com/tumberger/zkcore/field"
)

var (
	// ErrUnsatisfiedConstraint is matched (errors.Is) by every *UnsatisfiedConstraintError.
	ErrUnsatisfiedConstraint = errors.New("constraint: unsatisfied constraint")

	// ErrMalformedMatrices is returned when L, R and O are empty, ragged or of different shapes.
	ErrMalformedMatrices = errors.New("constraint: malformed constraint matrices")

	// ErrWitnessSize is returned when the witness length differs from the number of wires.
	ErrWitnessSize = errors.New("constraint: witness size does not match the number of wires")
)

// UnsatisfiedConstraintError reports the first row i with (Lᵢ·w)*(Rᵢ·w) != Oᵢ·w.
type UnsatisfiedConstraintError struct {
	Row     int
	L, R, O field.Element // evaluated linear expressions
}

func (e *UnsatisfiedConstraintError) Error() string {
	return fmt.Sprintf("constraint #%d is not satisfied: %s ⋅ %s != %s", e.Row, e.L, e.R, e.O)
}

// Is makes errors.Is(err, ErrUnsatisfiedConstraint) true.
func (e *UnsatisfiedConstraintError) Is(target error) bool {
	return target == ErrUnsatisfiedConstraint
}

// Term is coeff·wire, the coefficient being referenced by its id in the
// CoeffTable of the system.
type Term struct {
	CID int // coefficient id
	VID int // wire id
}

// LinearExpression is a sum of terms with non-zero coefficients.
type LinearExpression []Term

// R1C is the sparse form of one row: L * R == O
type R1C struct {
	L, R, O LinearExpression
}

// WireIterator returns an iterator over the wires of the constraint; it
// returns -1 once exhausted. A wire used in several expressions is returned
// once per occurrence.
func (c *R1C) WireIterator() func() int {
	curr := 0
	exprs := [3]LinearExpression{c.L, c.R, c.O}
	return func() int {
		i := curr
		for e := 0; e < 3; e++ {
			if i < len(exprs[e]) {
				curr++
				return exprs[e][i].VID
			}
			i -= len(exprs[e])
		}
		return -1
	}
}

// R1CS is an immutable constraint system over a prime field, kept both as
// dense matrices and as sparse rows.
type R1CS struct {
	field   *field.Field
	l, r, o [][]field.Element

	Constraints  []R1C
	Coefficients CoeffTable
}

// New validates L, R, O and returns the constraint system. The three
// matrices must have the same, non-zero, number of rows and every row the
// same, non-zero, number of columns. The matrices are copied.
func New(f *field.Field, L, R, O [][]field.Element) (*R1CS, error) {
	nbRows := len(L)
	if nbRows == 0 || len(L[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrMalformedMatrices)
	}
	nbWires := len(L[0])
	for k, m := range [3][][]field.Element{L, R, O} {
		name := "LRO"[k : k+1]
		if len(m) != nbRows {
			return nil, fmt.Errorf("%w: %s has %d rows, expected %d", ErrMalformedMatrices, name, len(m), nbRows)
		}
		for i := range m {
			if len(m[i]) != nbWires {
				return nil, fmt.Errorf("%w: row %d of %s has %d columns, expected %d", ErrMalformedMatrices, i, name, len(m[i]), nbWires)
			}
			for j := range m[i] {
				if !f.Equal(m[i][j].Field()) {
					panic(fmt.Sprintf("constraint: %s[%d][%d] is not an element of %s", name, i, j, f))
				}
			}
		}
	}

	system := &R1CS{
		field:        f,
		l:            copyMatrix(L),
		r:            copyMatrix(R),
		o:            copyMatrix(O),
		Constraints:  make([]R1C, nbRows),
		Coefficients: NewCoeffTable(f),
	}
	for i := 0; i < nbRows; i++ {
		system.Constraints[i] = R1C{
			L: system.sparse(system.l[i]),
			R: system.sparse(system.r[i]),
			O: system.sparse(system.o[i]),
		}
	}
	return system, nil
}

// NewFromInt64 is like New with integer matrices reduced into f; negative
// entries map to q - |v|.
func NewFromInt64(f *field.Field, L, R, O [][]int64) (*R1CS, error) {
	toField := func(m [][]int64) [][]field.Element {
		res := make([][]field.Element, len(m))
		for i := range m {
			res[i] = f.Elements(m[i]...)
		}
		return res
	}
	return New(f, toField(L), toField(R), toField(O))
}

func copyMatrix(m [][]field.Element) [][]field.Element {
	res := make([][]field.Element, len(m))
	for i := range m {
		res[i] = make([]field.Element, len(m[i]))
		copy(res[i], m[i])
	}
	return res
}

func (system *R1CS) sparse(row []field.Element) LinearExpression {
	var le LinearExpression
	for j, c := range row {
		if c.IsZero() {
			continue
		}
		le = append(le, Term{CID: system.Coefficients.CoeffID(c), VID: j})
	}
	return le
}

// Field returns the field of the system
func (system *R1CS) Field() *field.Field {
	return system.field
}

// GetNbConstraints returns the number of rows
func (system *R1CS) GetNbConstraints() int {
	return len(system.l)
}

// GetNbWires returns the number of columns, i.e. the witness length
func (system *R1CS) GetNbWires() int {
	return len(system.l[0])
}

// Matrices returns copies of L, R and O.
func (system *R1CS) Matrices() (L, R, O [][]field.Element) {
	return copyMatrix(system.l), copyMatrix(system.r), copyMatrix(system.o)
}

// Columns returns column j of L, R and O.
func (system *R1CS) Columns(j int) (l, r, o []field.Element) {
	n := system.GetNbConstraints()
	l, r, o = make([]field.Element, n), make([]field.Element, n), make([]field.Element, n)
	for i := 0; i < n; i++ {
		l[i], r[i], o[i] = system.l[i][j], system.r[i][j], system.o[i][j]
	}
	return
}

// Evaluate returns the dot products Lᵢ·w, Rᵢ·w and Oᵢ·w for each row i.
func (system *R1CS) Evaluate(witness []field.Element) (l, r, o []field.Element, err error) {
	if err := system.checkWitness(witness); err != nil {
		return nil, nil, nil, err
	}
	n := system.GetNbConstraints()
	l, r, o = make([]field.Element, n), make([]field.Element, n), make([]field.Element, n)
	for i := 0; i < n; i++ {
		l[i] = field.InnerProduct(system.l[i], witness)
		r[i] = field.InnerProduct(system.r[i], witness)
		o[i] = field.InnerProduct(system.o[i], witness)
	}
	return
}

// IsSatisfied returns nil if the witness satisfies every row, and an
// *UnsatisfiedConstraintError for the first failing row otherwise.
func (system *R1CS) IsSatisfied(witness []field.Element) error {
	l, r, o, err := system.Evaluate(witness)
	if err != nil {
		return err
	}
	for i := range l {
		if !l[i].Mul(r[i]).Equal(o[i]) {
			return &UnsatisfiedConstraintError{Row: i, L: l[i], R: r[i], O: o[i]}
		}
	}
	return nil
}

func (system *R1CS) checkWitness(witness []field.Element) error {
	if len(witness) != system.GetNbWires() {
		return fmt.Errorf("%w: got %d, expected %d", ErrWitnessSize, len(witness), system.GetNbWires())
	}
	for i := range witness {
		if !system.field.Equal(witness[i].Field()) {
			panic(fmt.Sprintf("constraint: witness[%d] is not an element of %s", i, system.field))
		}
	}
	return nil
}
