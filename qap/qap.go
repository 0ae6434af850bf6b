// Package qap turns a satisfied Rank-1 Constraint System into a Quadratic
// Arithmetic Program.
//
// Every column j of L, R and O is interpolated into polynomials Uⱼ, Vⱼ, Wⱼ
// taking the column values at the evaluation points p₀, ..., pₙ₋₁. For a
// witness w,
//
//	term1 = Σ wⱼ·Uⱼ    term2 = Σ wⱼ·Vⱼ    term3 = Σ wⱼ·Wⱼ
//
// and w satisfies the system iff term1·term2 - term3 vanishes at every
// point, that is iff it is divisible by T = Π (x - pᵢ). The quotient is H.
package qap

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tumberger/zkcore/constraint"
	"github.com/tumberger/zkcore/debug"
	"github.com/tumberger/zkcore/field"
	"github.com/tumberger/zkcore/logger"
	"github.com/tumberger/zkcore/polynomial"
)

var (
	// ErrDivisibility is returned when term1·term2 - term3 is not a multiple of T.
	ErrDivisibility = errors.New("qap: term1·term2 - term3 is not divisible by T")

	// ErrInvalidEvaluationPoints is returned for evaluation points that are
	// not one distinct non-zero element per constraint.
	ErrInvalidEvaluationPoints = errors.New("qap: invalid evaluation points")
)

// Artifacts are the polynomials produced by Transform.
type Artifacts struct {
	Points []field.Element // evaluation point of each constraint

	U, V, W []polynomial.Polynomial // one per wire, from L, R and O

	Term1, Term2, Term3 polynomial.Polynomial
	T                   polynomial.Polynomial // vanishing polynomial of Points
	H                   polynomial.Polynomial // (Term1·Term2 - Term3) / T
}

// Transform checks that witness satisfies system and computes the QAP
// polynomials.
//
// It returns a *constraint.UnsatisfiedConstraintError if a row doesn't hold,
// and ErrDivisibility if the combined polynomial is not divisible by T.
func Transform(system *constraint.R1CS, witness []field.Element, opts ...Option) (*Artifacts, error) {
	opt, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	f := system.Field()
	nbConstraints, nbWires := system.GetNbConstraints(), system.GetNbWires()

	log := logger.Logger().With().Int("nbConstraints", nbConstraints).Int("nbWires", nbWires).Logger()
	log.Debug().Str("field", f.String()).Msg("transforming r1cs to qap")

	if opt.Points == nil {
		opt.Points = DefaultPoints(f, nbConstraints)
	}
	if err := checkPoints(f, opt.Points, nbConstraints); err != nil {
		return nil, err
	}

	if err := system.IsSatisfied(witness); err != nil {
		return nil, err
	}

	a := &Artifacts{
		Points: opt.Points,
		U:      make([]polynomial.Polynomial, nbWires),
		V:      make([]polynomial.Polynomial, nbWires),
		W:      make([]polynomial.Polynomial, nbWires),
	}
	if err := a.interpolateColumns(system, opt.NbTasks); err != nil {
		return nil, err
	}

	a.Term1 = combine(f, a.U, witness)
	a.Term2 = combine(f, a.V, witness)
	a.Term3 = combine(f, a.W, witness)
	a.T = polynomial.Vanishing(f, a.Points)

	if a.H, err = Quotient(a.Term1, a.Term2, a.Term3, a.T); err != nil {
		return nil, err
	}

	log.Info().
		Int("degreeT", a.T.Degree()).
		Int("degreeH", a.H.Degree()).
		Msg("qap computed")

	return a, nil
}

// interpolateColumns fills U, V and W; columns are processed concurrently.
func (a *Artifacts) interpolateColumns(system *constraint.R1CS, nbTasks int) error {
	var eg errgroup.Group
	eg.SetLimit(nbTasks)
	for j := 0; j < system.GetNbWires(); j++ {
		j := j
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%v\n%s", r, debug.Stack())
				}
			}()
			l, r, o := system.Columns(j)
			if a.U[j], err = polynomial.Interpolate(a.Points, l); err != nil {
				return fmt.Errorf("interpolate column %d of L: %w", j, err)
			}
			if a.V[j], err = polynomial.Interpolate(a.Points, r); err != nil {
				return fmt.Errorf("interpolate column %d of R: %w", j, err)
			}
			if a.W[j], err = polynomial.Interpolate(a.Points, o); err != nil {
				return fmt.Errorf("interpolate column %d of O: %w", j, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

// combine returns Σ witness[j]·columns[j]
func combine(f *field.Field, columns []polynomial.Polynomial, witness []field.Element) polynomial.Polynomial {
	res := polynomial.Zero(f)
	for j := range columns {
		res = res.Add(columns[j].ScalarMul(witness[j]))
	}
	return res
}

// Quotient returns (term1·term2 - term3) / t, or ErrDivisibility if the
// remainder is not zero.
func Quotient(term1, term2, term3, t polynomial.Polynomial) (polynomial.Polynomial, error) {
	h, rem, err := term1.Mul(term2).Sub(term3).DivRem(t)
	if err != nil {
		return polynomial.Polynomial{}, err
	}
	if !rem.IsZero() {
		return polynomial.Polynomial{}, fmt.Errorf("%w: remainder %s", ErrDivisibility, rem)
	}
	return h, nil
}

// Verify checks the polynomial identity term1·term2 - term3 = H·T.
func (a *Artifacts) Verify() error {
	if !a.Term1.Mul(a.Term2).Sub(a.Term3).Equal(a.H.Mul(a.T)) {
		return ErrDivisibility
	}
	return nil
}

// CheckAt reports whether term1(z)·term2(z) - term3(z) = H(z)·T(z).
func (a *Artifacts) CheckAt(z field.Element) bool {
	lhs := a.Term1.Eval(z).Mul(a.Term2.Eval(z)).Sub(a.Term3.Eval(z))
	return lhs.Equal(a.H.Eval(z).Mul(a.T.Eval(z)))
}
