package constraint

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tumberger/zkcore/debug"
	"github.com/tumberger/zkcore/field"
	"github.com/tumberger/zkcore/logger"
)

var (
	// ErrUnsolvable is returned when a missing wire can't be deduced from the
	// constraints: a row with several unknowns, an unknown multiplied by
	// itself or a zero divisor.
	ErrUnsolvable = errors.New("constraint: witness can't be solved")

	// ErrInvalidAssignment is returned for assignments outside the wire range.
	ErrInvalidAssignment = errors.New("constraint: invalid assignment")
)

// SolverConfig holds the solver options
type SolverConfig struct {
	NbTasks int
}

// SolverOption configures the solver
type SolverOption func(*SolverConfig) error

// WithNbTasks sets the maximum number of constraints solved concurrently
// within a level. Defaults to runtime.NumCPU().
func WithNbTasks(nbTasks int) SolverOption {
	return func(opt *SolverConfig) error {
		if nbTasks < 1 {
			return fmt.Errorf("invalid number of tasks: %d", nbTasks)
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

// NewSolverConfig returns the default configuration with opts applied.
func NewSolverConfig(opts ...SolverOption) (SolverConfig, error) {
	opt := SolverConfig{NbTasks: runtime.NumCPU()}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return SolverConfig{}, err
		}
	}
	return opt, nil
}

// Solve completes the witness from a partial assignment (wire id -> value).
// Wire 0 is set to 1 when not assigned. Missing wires are deduced constraint
// after constraint; constraints with no dependency on each other are solved
// concurrently. The completed witness is checked with IsSatisfied.
func (system *R1CS) Solve(assignment map[int]field.Element, opts ...SolverOption) ([]field.Element, error) {
	opt, err := NewSolverConfig(opts...)
	if err != nil {
		return nil, err
	}
	log := logger.Logger().With().Int("nbConstraints", system.GetNbConstraints()).Int("nbWires", system.GetNbWires()).Logger()

	nbWires := system.GetNbWires()
	solution := make([]field.Element, nbWires)
	known := make([]bool, nbWires)
	for wID, v := range assignment {
		if wID < 0 || wID >= nbWires {
			return nil, fmt.Errorf("%w: wire %d out of range [0, %d)", ErrInvalidAssignment, wID, nbWires)
		}
		if !system.field.Equal(v.Field()) {
			return nil, fmt.Errorf("%w: wire %d is not an element of %s", ErrInvalidAssignment, wID, system.field)
		}
		solution[wID], known[wID] = v, true
	}
	if !known[0] {
		solution[0], known[0] = system.field.One(), true
	}

	lb := newLevelBuilder(system, known)
	if err := lb.build(); err != nil {
		return nil, err
	}
	for wID := range known {
		if _, ok := lb.wireLevels[wID]; !known[wID] && !ok {
			return nil, fmt.Errorf("%w: wire %d is not constrained", ErrUnsolvable, wID)
		}
	}
	log.Debug().Int("nbLevels", len(lb.Levels)).Msg("solving witness")

	for _, level := range lb.Levels {
		var eg errgroup.Group
		eg.SetLimit(opt.NbTasks)
		for _, cID := range level {
			cID := cID
			eg.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%v\n%s", r, debug.Stack())
					}
				}()
				// constraints of a level write distinct wires and only read
				// wires of lower levels
				v, err := system.solveConstraint(cID, lb.outputs[cID], solution)
				if err != nil {
					return err
				}
				solution[lb.outputs[cID]] = v
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	if err := system.IsSatisfied(solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// solveConstraint returns the value of the wire u such that the constraint
// cID holds. Writing each side as cᵤ·u + rest, with u absent from L or R,
//
//	(cL·u + l)(cR·u + r) = cO·u + o  ⟺  u·(cL·r + cR·l - cO) = o - l·r
func (system *R1CS) solveConstraint(cID, u int, solution []field.Element) (field.Element, error) {
	c := &system.Constraints[cID]
	cL, l := system.split(c.L, u, solution)
	cR, r := system.split(c.R, u, solution)
	cO, o := system.split(c.O, u, solution)

	if !cL.IsZero() && !cR.IsZero() {
		return field.Element{}, fmt.Errorf("%w: wire %d is multiplied by itself in constraint #%d", ErrUnsolvable, u, cID)
	}
	div := cL.Mul(r).Add(cR.Mul(l)).Sub(cO)
	v, err := o.Sub(l.Mul(r)).Div(div)
	if err != nil {
		return field.Element{}, fmt.Errorf("%w: constraint #%d doesn't determine wire %d", ErrUnsolvable, cID, u)
	}
	return v, nil
}

// split returns the coefficient of wire u in le and the value of the other terms.
func (system *R1CS) split(le LinearExpression, u int, solution []field.Element) (coeff, rest field.Element) {
	coeff, rest = system.field.Zero(), system.field.Zero()
	for _, t := range le {
		c := system.Coefficients.Coeff(t.CID)
		if t.VID == u {
			coeff = coeff.Add(c)
			continue
		}
		rest = rest.Add(c.Mul(solution[t.VID]))
	}
	return
}
