package qap

import (
	"fmt"
	"runtime"

	"github.com/tumberger/zkcore/field"
)

// Option defines option for altering the behaviour of Transform. See the
// descriptions of the functions returning instances of this type for
// available options.
type Option func(opt *Config) error

// Config holds the Transform options
type Config struct {
	// Points are the evaluation points, one per constraint. Defaults to 1..n.
	Points []field.Element
	// NbTasks bounds the number of columns interpolated concurrently.
	NbTasks int
}

// WithEvaluationPoints sets the point at which each constraint is encoded:
// row i of the system becomes the evaluation of the column polynomials at
// points[i]. The points must be distinct, non-zero and there must be exactly
// one per constraint.
func WithEvaluationPoints(points ...field.Element) Option {
	return func(opt *Config) error {
		opt.Points = make([]field.Element, len(points))
		copy(opt.Points, points)
		return nil
	}
}

// WithNbTasks sets the maximum number of goroutines used to interpolate the
// columns. Defaults to runtime.NumCPU().
func WithNbTasks(nbTasks int) Option {
	return func(opt *Config) error {
		if nbTasks < 1 {
			return fmt.Errorf("invalid number of tasks: %d", nbTasks)
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

func newConfig(opts ...Option) (Config, error) {
	opt := Config{NbTasks: runtime.NumCPU()}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}

// DefaultPoints returns 1, 2, ..., n in f.
func DefaultPoints(f *field.Field, n int) []field.Element {
	points := make([]field.Element, n)
	for i := range points {
		points[i] = f.NewElement(int64(i + 1))
	}
	return points
}

func checkPoints(f *field.Field, points []field.Element, nbConstraints int) error {
	if len(points) != nbConstraints {
		return fmt.Errorf("%w: got %d points for %d constraints", ErrInvalidEvaluationPoints, len(points), nbConstraints)
	}
	seen := make(map[string]int, len(points))
	for i, p := range points {
		if !f.Equal(p.Field()) {
			return fmt.Errorf("%w: point #%d is not an element of %s", ErrInvalidEvaluationPoints, i, f)
		}
		if p.IsZero() {
			return fmt.Errorf("%w: point #%d is zero", ErrInvalidEvaluationPoints, i)
		}
		key := string(p.Bytes())
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: points #%d and #%d are both %s", ErrInvalidEvaluationPoints, j, i, p)
		}
		seen[key] = i
	}
	return nil
}
