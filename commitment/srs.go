/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package commitment evaluates polynomials "in the exponent": given the
// powers of a secret τ hidden in curve points [τⁱ]G, anyone can compute
// [P(τ)]G for a polynomial P without learning τ.
package commitment

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/tumberger/zkcore/curve"
	"github.com/tumberger/zkcore/field"
	"github.com/tumberger/zkcore/polynomial"
)

var (
	// ErrInvalidSize is returned for a SRS of less than one point.
	ErrInvalidSize = errors.New("commitment: invalid srs size")

	// ErrInvalidTau is returned when τ is zero or not in the scalar field of the curve.
	ErrInvalidTau = errors.New("commitment: invalid tau")

	// ErrDegreeTooLarge is returned when committing to a polynomial with more
	// coefficients than the SRS has points.
	ErrDegreeTooLarge = errors.New("commitment: polynomial degree exceeds srs size")

	// ErrFieldMismatch is returned for polynomials or scalars that are not
	// over the scalar field of the curve.
	ErrFieldMismatch = errors.New("commitment: not over the scalar field of the curve")

	// ErrLengthMismatch is returned by LinearCombination for slices of different lengths.
	ErrLengthMismatch = errors.New("commitment: points and scalars have different lengths")
)

// SRS holds [τ⁰]G, [τ¹]G, ..., [τⁿ⁻¹]G for the generator G of a curve.
type SRS struct {
	curve  *curve.Curve
	powers []curve.Point
}

// NewSRS returns the size first powers of tau in the group of c.
// tau must be a non-zero element of the scalar field of c.
func NewSRS(c *curve.Curve, size int, tau field.Element) (*SRS, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !c.ScalarField().Equal(tau.Field()) || tau.IsZero() {
		return nil, ErrInvalidTau
	}

	srs := &SRS{
		curve:  c,
		powers: make([]curve.Point, size),
	}
	t := c.ScalarField().One()
	for i := range srs.powers {
		srs.powers[i] = c.ScalarMulElement(c.Generator(), t)
		t = t.Mul(tau)
	}
	return srs, nil
}

// NewRandomSRS is like NewSRS with τ drawn from crypto/rand. τ is discarded.
//
// /!\ warning /!\: this method is here for convenience only: in production, a SRS generated through MPC should be used.
func NewRandomSRS(c *curve.Curve, size int) (*SRS, error) {
	fr := c.ScalarField()
	for {
		v, err := rand.Int(rand.Reader, fr.Modulus())
		if err != nil {
			return nil, err
		}
		if tau := fr.FromBigInt(v); !tau.IsZero() {
			return NewSRS(c, size, tau)
		}
	}
}

const srsCachedSize = (1 << 5) + 3

var (
	srsCache = make(map[string]*SRS)
	lock     sync.Mutex
)

// CachedSRS returns a random SRS of at least size points, shared by all
// callers using the same curve. For sizes above the cached size a new SRS
// is generated.
//
// /!\ warning /!\: this method is here for convenience only: in production, a SRS generated through MPC should be used.
func CachedSRS(c *curve.Curve, size int) (*SRS, error) {
	if size > srsCachedSize {
		return NewRandomSRS(c, size)
	}

	lock.Lock()
	defer lock.Unlock()

	if srs, ok := srsCache[c.Name()]; ok {
		return srs, nil
	}

	srs, err := NewRandomSRS(c, srsCachedSize)
	if err != nil {
		return nil, err
	}
	srsCache[c.Name()] = srs
	return srs, nil
}

// Curve returns the curve of the SRS
func (srs *SRS) Curve() *curve.Curve {
	return srs.curve
}

// Size returns the number of powers of tau
func (srs *SRS) Size() int {
	return len(srs.powers)
}

// Powers returns a copy of [τⁱ]G
func (srs *SRS) Powers() []curve.Point {
	res := make([]curve.Point, len(srs.powers))
	copy(res, srs.powers)
	return res
}

// Commit returns [p(τ)]G = Σ cᵢ·[τⁱ]G.
func (srs *SRS) Commit(p polynomial.Polynomial) (curve.Point, error) {
	if !srs.curve.ScalarField().Equal(p.Field()) {
		return curve.Point{}, ErrFieldMismatch
	}
	coeffs := p.Coefficients()
	if len(coeffs) > len(srs.powers) {
		return curve.Point{}, fmt.Errorf("%w: degree %d, srs size %d", ErrDegreeTooLarge, p.Degree(), len(srs.powers))
	}
	return LinearCombination(srs.curve, srs.powers[:len(coeffs)], coeffs)
}

// LinearCombination returns Σ scalars[i]·points[i], the point at infinity
// for empty inputs.
func LinearCombination(c *curve.Curve, points []curve.Point, scalars []field.Element) (curve.Point, error) {
	if len(points) != len(scalars) {
		return curve.Point{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(points), len(scalars))
	}
	res := c.Infinity()
	for i := range points {
		if !c.ScalarField().Equal(scalars[i].Field()) {
			return curve.Point{}, ErrFieldMismatch
		}
		res = c.Add(res, c.ScalarMulElement(points[i], scalars[i]))
	}
	return res, nil
}
