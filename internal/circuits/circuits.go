// Package circuits contains test R1CS systems with valid and invalid witnesses
package circuits

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/tumberger/zkcore/constraint"
	"github.com/tumberger/zkcore/field"
)

// TestCircuit is a constraint system with a partial assignment the solver
// can complete, a valid witness and invalid ones.
type TestCircuit struct {
	System         *constraint.R1CS
	Assignment     map[int]field.Element
	ValidWitness   []field.Element
	InvalidWitness [][]field.Element
}

// Circuits are used for test purposes (qap, solver and stats)
var Circuits map[string]TestCircuit

var (
	// GF79 is the toy field used by the worked examples
	GF79 = field.MustNew(big.NewInt(79))
	// BN254 is the scalar field of BN254
	BN254 = field.MustNew(ecc.BN254.ScalarField())
)

func addEntry(name string, system *constraint.R1CS, assignment map[int]field.Element, good []field.Element, bad ...[]field.Element) {
	if Circuits == nil {
		Circuits = make(map[string]TestCircuit)
	}
	if _, ok := Circuits[name]; ok {
		panic("name " + name + "already taken by another test circuit ")
	}
	if err := system.IsSatisfied(good); err != nil {
		panic(fmt.Sprintf("circuit %s: %v", name, err))
	}

	Circuits[name] = TestCircuit{system, assignment, good, bad}
}

func mustSystem(f *field.Field, L, R, O [][]int64) *constraint.R1CS {
	system, err := constraint.NewFromInt64(f, L, R, O)
	if err != nil {
		panic(err)
	}
	return system
}

// assign maps wire ids to values reduced in f.
func assign(f *field.Field, values map[int]int64) map[int]field.Element {
	res := make(map[int]field.Element, len(values))
	for wID, v := range values {
		res[wID] = f.NewElement(v)
	}
	return res
}
