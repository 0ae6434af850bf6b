package constraint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/tumberger/zkcore/field"
)

func TestSolveQuartic(t *testing.T) {
	assert := require.New(t)

	system := quarticSystem(t, gf79)
	for _, nbTasks := range []int{1, 4} {
		witness, err := system.Solve(map[int]field.Element{
			2: gf79.NewElement(4),
			3: gf79.NewElement(-2),
		}, WithNbTasks(nbTasks))
		assert.NoError(err)
		assert.Equal([]uint64{1, 15, 4, 77, 16, 19, 59}, toUint64(witness))
	}
}

func TestLevels(t *testing.T) {
	assert := require.New(t)

	system := quarticSystem(t, gf79)
	known := []bool{true, false, true, true, false, false, false}
	lb := newLevelBuilder(system, known)
	assert.NoError(lb.build())
	// v1 and v3 first, then v2, then out
	assert.Equal([][]int{{0, 2}, {1}, {3}}, lb.Levels)
	assert.Equal([]int{4, 5, 6, 1}, lb.outputs)

	system = productSystem(t, gf79)
	known = []bool{true, false, true, true, true, true, false, false}
	lb = newLevelBuilder(system, known)
	assert.NoError(lb.build())
	assert.Equal([][]int{{0, 1}, {2}}, lb.Levels)

	// every wire known: only checks
	known = []bool{true, true, true, true, true, true, true, true}
	lb = newLevelBuilder(system, known)
	assert.NoError(lb.build())
	assert.Empty(lb.Levels)
	assert.Equal([]int{-1, -1, -1}, lb.outputs)
}

func TestSolveProduct(t *testing.T) {
	assert := require.New(t)

	system := productSystem(t, fr)
	witness, err := system.Solve(map[int]field.Element{
		2: fr.NewElement(2),
		3: fr.NewElement(3),
		4: fr.NewElement(5),
		5: fr.NewElement(7),
	})
	assert.NoError(err)
	assert.Equal([]uint64{1, 210, 2, 3, 5, 7, 6, 35}, toUint64(witness))
}

func TestSolveUnknownInLeftOrRight(t *testing.T) {
	assert := require.New(t)

	// x·y = z, wires: 1, x, y, z
	system, err := NewFromInt64(gf79,
		[][]int64{{0, 1, 0, 0}},
		[][]int64{{0, 0, 1, 0}},
		[][]int64{{0, 0, 0, 1}},
	)
	assert.NoError(err)

	witness, err := system.Solve(map[int]field.Element{2: gf79.NewElement(3), 3: gf79.NewElement(12)})
	assert.NoError(err)
	assert.Equal(uint64(4), witness[1].Uint64())

	witness, err = system.Solve(map[int]field.Element{1: gf79.NewElement(3), 3: gf79.NewElement(12)})
	assert.NoError(err)
	assert.Equal(uint64(4), witness[2].Uint64())

	// 0·y = 12 has no solution
	_, err = system.Solve(map[int]field.Element{1: gf79.Zero(), 3: gf79.NewElement(12)})
	assert.ErrorIs(err, ErrUnsolvable)

	// (x + 1)·2 = x + 5 ⟹ x = 3
	system, err = NewFromInt64(gf79,
		[][]int64{{1, 1}},
		[][]int64{{2, 0}},
		[][]int64{{5, 1}},
	)
	assert.NoError(err)
	witness, err = system.Solve(nil)
	assert.NoError(err)
	assert.Equal([]uint64{1, 3}, toUint64(witness))
}

func TestSolveErrors(t *testing.T) {
	assert := require.New(t)

	system := quarticSystem(t, gf79)

	// y is missing: constraint #2 has unknowns y and v3
	_, err := system.Solve(map[int]field.Element{2: gf79.NewElement(4)})
	assert.ErrorIs(err, ErrUnsolvable)

	_, err = system.Solve(map[int]field.Element{7: gf79.One()})
	assert.ErrorIs(err, ErrInvalidAssignment)
	_, err = system.Solve(map[int]field.Element{2: fr.One()})
	assert.ErrorIs(err, ErrInvalidAssignment)

	_, err = system.Solve(map[int]field.Element{2: gf79.One()}, WithNbTasks(0))
	assert.Error(err)

	// a complete but wrong assignment fails the final check
	wrong := map[int]field.Element{}
	for i, v := range gf79.Elements(1, 16, 4, 77, 16, 19, 59) {
		wrong[i] = v
	}
	_, err = system.Solve(wrong)
	assert.ErrorIs(err, ErrUnsatisfiedConstraint)

	// x·x = z with x unknown
	square, err := NewFromInt64(gf79,
		[][]int64{{0, 1, 0}},
		[][]int64{{0, 1, 0}},
		[][]int64{{0, 0, 1}},
	)
	assert.NoError(err)
	_, err = square.Solve(map[int]field.Element{2: gf79.NewElement(4)})
	assert.ErrorIs(err, ErrUnsolvable)

	// wire 2 appears in no constraint
	loose, err := NewFromInt64(gf79,
		[][]int64{{0, 1, 0}},
		[][]int64{{1, 0, 0}},
		[][]int64{{1, 0, 0}},
	)
	assert.NoError(err)
	_, err = loose.Solve(nil)
	assert.ErrorIs(err, ErrUnsolvable)
}

func TestSolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	system := quarticSystem(t, fr)
	genInt := gopter.Gen(func(p *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(p.Rng.Int63()-p.Rng.Int63(), gopter.NoShrinker)
	})

	properties.Property("solved witness computes x⁴ - 5y²x²", prop.ForAll(
		func(a, b int64) bool {
			x, y := fr.NewElement(a), fr.NewElement(b)
			witness, err := system.Solve(map[int]field.Element{2: x, 3: y})
			if err != nil {
				return false
			}
			x2 := x.Square()
			expected := x2.Square().Sub(fr.NewElement(5).Mul(y.Square()).Mul(x2))
			return witness[1].Equal(expected)
		},
		genInt, genInt,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
