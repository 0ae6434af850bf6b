package constraint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/tumberger/zkcore/field"
)

var (
	gf79 = field.MustNew(big.NewInt(79))
	// BN254 scalar field
	fr = field.MustNew(mustBig("21888242871839275222246405745257275088548364400416034343698204186575808495617"))
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}

// out = x⁴ - 5y²x², wires: 1, out, x, y, v1, v2, v3
func quarticSystem(t *testing.T, f *field.Field) *R1CS {
	L := [][]int64{
		{0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, -5, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1},
	}
	R := [][]int64{
		{0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
	}
	O := [][]int64{
		{0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, -1, 0},
	}
	system, err := NewFromInt64(f, L, R, O)
	require.NoError(t, err)
	return system
}

// r = x·y·z·u, wires: 1, r, x, y, z, u, v1, v2
func productSystem(t *testing.T, f *field.Field) *R1CS {
	L := [][]int64{
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0},
	}
	R := [][]int64{
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
	}
	O := [][]int64{
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, 0, 0, 0},
	}
	system, err := NewFromInt64(f, L, R, O)
	require.NoError(t, err)
	return system
}

func TestNewMalformed(t *testing.T) {
	assert := require.New(t)

	_, err := New(gf79, nil, nil, nil)
	assert.ErrorIs(err, ErrMalformedMatrices)

	row := gf79.Elements(0, 1)
	_, err = New(gf79, [][]field.Element{row}, [][]field.Element{row, row}, [][]field.Element{row})
	assert.ErrorIs(err, ErrMalformedMatrices)

	_, err = New(gf79, [][]field.Element{row}, [][]field.Element{gf79.Elements(1)}, [][]field.Element{row})
	assert.ErrorIs(err, ErrMalformedMatrices)

	_, err = New(gf79, [][]field.Element{{}}, [][]field.Element{{}}, [][]field.Element{{}})
	assert.ErrorIs(err, ErrMalformedMatrices)

	assert.Panics(func() {
		_, _ = New(gf79, [][]field.Element{row}, [][]field.Element{fr.Elements(0, 1)}, [][]field.Element{row})
	})
}

func TestSparseForm(t *testing.T) {
	assert := require.New(t)

	system := quarticSystem(t, gf79)
	assert.Equal(4, system.GetNbConstraints())
	assert.Equal(7, system.GetNbWires())

	// -5 is stored as 74 after the 4 default coefficients
	assert.Len(system.Coefficients.Coeffs, 5)
	assert.Equal(uint64(74), system.Coefficients.Coeff(4).Uint64())
	assert.Equal(LinearExpression{{CID: 4, VID: 3}}, system.Constraints[2].L)
	assert.Equal(LinearExpression{{CID: CoeffIdOne, VID: 1}, {CID: CoeffIdMinusOne, VID: 5}}, system.Constraints[3].O)

	var wires []int
	it := system.Constraints[3].WireIterator()
	for w := it(); w != -1; w = it() {
		wires = append(wires, w)
	}
	assert.Equal([]int{6, 4, 1, 5}, wires)

	l, r, o := system.Columns(4)
	assert.Equal([]uint64{0, 1, 0, 0}, toUint64(l))
	assert.Equal([]uint64{0, 1, 0, 1}, toUint64(r))
	assert.Equal([]uint64{1, 0, 0, 0}, toUint64(o))
}

func toUint64(v []field.Element) []uint64 {
	res := make([]uint64, len(v))
	for i := range v {
		res[i] = v[i].Uint64()
	}
	return res
}

func TestIsSatisfied(t *testing.T) {
	assert := require.New(t)

	system := quarticSystem(t, gf79)
	witness := gf79.Elements(1, 15, 4, 77, 16, 19, 59)
	assert.NoError(system.IsSatisfied(witness))

	// wrong output
	witness[1] = gf79.NewElement(16)
	err := system.IsSatisfied(witness)
	assert.ErrorIs(err, ErrUnsatisfiedConstraint)
	var uErr *UnsatisfiedConstraintError
	assert.True(errors.As(err, &uErr))
	assert.Equal(3, uErr.Row)
	assert.Equal(uint64(59), uErr.L.Uint64())
	assert.Equal(uint64(16), uErr.R.Uint64())
	assert.Equal(uint64(76), uErr.O.Uint64())

	// wrong intermediate value, first failing row is reported
	witness = gf79.Elements(1, 15, 4, 77, 17, 19, 59)
	err = system.IsSatisfied(witness)
	assert.True(errors.As(err, &uErr))
	assert.Equal(0, uErr.Row)

	assert.ErrorIs(system.IsSatisfied(gf79.Elements(1, 2, 3)), ErrWitnessSize)
	assert.Panics(func() { _ = system.IsSatisfied(fr.Elements(1, 15, 4, 77, 16, 19, 59)) })
}

func TestIsSatisfiedProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	system := quarticSystem(t, fr)

	properties.Property("the x⁴ - 5y²x² witness satisfies the system", prop.ForAll(
		func(a, b int64) bool {
			x, y := fr.NewElement(a), fr.NewElement(b)
			v1 := x.Square()
			v2 := v1.Square()
			v3 := fr.NewElement(-5).Mul(y.Square())
			out := v3.Mul(v1).Add(v2)
			return system.IsSatisfied([]field.Element{fr.One(), out, x, y, v1, v2, v3}) == nil
		},
		gopter.Gen(func(p *gopter.GenParameters) *gopter.GenResult { return gopter.NewGenResult(p.Rng.Int63(), gopter.NoShrinker) }),
		gopter.Gen(func(p *gopter.GenParameters) *gopter.GenResult { return gopter.NewGenResult(-p.Rng.Int63(), gopter.NoShrinker) }),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
