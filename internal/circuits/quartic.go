package circuits

// out = x⁴ - 5y²x², wires: 1, out, x, y, v1, v2, v3
//
//	v1 = x·x
//	v2 = v1·v1
//	v3 = -5y·y
//	out - v2 = v3·v1
var (
	quarticL = [][]int64{
		{0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, -5, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1},
	}
	quarticR = [][]int64{
		{0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0},
	}
	quarticO = [][]int64{
		{0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, -1, 0},
	}
)

func init() {
	// x = 4, y = -2
	addEntry("quartic/gf79",
		mustSystem(GF79, quarticL, quarticR, quarticO),
		assign(GF79, map[int]int64{2: 4, 3: -2}),
		GF79.Elements(1, 15, 4, 77, 16, 19, 59),
		GF79.Elements(1, 16, 4, 77, 16, 19, 59),
		GF79.Elements(1, 15, 4, 77, 17, 19, 59),
	)

	addEntry("quartic/bn254",
		mustSystem(BN254, quarticL, quarticR, quarticO),
		assign(BN254, map[int]int64{2: 4, 3: -2}),
		BN254.Elements(1, -64, 4, -2, 16, 256, -20),
		BN254.Elements(1, 64, 4, -2, 16, 256, -20),
		BN254.Elements(1, -64, 4, 2, 16, 256, 20),
	)
}
