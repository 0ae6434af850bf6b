package circuits

// r = x·y·z·u, wires: 1, r, x, y, z, u, v1, v2
var (
	productL = [][]int64{
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0},
	}
	productR = [][]int64{
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
	}
	productO = [][]int64{
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, 0, 0, 0},
	}
)

// x³ + x + 5 = out, wires: 1, out, x, sym1, y, sym2
var (
	cubicL = [][]int64{
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 1, 0, 1, 0},
		{5, 0, 0, 0, 0, 1},
	}
	cubicR = [][]int64{
		{0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
	}
	cubicO = [][]int64{
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, 0},
	}
)

func init() {
	addEntry("product/bn254",
		mustSystem(BN254, productL, productR, productO),
		assign(BN254, map[int]int64{2: 2, 3: 3, 4: 5, 5: 7}),
		BN254.Elements(1, 210, 2, 3, 5, 7, 6, 35),
		BN254.Elements(1, 211, 2, 3, 5, 7, 6, 35),
		BN254.Elements(1, 210, 2, 3, 5, 7, 35, 6),
	)

	addEntry("product/gf79",
		mustSystem(GF79, productL, productR, productO),
		assign(GF79, map[int]int64{2: 2, 3: 3, 4: 5, 5: 7}),
		GF79.Elements(1, 210, 2, 3, 5, 7, 6, 35),
		GF79.Elements(1, 0, 2, 3, 5, 7, 6, 35),
	)

	// x = 3
	addEntry("cubic/bn254",
		mustSystem(BN254, cubicL, cubicR, cubicO),
		assign(BN254, map[int]int64{2: 3}),
		BN254.Elements(1, 35, 3, 9, 27, 30),
		BN254.Elements(1, 36, 3, 9, 27, 30),
	)
}
