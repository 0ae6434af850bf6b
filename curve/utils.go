package curve

import "math/big"

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: invalid constant " + s)
	}
	return v
}
