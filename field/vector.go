package field

import "math/big"

// BatchInverse returns the inverses of a using Montgomery's trick (one field
// inversion and 3(n-1) multiplications). It returns ErrDivisionByZero if any
// entry is zero.
func BatchInverse(a []Element) ([]Element, error) {
	res := make([]Element, len(a))
	if len(a) == 0 {
		return res, nil
	}
	f := a[0].f
	for i := range a {
		mustMatch(a[0], a[i])
		if a[i].IsZero() {
			return nil, ErrDivisionByZero
		}
	}

	// res[i] = a[0] * ... * a[i-1]
	acc := f.One()
	for i := range a {
		res[i] = acc
		acc = acc.Mul(a[i])
	}

	accInv, err := acc.Inverse()
	if err != nil {
		return nil, err
	}

	for i := len(a) - 1; i >= 0; i-- {
		res[i] = res[i].Mul(accInv)
		accInv = accInv.Mul(a[i])
	}
	return res, nil
}

// InnerProduct returns Σ a[i]·b[i]. a and b must have the same length and
// at least one entry.
func InnerProduct(a, b []Element) Element {
	if len(a) != len(b) || len(a) == 0 {
		panic("field: inner product of vectors of different or zero length")
	}
	acc := new(big.Int)
	tmp := new(big.Int)
	for i := range a {
		mustMatch(a[0], a[i])
		mustMatch(a[i], b[i])
		acc.Add(acc, tmp.Mul(a[i].v, b[i].v))
	}
	return a[0].reduced(acc)
}
