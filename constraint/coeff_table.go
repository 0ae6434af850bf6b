package constraint

import (
	"github.com/tumberger/zkcore/field"
)

// ids of the coefficients every table starts with
const (
	CoeffIdZero = iota
	CoeffIdOne
	CoeffIdTwo
	CoeffIdMinusOne
)

// CoeffTable stores the distinct coefficients appearing in the constraints,
// so that terms reference a coefficient by its index.
type CoeffTable struct {
	// Coefficients in the constraints
	Coeffs    []field.Element // list of unique coefficients.
	CoeffsIDs map[string]int  // map to check existence of a coefficient (key = coeff.Bytes())
}

// NewCoeffTable returns a table over f holding 0, 1, 2 and -1.
func NewCoeffTable(f *field.Field) CoeffTable {
	st := CoeffTable{
		Coeffs:    make([]field.Element, 4),
		CoeffsIDs: make(map[string]int, 4),
	}

	st.Coeffs[CoeffIdZero] = f.NewElement(0)
	st.Coeffs[CoeffIdOne] = f.NewElement(1)
	st.Coeffs[CoeffIdTwo] = f.NewElement(2)
	st.Coeffs[CoeffIdMinusOne] = f.NewElement(-1)
	for i, c := range st.Coeffs {
		st.CoeffsIDs[string(c.Bytes())] = i
	}

	return st
}

// CoeffID tries to fetch the entry where v is if it exists, otherwise appends v to
// the list of Coeffs and returns the corresponding entry
func (t *CoeffTable) CoeffID(v field.Element) int {
	key := string(v.Bytes())

	// if the coeff is already stored, fetch its ID from the map
	if idx, ok := t.CoeffsIDs[key]; ok {
		return idx
	}

	// else add it in the Coeffs list and update the map
	resID := len(t.Coeffs)
	t.Coeffs = append(t.Coeffs, v)
	t.CoeffsIDs[key] = resID
	return resID
}

// Coeff returns the coefficient with the given id
func (t *CoeffTable) Coeff(id int) field.Element {
	return t.Coeffs[id]
}
