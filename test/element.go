package test

import (
	"math/big"
)

// element is implemented by the gnark-crypto field elements (fr.Element,
// fp.Element of every curve).
type element[T any] interface {
	SetBigInt(v *big.Int) *T
	SetOne() *T
	Exp(T, *big.Int) *T
	Inverse(*T) *T
	Neg(*T) *T
	Double(*T) *T
	Square(*T) *T
	Mul(*T, *T) *T
	Add(*T, *T) *T
	Sub(*T, *T) *T
	Marshal() []byte

	IsZero() bool

	Equal(*T) bool
	String() string

	*T
}
