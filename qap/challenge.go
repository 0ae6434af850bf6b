package qap

import (
	"encoding/binary"
	"hash"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/tumberger/zkcore/field"
	"github.com/tumberger/zkcore/polynomial"
)

const challengeDomain = "zkcore/qap/challenge"

// Challenge derives an evaluation point from a Keccak-256 transcript of the
// combined terms, T and H. It is a deterministic function of the artifacts
// and can be fed to CheckAt.
func (a *Artifacts) Challenge() field.Element {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(challengeDomain))
	for _, p := range []polynomial.Polynomial{a.Term1, a.Term2, a.Term3, a.T, a.H} {
		writePolynomial(h, p)
	}
	digest := h.Sum(nil)
	return a.T.Field().FromBigInt(new(big.Int).SetBytes(digest))
}

// writePolynomial writes the number of coefficients followed by their fixed
// width encodings.
func writePolynomial(h hash.Hash, p polynomial.Polynomial) {
	var buf [8]byte
	coeffs := p.Coefficients()
	binary.BigEndian.PutUint64(buf[:], uint64(len(coeffs)))
	h.Write(buf[:])
	for _, c := range coeffs {
		h.Write(c.Bytes())
	}
}
