// Command generator renders the curve presets of package curve.
//
// Curve constants are taken from gnark-crypto so the presets can't drift from
// the reference implementations the tests compare against.
package main

import (
	"math/big"
	"path/filepath"

	"github.com/consensys/bavard"
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/secp256k1"

	secp256k1_fp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	secp256k1_fr "github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
)

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2023, "zkcore")

	curveDir := filepath.Join("..", "..", "curve")
	for _, d := range presets() {
		entries := []bavard.Entry{
			{File: filepath.Join(curveDir, "zz_"+d.File+".go"), Templates: []string{"preset.go.tmpl"}},
		}
		if err := bgen.Generate(d, "curve", "./template/", entries...); err != nil {
			panic(err)
		}
	}
}

const copyrightHolder = "zkcore Authors"

type presetData struct {
	File     string // file suffix
	Func     string // constructor name in package curve
	Name     string
	Modulus  string
	Order    string
	B        int
	Gx, Gy   string
	Cofactor string
}

func presets() []presetData {
	_, _, bnG, _ := bn254.Generators()
	_, _, blsG, _ := bls12381.Generators()
	_, secpG := secp256k1.Generators()

	return []presetData{
		{
			File:     "bn254",
			Func:     "BN254",
			Name:     "bn254",
			Modulus:  ecc.BN254.BaseField().String(),
			Order:    ecc.BN254.ScalarField().String(),
			B:        3,
			Gx:       decimal(bnG.X.Marshal()),
			Gy:       decimal(bnG.Y.Marshal()),
			Cofactor: "1",
		},
		{
			File:     "bls12381",
			Func:     "BLS12_381",
			Name:     "bls12-381",
			Modulus:  ecc.BLS12_381.BaseField().String(),
			Order:    ecc.BLS12_381.ScalarField().String(),
			B:        4,
			Gx:       decimal(blsG.X.Marshal()),
			Gy:       decimal(blsG.Y.Marshal()),
			Cofactor: "76329603384216526031706109802092473003",
		},
		{
			File:     "secp256k1",
			Func:     "SECP256K1",
			Name:     "secp256k1",
			Modulus:  secp256k1_fp.Modulus().String(),
			Order:    secp256k1_fr.Modulus().String(),
			B:        7,
			Gx:       decimal(secpG.X.Marshal()),
			Gy:       decimal(secpG.Y.Marshal()),
			Cofactor: "1",
		},
	}
}

// decimal converts the big-endian regular encoding of a gnark-crypto element
func decimal(b []byte) string {
	return new(big.Int).SetBytes(b).String()
}
