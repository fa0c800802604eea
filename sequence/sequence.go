// Package sequence evaluates the example recurrences natively, outside any
// circuit. The circuits in package fibonacci re-derive the same values from
// constraints; the functions here produce the public inputs and witness
// assignments, and serve as the reference in tests.
package sequence

import (
	"math/big"
	mathbits "math/bits"

	"github.com/consensys/gnark-crypto/ecc"
)

// Classic returns the n-th term of
//
//	F(0) = 1, F(1) = 1, F(n) = F(n-1) + F(n-2)
//
// reduced modulo the BN254 scalar field, matching the in-circuit addition.
func Classic(n uint) *big.Int {
	q := ecc.BN254.ScalarField()
	a := big.NewInt(1)
	b := big.NewInt(1)
	if n == 0 {
		return a
	}
	for i := uint(2); i <= n; i++ {
		a.Add(a, b).Mod(a, q)
		a, b = b, a
	}
	return b
}

// XorVariant returns the terms F(0)..F(n) of
//
//	F(0) = 1, F(1) = 3, F(2) = 2
//	F(i) = F(i-3) + (F(i-2) XOR F(i-1))
//
// The whole prefix is returned rather than the last term alone because the
// circuit's lookup-table width has to cover every intermediate value.
func XorVariant(n uint) []uint64 {
	terms := make([]uint64, 1, n+1)
	terms[0] = 1
	if n >= 1 {
		terms = append(terms, 3)
	}
	if n >= 2 {
		terms = append(terms, 2)
	}
	for i := uint(3); i <= n; i++ {
		terms = append(terms, terms[i-3]+(terms[i-2]^terms[i-1]))
	}
	return terms
}

// XorVariantWidth returns the smallest word width, in bits, that holds every
// term of XorVariant(n). Never returns 0.
func XorVariantWidth(n uint) int {
	var max uint64
	for _, t := range XorVariant(n) {
		if t > max {
			max = t
		}
	}
	w := mathbits.Len64(max)
	if w == 0 {
		w = 1
	}
	return w
}
