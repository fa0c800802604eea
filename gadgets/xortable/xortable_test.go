package xortable

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

type xorCircuit struct {
	A   frontend.Variable
	B   frontend.Variable
	Out frontend.Variable `gnark:",public"`

	width int
}

func (c *xorCircuit) Define(api frontend.API) error {
	t, err := New(api, c.width)
	if err != nil {
		return err
	}
	api.AssertIsEqual(t.Xor(c.A, c.B), c.Out)
	return nil
}

func TestXor(t *testing.T) {
	assert := test.NewAssert(t)

	assert.CheckCircuit(
		&xorCircuit{width: 5},
		test.WithValidAssignment(&xorCircuit{A: 13, B: 27, Out: 13 ^ 27}),
		test.WithValidAssignment(&xorCircuit{A: 31, B: 31, Out: 0}),
		test.WithValidAssignment(&xorCircuit{A: 0, B: 21, Out: 21}),
		test.WithInvalidAssignment(&xorCircuit{A: 13, B: 27, Out: 13 & 27}),
		// operand exceeds the 5-bit range even though the sum of bits matches
		test.WithInvalidAssignment(&xorCircuit{A: 32, B: 1, Out: 33}),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16, backend.PLONK),
	)
}

func TestXorWidth1(t *testing.T) {
	assert := test.NewAssert(t)

	assert.CheckCircuit(
		&xorCircuit{width: 1},
		test.WithValidAssignment(&xorCircuit{A: 1, B: 1, Out: 0}),
		test.WithValidAssignment(&xorCircuit{A: 1, B: 0, Out: 1}),
		test.WithInvalidAssignment(&xorCircuit{A: 1, B: 1, Out: 1}),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.PLONK),
	)
}

func TestInvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1, MaxWidth + 1} {
		_, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &xorCircuit{width: width})
		require.Error(t, err, "width=%d", width)
	}
}
