// Package fibonacci defines circuits proving Fibonacci-style recurrences.
//
// Two recurrences are covered: the additive chain
//
//	F(0) = 1, F(1) = 1, F(n) = F(n-1) + F(n-2)
//
// and an XOR variant where every third term mixes in a bitwise XOR of the two
// preceding terms. Chain lengths are fixed at construction time and unrolled
// during compilation, so one compiled circuit proves one term index.
package fibonacci

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkstudy/gnark-fibonacci/sequence"
)

// Circuit proves that Result is the n-th term of the additive chain seeded by
// First and Second. All three values are public: the verifier learns the
// claimed term, the prover demonstrates the chain connecting it to the seeds.
type Circuit struct {
	First  frontend.Variable `gnark:",public"`
	Second frontend.Variable `gnark:",public"`
	Result frontend.Variable `gnark:",public"`

	n int
}

// NewCircuit returns the compile template for a chain of length n.
func NewCircuit(n uint) *Circuit {
	return &Circuit{n: int(n)}
}

// NewAssignment returns a witness assignment for the n-th term with the
// canonical seeds F(0) = F(1) = 1.
func NewAssignment(n uint) *Circuit {
	return &Circuit{
		First:  1,
		Second: 1,
		Result: sequence.Classic(n),
	}
}

// Define declares the chain constraints.
func (c *Circuit) Define(api frontend.API) error {
	if c.n == 0 {
		api.AssertIsEqual(c.Result, c.First)
		return nil
	}
	a, b := c.First, c.Second
	for i := 2; i <= c.n; i++ {
		a, b = b, api.Add(a, b)
	}
	api.AssertIsEqual(c.Result, b)
	return nil
}
