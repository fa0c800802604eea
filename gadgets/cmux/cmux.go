// Package cmux provides a conditional-select gate,
//
//	out = cond*a + (1-cond)*b
//
// the arithmetization of "if cond { a } else { b }" with cond constrained to
// be boolean.
package cmux

import (
	"github.com/consensys/gnark/frontend"
)

// Select returns a when cond is 1 and b when cond is 0, and constrains cond
// to one of those two values.
func Select(api frontend.API, cond, a, b frontend.Variable) frontend.Variable {
	api.AssertIsBoolean(cond)
	then := api.Mul(cond, a)
	els := api.Mul(api.Sub(1, cond), b)
	return api.Add(then, els)
}
