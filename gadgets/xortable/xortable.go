// Package xortable proves bitwise XOR through a precomputed lookup table.
//
// The table enumerates lhs^rhs for every pair of width-bit words, and queries
// go through gnark's log-derivative lookup argument. A width of 5 reproduces
// the classic 32x32 XOR table; wider words square the table size, so the
// width is capped at MaxWidth.
package xortable

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/lookup/logderivlookup"
	"github.com/consensys/gnark/std/math/bits"
)

// MaxWidth bounds the operand width. At 8 bits the table has 65536 entries;
// every extra bit multiplies that by four.
const MaxWidth = 8

// Table is an in-circuit XOR table over width-bit operands.
type Table struct {
	api   frontend.API
	table *logderivlookup.Table
	width int
}

// New builds the XOR table for width-bit operands. The table is materialized
// once per circuit; reuse a single Table for all XOR gates.
func New(api frontend.API, width int) (*Table, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("xor table width %d out of range [1,%d]", width, MaxWidth)
	}
	t := logderivlookup.New(api)
	for lhs := 0; lhs < 1<<width; lhs++ {
		for rhs := 0; rhs < 1<<width; rhs++ {
			t.Insert(lhs ^ rhs)
		}
	}
	return &Table{api: api, table: t, width: width}, nil
}

// Width returns the operand width in bits.
func (t *Table) Width() int {
	return t.width
}

// Xor returns a XOR b. Both operands are constrained to width bits; the
// lookup index is lhs*2^width + rhs, so the range checks are what make the
// query sound.
func (t *Table) Xor(a, b frontend.Variable) frontend.Variable {
	bits.ToBinary(t.api, a, bits.WithNbDigits(t.width))
	bits.ToBinary(t.api, b, bits.WithNbDigits(t.width))
	index := t.api.Add(t.api.Mul(a, 1<<t.width), b)
	return t.table.Lookup(index)[0]
}
