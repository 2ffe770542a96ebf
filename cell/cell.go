/*
Package cell provides a tagged variant for spreadsheet-like data.

A Cell holds exactly one of an integer, a floating point number or a text.
The set of variants is closed: Cell can only be implemented inside this
package, and Match requires a handler for every variant. Adding a variant
therefore breaks every call of Match until it has been extended.

Cells let heterogeneous data live in one homogeneous sequence:

	row := cell.NewRow(cell.Int(3), cell.Text("blue"), cell.Float(10.12))

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package cell

import (
	"errors"
	"strconv"

	"github.com/npillmayer/collections/seq"
)

// Cell is one of Int, Float or Text.
type Cell interface {
	String() string
	isCell()
}

// Int is the integer variant.
type Int int32

// Float is the floating point variant.
type Float float64

// Text is the text variant.
type Text string

func (Int) isCell()   {}
func (Float) isCell() {}
func (Text) isCell()  {}

func (c Int) String() string   { return strconv.FormatInt(int64(c), 10) }
func (c Float) String() string { return strconv.FormatFloat(float64(c), 'g', -1, 64) }
func (c Text) String() string  { return string(c) }

// ErrMissingCase is the panic value of Match for a nil handler.
var ErrMissingCase = errors.New("cell: missing case in match")

// Match calls the handler for the active variant of c and returns its result.
//
// All handlers must be present; there is no default case.
func Match[R any](c Cell, onInt func(Int) R, onFloat func(Float) R, onText func(Text) R) R {
	if onInt == nil || onFloat == nil || onText == nil {
		panic(ErrMissingCase)
	}
	switch v := c.(type) {
	case Int:
		return onInt(v)
	case Float:
		return onFloat(v)
	case Text:
		return onText(v)
	}
	panic("cell: match on nil cell")
}

// Row is a sequence of cells.
type Row = seq.Sequence[Cell]

// NewRow creates a row from a literal list of cells.
func NewRow(cells ...Cell) *Row {
	return seq.Of(cells...)
}
