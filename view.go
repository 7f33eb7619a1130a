// Package cqltour provides the tabular result-set abstraction
// shared by the statement runner and the table renderer.
//
// A result set is exposed as a View: an ordered list of column
// descriptors plus cell access by row and column index. Views are
// fully materialized in memory before they are rendered, they are
// never mutated by consumers, and they carry no connection or
// iterator state.
package cqltour

// Column describes one table column: its name, used as the
// header text, and the kind of its values, which decides the
// alignment policy of the renderer.
type Column struct {
	Name string
	Kind Kind
}

// View is the interface for tabular result-set data.
//
// The column order returned by Columns is significant and fixed
// for the lifetime of the view; it defines the left-to-right
// order of rendered columns.
//
// Cell returns nil for out of range indices.
type View interface {
	Columns() []Column
	NumRows() int
	Cell(row, col int) any
}

var _ View = new(RowsView)

// RowsView is a View implementation that holds its rows
// as slices of values of any type, indexed in column order.
type RowsView struct {
	Cols []Column
	Rows [][]any
}

// Columns returns the column descriptors of this view.
func (view *RowsView) Columns() []Column { return view.Cols }

// NumRows returns the number of data rows in this view.
func (view *RowsView) NumRows() int { return len(view.Rows) }

// Cell returns the value at the passed row and column indices,
// or nil if the indices are out of range.
func (view *RowsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Rows[row]) {
		return nil
	}
	return view.Rows[row][col]
}
