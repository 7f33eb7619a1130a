package cqltour

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingColumn is returned by NewMapRowsView when a row
// has no value for a declared column.
var ErrMissingColumn = errors.New("row is missing a column")

// NewMapRowsView creates a RowsView from rows represented as
// maps from column name to value, ordered by the passed
// column descriptors.
//
// Every row must provide a value for every declared column.
// A row that lacks one is a contract violation by the data
// source and results in an error wrapping ErrMissingColumn
// that names the row index and column name. Missing cells are
// never silently padded because that would mask caller bugs.
//
// Extra keys not covered by cols are ignored.
func NewMapRowsView(cols []Column, rows []map[string]any) (*RowsView, error) {
	view := &RowsView{
		Cols: cols,
		Rows: make([][]any, len(rows)),
	}
	for row, rowMap := range rows {
		view.Rows[row] = make([]any, len(cols))
		for col, column := range cols {
			value, ok := rowMap[column.Name]
			if !ok {
				return nil, fmt.Errorf("%w: row %d, column %q", ErrMissingColumn, row, column.Name)
			}
			view.Rows[row][col] = value
		}
	}
	return view, nil
}

// NewMapRowsViewFromRows creates a RowsView deriving the column
// descriptors from the first row, with kinds looked up by column
// name in kinds (missing names default to KindOther).
//
// Because Go maps have no iteration order the derived columns are
// sorted by name to keep the order deterministic. Callers that
// care about column order should use NewMapRowsView with an
// explicit descriptor list instead; this constructor only exists
// for data sources that cannot report their schema up front.
func NewMapRowsViewFromRows(rows []map[string]any, kinds map[string]Kind) (*RowsView, error) {
	if len(rows) == 0 {
		return &RowsView{}, nil
	}
	names := make([]string, 0, len(rows[0]))
	for name := range rows[0] {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Kind: kinds[name]}
	}
	return NewMapRowsView(cols, rows)
}
