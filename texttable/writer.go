// Package texttable renders result-set views as bordered,
// fixed-width ASCII tables for terminal inspection.
//
// Column widths are computed per column from the widest value or
// header text, numeric columns are right-aligned and all other
// columns left-aligned:
//
//	+---+----+---+
//	|id |name|age|
//	+---+----+---+
//	|123|jon | 32|
//	|456|mary| 25|
//	+---+----+---+
//
// A view without rows renders as the writer's placeholder text
// instead of an empty table frame.
package texttable

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cqltour/go-cqltour"
)

// CellFormatterFunc formats a single cell value as text.
type CellFormatterFunc func(value any) (string, error)

// Writer renders views as bordered ASCII tables.
//
// Writer is immutable after creation, all With* methods
// return a modified copy.
type Writer struct {
	columnFormatters map[int]CellFormatterFunc
	placeholder      string
	nilValue         string
	newLine          string
}

// NewWriter returns a Writer with "Nothing" as placeholder for
// empty views, an empty string for nil values, and "\n" line ends.
func NewWriter() *Writer {
	return &Writer{
		columnFormatters: make(map[int]CellFormatterFunc),
		placeholder:      "Nothing",
		nilValue:         "",
		newLine:          "\n",
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithPlaceholder returns a new writer that renders views
// without rows as the passed placeholder text.
func (w *Writer) WithPlaceholder(placeholder string) *Writer {
	mod := w.clone()
	mod.placeholder = placeholder
	return mod
}

// WithNilValue returns a new writer that renders nil cell
// values as the passed string.
func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithNewLine returns a new writer using the passed line ending.
func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

// WithColumnFormatterFunc returns a new writer with the passed formatter
// registered for columnIndex.
// If nil is passed as formatter, then a previous registered column formatter
// is removed.
func (w *Writer) WithColumnFormatterFunc(columnIndex int, formatter CellFormatterFunc) *Writer {
	mod := w.clone()
	mod.columnFormatters = make(map[int]CellFormatterFunc)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// Placeholder returns the text rendered for views without rows.
func (w *Writer) Placeholder() string { return w.placeholder }

// NilValue returns the text rendered for nil cell values.
func (w *Writer) NilValue() string { return w.nilValue }

// NewLine returns the line ending used between table lines.
func (w *Writer) NewLine() string { return w.newLine }

// WriteView renders the view as a bordered ASCII table and writes
// it to dest followed by a final line ending.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view cqltour.View) error {
	table, err := w.RenderView(ctx, view)
	if err != nil {
		return err
	}
	_, err = io.WriteString(dest, table+w.newLine)
	return err
}

// RenderView renders the view as a bordered ASCII table and
// returns it as a string without a trailing line ending, the
// last line being the bottom border.
//
// A view without rows renders as the writer's placeholder text.
//
// The render happens in two passes: first all cell values are
// formatted as strings and the width of every column is computed
// as the maximum rune count of the column name and of the
// column's string in every row, then the bordered lines are
// emitted padding every cell with spaces to its column's width.
// No emission starts before all widths are final because any row
// could be the widest for any column. Values are never truncated.
func (w *Writer) RenderView(ctx context.Context, view cqltour.View) (string, error) {
	if view.NumRows() == 0 {
		return w.placeholder, nil
	}

	cols := view.Columns()
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return "", err
	}
	colWidths := cqltour.StringColumnWidths(rows, cols)

	separator := rowSeparator(colWidths)

	var b strings.Builder
	b.WriteString(separator)
	b.WriteString(w.newLine)

	// Header cells are always left-aligned
	for col, column := range cols {
		b.WriteByte('|')
		writePadded(&b, column.Name, colWidths[col], false)
	}
	b.WriteByte('|')
	b.WriteString(w.newLine)

	b.WriteString(separator)
	b.WriteString(w.newLine)

	for row := range rows {
		for col, str := range rows[row] {
			b.WriteByte('|')
			writePadded(&b, str, colWidths[col], cols[col].Kind == cqltour.KindNumeric)
		}
		b.WriteByte('|')
		b.WriteString(w.newLine)
	}

	b.WriteString(separator)
	return b.String(), nil
}

// ViewStrings returns the view's cells formatted as a slice of
// string slices, one per row, without any padding.
func (w *Writer) ViewStrings(ctx context.Context, view cqltour.View) ([][]string, error) {
	numRows := view.NumRows()
	rows := make([][]string, numRows)
	for row := 0; row < numRows; row++ {
		rowStrs, err := w.rowStrings(ctx, view, row)
		if err != nil {
			return nil, err
		}
		rows[row] = rowStrs
	}
	return rows, nil
}

func (w *Writer) rowStrings(ctx context.Context, view cqltour.View, row int) ([]string, error) {
	columns := view.Columns()
	rowStrs := make([]string, len(columns))
	for col := range columns {
		var err error
		rowStrs[col], err = w.cellString(ctx, view, row, col)
		if err != nil {
			return nil, err
		}
	}
	return rowStrs, nil
}

func (w *Writer) cellString(ctx context.Context, view cqltour.View, row, col int) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	value := view.Cell(row, col)
	if formatter, ok := w.columnFormatters[col]; ok {
		return formatter(value)
	}
	if value == nil {
		return w.nilValue, nil
	}
	return fmt.Sprint(value), nil
}

// rowSeparator returns the horizontal border line:
// a '-' run of every column's width, joined and bounded by '+'.
func rowSeparator(colWidths []int) string {
	var b strings.Builder
	for _, width := range colWidths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteByte('+')
	return b.String()
}

// writePadded writes str padded with spaces to width runes,
// on the left for right-aligned cells, else on the right.
func writePadded(b *strings.Builder, str string, width int, alignRight bool) {
	pad := width - utf8.RuneCountInString(str)
	if alignRight {
		for i := 0; i < pad; i++ {
			b.WriteByte(' ')
		}
		b.WriteString(str)
		return
	}
	b.WriteString(str)
	for i := 0; i < pad; i++ {
		b.WriteByte(' ')
	}
}
