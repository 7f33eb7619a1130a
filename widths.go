package cqltour

import "unicode/utf8"

// StringColumnWidths returns the rendering width of every column:
// the maximum rune count of the column's header name and of the
// column's string in every row.
//
// The width of a column never depends on any other column's
// values. Rows shorter than cols contribute nothing for their
// missing trailing cells.
func StringColumnWidths(rows [][]string, cols []Column) []int {
	colWidths := make([]int, len(cols))
	for col := range cols {
		colWidths[col] = utf8.RuneCountInString(cols[col].Name)
	}
	for row := range rows {
		for col := 0; col < len(cols) && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
