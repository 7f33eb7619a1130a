package cqltable

import "github.com/gocql/gocql"

var _ Rows = &gocql.Iter{}

// Rows abstracts the essential methods of gocql.Iter so that
// result sets can come from a live session or from a fake in
// tests without depending on the concrete driver type.
//
// The interface follows the gocql.Iter usage pattern:
//  1. Call Columns() for the ordered column metadata
//  2. Call MapScan() with a fresh map until it returns false
//  3. Call Close() to release the iterator and get any error
//     encountered during iteration
type Rows interface {
	// Columns returns metadata for the columns of the result set
	// in query order.
	Columns() []gocql.ColumnInfo

	// MapScan reads the next row into m, keyed by column name,
	// and returns false when no more rows are available or an
	// error occurred. The error is reported by Close.
	//
	// Pass a fresh map on every call, MapScan does not overwrite
	// entries left over from previous rows.
	MapScan(m map[string]any) bool

	// Close closes the iterator and returns any error seen
	// during iteration. It is safe to call multiple times.
	Close() error
}
