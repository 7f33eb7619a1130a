package cqltable

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/cqltour/go-cqltour"
)

// ColumnKind maps a driver type to the rendering kind of its values.
//
// All integer, floating point, and decimal column types count as
// numeric and get right-aligned; every other type, including text
// that merely looks numeric, stays KindOther.
func ColumnKind(typeInfo gocql.TypeInfo) cqltour.Kind {
	switch typeInfo.Type() {
	case gocql.TypeInt, gocql.TypeBigInt, gocql.TypeSmallInt, gocql.TypeTinyInt,
		gocql.TypeVarint, gocql.TypeCounter,
		gocql.TypeFloat, gocql.TypeDouble, gocql.TypeDecimal:
		return cqltour.KindNumeric
	}
	return cqltour.KindOther
}

// Columns converts driver column metadata into ordered column
// descriptors, preserving the query's column order.
func Columns(infos []gocql.ColumnInfo) []cqltour.Column {
	cols := make([]cqltour.Column, len(infos))
	for i, info := range infos {
		cols[i] = cqltour.Column{
			Name: info.Name,
			Kind: ColumnKind(info.TypeInfo),
		}
	}
	return cols
}

// ScanRowsAsView reads the whole result set into memory and
// returns it as a view with column kinds derived from the
// driver's type codes.
//
// The rows iterator is always closed. Iteration stops early if
// ctx is canceled.
func ScanRowsAsView(ctx context.Context, rows Rows) (*cqltour.RowsView, error) {
	cols := Columns(rows.Columns())

	var scanned []map[string]any
	for {
		if ctx.Err() != nil {
			rows.Close()
			return nil, ctx.Err()
		}
		m := make(map[string]any, len(cols))
		if !rows.MapScan(m) {
			break
		}
		scanned = append(scanned, m)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("reading result set: %w", err)
	}
	return cqltour.NewMapRowsView(cols, scanned)
}
