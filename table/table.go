/*
Package table defines the sources tables are read from before being
preprocessed into datasets.

Subpackages provide sources over CSV streams, SQL databases, MongoDB
collections and Redis hashes.
*/
package table

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

/*
Source is an interface wrapping the Table method, which reads a whole table
from some storage and returns it or an error. Rows are returned in the
order the storage keeps them, which determines the order categories of
the label are found in.
*/
type Source interface {
	Table(context.Context) (dataframe.DataFrame, error)
}

/*
SourceFunc wraps a function with the Table method signature to implement
the Source interface
*/
type SourceFunc func(context.Context) (dataframe.DataFrame, error)

// Table invokes the SourceFunc with the given context and returns its result.
func (sf SourceFunc) Table(ctx context.Context) (dataframe.DataFrame, error) {
	return sf(ctx)
}

// TableError represents an error building a table from a source.
type TableError string

const (
	// ErrNoHeader is returned when a source yields no header row.
	ErrNoHeader = TableError("table has no header")
	// ErrRaggedRow is returned when a row has a different number of values than the header.
	ErrRaggedRow = TableError("row length does not match header")
)

func (te TableError) Error() string {
	return string(te)
}

/*
FromRecords takes a slice of string records, the first of them being the
header with the column names, and returns a table with the types of its
columns detected from their values.
*/
func FromRecords(records [][]string) (dataframe.DataFrame, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return dataframe.DataFrame{}, ErrNoHeader
	}
	for i, r := range records[1:] {
		if len(r) != len(records[0]) {
			return dataframe.DataFrame{}, fmt.Errorf("row %d: %w", i+1, ErrRaggedRow)
		}
	}
	df := dataframe.LoadRecords(records, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("loading records: %w", df.Err)
	}
	return df, nil
}
