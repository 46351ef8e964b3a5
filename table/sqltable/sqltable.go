/*
Package sqltable provides a table.Source that reads tables from SQL
databases through an Adapter.

Adapters for specific database engines are available in the
sqlite3adapter and pgadapter subpackages.
*/
package sqltable

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Xuerui-Yang/xuerui-stat/table"
	"github.com/go-gota/gota/dataframe"
)

/*
Adapter is an interface providing the methods needed to read a table from
a database backend.

SelectAll takes a context and a validated table name and returns the rows
of every column of the table, in a stable order.
*/
type Adapter interface {
	SelectAll(ctx context.Context, tableName string) (*sql.Rows, error)
	Close() error
}

// missingValue is the value NULL columns are read as.
const missingValue = "NaN"

/*
TableName takes a table name and returns it if it is valid to be quoted
into a statement or an error otherwise.
*/
func TableName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("table name cannot be empty")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`table name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

/*
Open takes an Adapter and a table name and returns a table.Source that
reads the table from the adapter's database.
*/
func Open(a Adapter, tableName string) table.Source {
	return table.SourceFunc(func(ctx context.Context) (dataframe.DataFrame, error) {
		return ReadTable(ctx, a, tableName)
	})
}

/*
ReadTable takes a context, an Adapter and a table name and returns the
table read through the adapter or an error. NULL values are read as NaN.
*/
func ReadTable(ctx context.Context, a Adapter, tableName string) (dataframe.DataFrame, error) {
	name, err := TableName(tableName)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	rows, err := a.SelectAll(ctx, name)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("selecting rows from %s: %v", name, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("listing columns of %s: %v", name, err)
	}
	records := [][]string{columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		err = rows.Scan(dest...)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("scanning row %d of %s: %v", len(records), name, err)
		}
		record := make([]string, len(columns))
		for i, v := range values {
			record[i] = missingValue
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading rows of %s: %v", name, err)
	}
	return table.FromRecords(records)
}
