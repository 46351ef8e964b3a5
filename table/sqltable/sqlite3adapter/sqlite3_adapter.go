/*
Package sqlite3adapter provides an implementation of the Adapter interface
in the sqltable package that works over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xuerui-Yang/xuerui-stat/table/sqltable"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqltable.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

// NewWithDB returns an Adapter over an already opened SQLite3 database.
func NewWithDB(db *sql.DB) sqltable.Adapter {
	return &adapter{db}
}

// SelectAll returns the rows of the table in insertion order.
func (a *adapter) SelectAll(ctx context.Context, tableName string) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid`, tableName))
}

func (a *adapter) Close() error {
	return a.db.Close()
}
