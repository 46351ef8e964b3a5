/*
Package pgadapter provides an implementation of the
Adapter interface in the sqltable package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Xuerui-Yang/xuerui-stat/table/sqltable"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqltable.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

// SelectAll returns the rows of the table in physical order.
func (a *adapter) SelectAll(ctx context.Context, tableName string) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" ORDER BY ctid`, tableName))
}

func (a *adapter) Close() error {
	return a.db.Close()
}
