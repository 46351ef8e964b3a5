package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xuerui-Yang/xuerui-stat/table"
	"github.com/Xuerui-Yang/xuerui-stat/table/csv"
	"github.com/Xuerui-Yang/xuerui-stat/table/mongotable"
	"github.com/Xuerui-Yang/xuerui-stat/table/redistable"
	"github.com/Xuerui-Yang/xuerui-stat/table/sqltable"
	"github.com/Xuerui-Yang/xuerui-stat/table/sqltable/pgadapter"
	"github.com/Xuerui-Yang/xuerui-stat/table/sqltable/sqlite3adapter"
	"github.com/go-gota/gota/dataframe"
	"gopkg.in/redis.v5"
)

const inputHelp = "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL, MongoDB or Redis connection URL"

/*
readTable takes a context, an input string and a table name and reads the
table the input points to. The input is interpreted as:
  - a PostgreSQL connection URL if prefixed by postgresql://
  - a MongoDB connection URL if prefixed by mongodb://, reading the
    collection named by tableName
  - a Redis connection URL if prefixed by redis://, reading the table
    stored under the tableName prefix
  - a SQLite3 database file if suffixed by .db
  - a CSV file otherwise, or STDIN if empty
*/
func (rcc *rootCmdConfig) readTable(ctx context.Context, input, tableName string) (dataframe.DataFrame, error) {
	var s table.Source
	switch {
	case input == "":
		rcc.Logf("Reading table from STDIN...")
		s = csv.Open("")
	case strings.HasPrefix(input, "postgresql://"):
		rcc.Logf("Creating PostgreSQL adapter for url %s to read table %s...", input, tableName)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		defer adapter.Close()
		s = sqltable.Open(adapter, tableName)
	case strings.HasPrefix(input, "mongodb://"):
		rcc.Logf("Connecting to MongoDB at %s to read collection %s...", input, tableName)
		session, err := mongotable.Dial(input)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		defer session.Close()
		s = mongotable.New(session, tableName)
	case strings.HasPrefix(input, "redis://"):
		rcc.Logf("Connecting to Redis at %s to read table %s...", input, tableName)
		opts, err := redistable.ClientOptions(input)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		rc := redis.NewClient(opts)
		defer rc.Close()
		s = redistable.New(rc, tableName)
	case strings.HasSuffix(input, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s to read table %s...", input, tableName)
		adapter, err := sqlite3adapter.New(input)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		defer adapter.Close()
		s = sqltable.Open(adapter, tableName)
	default:
		rcc.Logf("Opening %s to read table...", input)
		s = csv.Open(input)
	}
	df, err := s.Table(ctx)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading table: %v", err)
	}
	return df, nil
}
