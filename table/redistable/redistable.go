/*
Package redistable provides a table.Source that reads tables stored in a
Redis database under a key prefix:

	<prefix>:columns      list with the column names, in order
	<prefix>:rows         list with the row ids, in order
	<prefix>:row:<id>     hash with the values of a row by column name
*/
package redistable

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Xuerui-Yang/xuerui-stat/table"
	"github.com/go-gota/gota/dataframe"
	"gopkg.in/redis.v5"
)

const missingValue = "NaN"

type redistable struct {
	rc     *redis.Client
	prefix string
}

// New builds a table.Source over the table stored on a redis DB under
// the given prefix.
func New(rc *redis.Client, prefix string) table.Source {
	return &redistable{rc, prefix}
}

/*
ClientOptions takes a redis://[:password@]host[:port][/db] URL and returns
the options to connect a client to it.
*/
func ClientOptions(redisURL string) (*redis.Options, error) {
	u, err := url.Parse(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %v", err)
	}
	if u.Scheme != "redis" {
		return nil, fmt.Errorf("invalid redis URL scheme %q", u.Scheme)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = u.Host + ":6379"
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid redis DB %q: %v", db, err)
		}
	}
	return opts, nil
}

func (rt *redistable) Table(ctx context.Context) (dataframe.DataFrame, error) {
	columns, err := rt.rc.LRange(rt.keyFor("columns"), 0, -1).Result()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading columns from redis: %v", err)
	}
	ids, err := rt.rc.LRange(rt.keyFor("rows"), 0, -1).Result()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading row ids from redis: %v", err)
	}
	rows := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			return dataframe.DataFrame{}, ctx.Err()
		}
		row, err := rt.rc.HGetAll(rt.keyFor("row:" + id)).Result()
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("reading row %s from redis: %v", id, err)
		}
		rows = append(rows, row)
	}
	return table.FromRecords(recordsFromHashes(columns, rows))
}

func (rt *redistable) keyFor(suffix string) string {
	return fmt.Sprintf("%s:%s", rt.prefix, suffix)
}

func recordsFromHashes(columns []string, rows []map[string]string) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, columns)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, c := range columns {
			v, ok := row[c]
			if !ok {
				v = missingValue
			}
			record[i] = v
		}
		records = append(records, record)
	}
	return records
}
