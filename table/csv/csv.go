/*
Package csv provides methods to read tables from CSV streams.
*/
package csv

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Xuerui-Yang/xuerui-stat/table"
	"github.com/go-gota/gota/dataframe"
)

/*
ReadTable takes an io.Reader for a CSV stream and returns the table parsed
from it or an error.

The header or first row of the CSV content is expected to consist of the
names of the columns. Column types are detected from their values; the
'NA' and 'NaN' strings as well as empty values stand for missing values.
*/
func ReadTable(reader io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(reader, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading CSV table: %w", df.Err)
	}
	return df, nil
}

/*
ReadTableFromFilePath takes a filepath string, opens the file to which it
points and uses ReadTable to return the table read from it or an error.
If the filepath is "" os.Stdin is read instead.
*/
func ReadTableFromFilePath(filepath string) (dataframe.DataFrame, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("opening CSV file: %v", err)
		}
		defer f.Close()
	}
	df, err := ReadTable(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return df, err
}

/*
Open takes a filepath string and returns a table.Source that reads the CSV
file to which it points, or os.Stdin if it is "".
*/
func Open(filepath string) table.Source {
	return table.SourceFunc(func(ctx context.Context) (dataframe.DataFrame, error) {
		if err := ctx.Err(); err != nil {
			return dataframe.DataFrame{}, err
		}
		return ReadTableFromFilePath(filepath)
	})
}

/*
WriteTable takes an io.Writer and a table and dumps the table to the writer
in CSV format, header included.
*/
func WriteTable(writer io.Writer, df dataframe.DataFrame) error {
	err := df.WriteCSV(writer)
	if err != nil {
		return fmt.Errorf("writing CSV table: %v", err)
	}
	return nil
}
