/*
Package dataset turns tables into the numeric samples trees are grown from.

A Dataset keeps the feature columns of a table in their original order,
moves the label column to the last position and replaces each label value
with the position of its category in the list of categories found on the
table, in order of first appearance.
*/
package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/samber/lo"
)

/*
Dataset is a preprocessed table. Its samples hold the feature values in the
order given by Features followed by the label code, an index on Categories.
Once built, neither the column order nor the category mapping changes.
*/
type Dataset struct {
	Label      string
	Features   []string
	Categories []string
	Samples    []Sample
}

/*
New takes a table and the name of its label column and returns the
Dataset obtained by preprocessing it or an error.

ErrInvalidLabelColumn is returned when the label column is not in the
table, ErrNonNumericFeature when any other column is not numeric and
ErrMissingValue when a feature value is NaN.
*/
func New(df dataframe.DataFrame, label string) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("preprocessing table: %w", df.Err)
	}
	names := df.Names()
	if !lo.Contains(names, label) {
		return nil, fmt.Errorf("preprocessing table: %w: %q", ErrInvalidLabelColumn, label)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("preprocessing table: %w", ErrEmptyTable)
	}
	labels := labelValues(df.Col(label))
	d := &Dataset{
		Label:      label,
		Features:   lo.Without(names, label),
		Categories: lo.Uniq(labels),
	}
	columns, err := d.featureColumns(df)
	if err != nil {
		return nil, fmt.Errorf("preprocessing table: %w", err)
	}
	codes := make(map[string]int, len(d.Categories))
	for i, c := range d.Categories {
		codes[c] = i
	}
	d.Samples = make([]Sample, len(labels))
	for i, l := range labels {
		s := make(Sample, len(d.Features)+1)
		for j, column := range columns {
			s[j] = column[i]
		}
		s[len(d.Features)] = float64(codes[l])
		d.Samples[i] = s
	}
	return d, nil
}

// RowsNum returns the number of samples in the dataset.
func (d *Dataset) RowsNum() int {
	return len(d.Samples)
}

// ColumnsNum returns the number of columns in the dataset, label included.
func (d *Dataset) ColumnsNum() int {
	return len(d.Features) + 1
}

/*
Category takes a class code and returns the label value it stands for
or an empty string if the code is out of range.
*/
func (d *Dataset) Category(code int) string {
	if code < 0 || code >= len(d.Categories) {
		return ""
	}
	return d.Categories[code]
}

/*
Encode takes a table with the same feature and label columns as the one
the dataset was built from, in any order, and returns its rows as samples
coded with the dataset's column order and category mapping.

Label values not seen on the training table produce an ErrUnknownCategory
error, as the mapping is never extended after the dataset is built.
*/
func (d *Dataset) Encode(df dataframe.DataFrame) ([]Sample, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("encoding table: %w", df.Err)
	}
	if !lo.Contains(df.Names(), d.Label) {
		return nil, fmt.Errorf("encoding table: %w: %q", ErrInvalidLabelColumn, d.Label)
	}
	samples, err := d.EncodeFeatures(df)
	if err != nil {
		return nil, err
	}
	for i, l := range labelValues(df.Col(d.Label)) {
		code := lo.IndexOf(d.Categories, l)
		if code < 0 {
			return nil, fmt.Errorf("encoding table: row %d: %w: %q", i, ErrUnknownCategory, l)
		}
		samples[i] = append(samples[i], float64(code))
	}
	return samples, nil
}

/*
EncodeFeatures takes a table holding at least the dataset's feature columns
and returns its rows as samples without a label code, ready to be predicted.
*/
func (d *Dataset) EncodeFeatures(df dataframe.DataFrame) ([]Sample, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("encoding table: %w", df.Err)
	}
	columns, err := d.featureColumns(df)
	if err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	samples := make([]Sample, df.Nrow())
	for i := range samples {
		s := make(Sample, len(d.Features), len(d.Features)+1)
		for j, column := range columns {
			s[j] = column[i]
		}
		samples[i] = s
	}
	return samples, nil
}

// labelValues returns the values of a label column as strings. Float values
// are written in their shortest form so that 2 and 2.0 name one category.
func labelValues(col series.Series) []string {
	if col.Type() != series.Float {
		return col.Records()
	}
	values := col.Float()
	records := make([]string, len(values))
	for i, v := range values {
		records[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return records
}

func (d *Dataset) featureColumns(df dataframe.DataFrame) ([][]float64, error) {
	names := df.Names()
	columns := make([][]float64, len(d.Features))
	for j, f := range d.Features {
		if !lo.Contains(names, f) {
			return nil, fmt.Errorf("%w: %q", ErrMissingFeatureColumn, f)
		}
		col := df.Col(f)
		switch col.Type() {
		case series.Float, series.Int:
		default:
			return nil, fmt.Errorf("%w: %q has type %s", ErrNonNumericFeature, f, col.Type())
		}
		values := col.Float()
		for i, v := range values {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%w: %q at row %d", ErrMissingValue, f, i)
			}
		}
		columns[j] = values
	}
	return columns, nil
}
