package dataset

import (
	"fmt"
	"strings"
)

/*
Sample represents a row of a preprocessed dataset: the values of the
features in the dataset's feature order followed by the integer code
of the row's class.

Samples used only for prediction may omit the trailing class code.
*/
type Sample []float64

/*
Label returns the class code stored in the last position of the sample.
*/
func (s Sample) Label() int {
	return int(s[len(s)-1])
}

/*
Value takes a feature index and returns the sample's value for it.
*/
func (s Sample) Value(feature int) float64 {
	return s[feature]
}

func (s Sample) String() string {
	values := make([]string, len(s))
	for i, v := range s {
		values[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("[%s]", strings.Join(values, " "))
}

// Labels returns the class codes of the given samples in order.
func Labels(samples []Sample) []int {
	labels := make([]int, len(samples))
	for i, s := range samples {
		labels[i] = s.Label()
	}
	return labels
}
