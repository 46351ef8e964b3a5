package tree

import (
	"bytes"
	"fmt"
	"math"
	"text/tabwriter"
)

/*
ConfusionMatrix counts predictions by true and predicted class: Counts[i][j]
is the number of samples of class i predicted as class j. Categories names
the classes of both rows and columns.
*/
type ConfusionMatrix struct {
	Categories []string
	Counts     [][]int
}

// NewConfusionMatrix returns an empty K×K confusion matrix for the given categories.
func NewConfusionMatrix(categories []string) *ConfusionMatrix {
	counts := make([][]int, len(categories))
	for i := range counts {
		counts[i] = make([]int, len(categories))
	}
	return &ConfusionMatrix{categories, counts}
}

// Add records a prediction of class predicted for a sample of class actual.
func (cm *ConfusionMatrix) Add(actual, predicted int) {
	cm.Counts[actual][predicted]++
}

// Total returns the number of predictions recorded on the matrix.
func (cm *ConfusionMatrix) Total() int {
	var total int
	for _, row := range cm.Counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// Trace returns the number of correct predictions recorded on the matrix.
func (cm *ConfusionMatrix) Trace() int {
	var trace int
	for i := range cm.Counts {
		trace += cm.Counts[i][i]
	}
	return trace
}

/*
ErrorRate returns the proportion of wrong predictions on the matrix,
1 - Trace/Total, or NaN if it is empty.
*/
func (cm *ConfusionMatrix) ErrorRate() float64 {
	total := cm.Total()
	if total == 0 {
		return math.NaN()
	}
	return 1 - float64(cm.Trace())/float64(total)
}

func (cm *ConfusionMatrix) String() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, c := range cm.Categories {
		fmt.Fprintf(w, "\t%s", c)
	}
	fmt.Fprintln(w, "\t")
	for i, row := range cm.Counts {
		fmt.Fprint(w, cm.Categories[i])
		for _, c := range row {
			fmt.Fprintf(w, "\t%d", c)
		}
		fmt.Fprintln(w, "\t")
	}
	w.Flush()
	return buf.String()
}
