/*
Package split implements the search of binary splits on numeric features
that minimise the weighted Gini impurity of the resulting partitions.

All functions in the package are stateless and safe for concurrent use
on shared rows, which they never modify.
*/
package split

import (
	"fmt"
	"sort"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
)

/*
Split describes a binary partition rule on a feature: samples whose value
for the feature is below the threshold go to the left, the rest to the
right. Impurity holds the weighted Gini impurity of the partition on the
rows it was found for.
*/
type Split struct {
	Feature   int
	Threshold float64
	Impurity  float64
}

/*
None is the split returned when rows cannot be partitioned on any of the
candidate features. Its impurity is 1, above that of any actual split.
*/
var None = Split{Feature: -1, Impurity: 1}

// IsNone returns whether the split is the None sentinel.
func (s Split) IsNone() bool {
	return s.Feature < 0
}

/*
Left takes a sample and returns true if it belongs to the left partition
of the split, that is if its value for the feature is below the threshold.
*/
func (s Split) Left(x dataset.Sample) bool {
	return x.Value(s.Feature) < s.Threshold
}

/*
Partition takes a slice of samples and returns two newly allocated slices
with the samples on the left and the right side of the split, keeping
their relative order.
*/
func (s Split) Partition(rows []dataset.Sample) (left, right []dataset.Sample) {
	for _, r := range rows {
		if s.Left(r) {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return left, right
}

func (s Split) String() string {
	if s.IsNone() {
		return "none"
	}
	return fmt.Sprintf("x[%d] < %v", s.Feature, s.Threshold)
}

/*
Gini returns the Gini impurity of a slice of samples: one minus the sum of
the squared proportions of each class among them. The impurity of an empty
slice is 0.
*/
func Gini(rows []dataset.Sample) float64 {
	if len(rows) == 0 {
		return 0
	}
	return gini(classCounts(rows, classNum(rows)), len(rows))
}

/*
BestThreshold takes a slice of samples and a feature index and returns the
split on the feature with the lowest weighted Gini impurity.

Candidate thresholds are the midpoints between consecutive distinct values
of the feature, scanned in ascending order; a candidate replaces the best
one found so far only when its impurity is strictly lower, so the lowest
threshold wins ties. None is returned when the feature takes a single
value on the rows.
*/
func BestThreshold(rows []dataset.Sample, feature int) Split {
	n := len(rows)
	if n < 2 {
		return None
	}
	sorted := make([]dataset.Sample, n)
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value(feature) < sorted[j].Value(feature)
	})
	k := classNum(sorted)
	left := make([]int, k)
	right := classCounts(sorted, k)
	best := None
	bestIndex := -1
	for i := 0; i < n-1; i++ {
		c := sorted[i].Label()
		left[c]++
		right[c]--
		if sorted[i].Value(feature) == sorted[i+1].Value(feature) {
			continue
		}
		pr := float64(i+1) / float64(n)
		impurity := pr*gini(left, i+1) + (1-pr)*gini(right, n-i-1)
		if impurity < best.Impurity {
			best.Impurity = impurity
			bestIndex = i
		}
	}
	if bestIndex < 0 {
		return None
	}
	best.Feature = feature
	best.Threshold = (sorted[bestIndex].Value(feature) + sorted[bestIndex+1].Value(feature)) / 2
	return best
}

/*
BestSplit takes a slice of samples and a slice of candidate feature indices
and returns the split with the lowest impurity among the best thresholds
of each candidate. Features are evaluated in the given order and a later
feature only wins if its impurity is strictly lower. None is returned when
no candidate feature can partition the rows.
*/
func BestSplit(rows []dataset.Sample, features []int) Split {
	best := None
	for _, f := range features {
		s := BestThreshold(rows, f)
		if s.Impurity < best.Impurity {
			best = s
		}
	}
	return best
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	result := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		result -= p * p
	}
	return result
}

func classNum(rows []dataset.Sample) int {
	k := 0
	for _, r := range rows {
		if c := r.Label(); c >= k {
			k = c + 1
		}
	}
	return k
}

func classCounts(rows []dataset.Sample, k int) []int {
	counts := make([]int, k)
	for _, r := range rows {
		counts[r.Label()]++
	}
	return counts
}
