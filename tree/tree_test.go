package tree

import (
	"errors"
	"math"
	"testing"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
	"github.com/Xuerui-Yang/xuerui-stat/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// x0 < 2.5 ? A : (x1 < 10 ? B : C)
func sampleTree() *Tree {
	return New(&Internal{
		Split: split.Split{Feature: 0, Threshold: 2.5},
		Left:  &Leaf{Class: 0},
		Right: &Internal{
			Split: split.Split{Feature: 1, Threshold: 10},
			Left:  &Leaf{Class: 1},
			Right: &Leaf{Class: 2},
		},
	})
}

func TestPredict(t *testing.T) {
	tr := sampleTree()
	assert.Equal(t, 0, tr.Predict([]float64{1, 100}))
	assert.Equal(t, 1, tr.Predict([]float64{2.5, 9.99}))
	assert.Equal(t, 2, tr.Predict([]float64{3, 10}))
	assert.Equal(t, []int{2, 0, 1}, tr.PredictAll([]dataset.Sample{{4, 11}, {0, 0}, {5, 0}}))
}

func TestSingleLeafPredictsItsClass(t *testing.T) {
	tr := New(&Leaf{Class: 3})
	for _, x := range [][]float64{{-1e9, 0}, {0, 0}, {42, -7}, {math.Inf(1), 1}} {
		assert.Equal(t, 3, tr.Predict(x))
	}
	assert.Equal(t, 0, tr.Depth())
	assert.Equal(t, 1, tr.Leaves())
}

func TestDepthAndLeaves(t *testing.T) {
	tr := sampleTree()
	assert.Equal(t, 2, tr.Depth())
	assert.Equal(t, 3, tr.Leaves())
}

func TestTraverseOrder(t *testing.T) {
	tr := sampleTree()
	var topdown, bottomup []string
	err := tr.Traverse(false, func(n Node, d int) error {
		topdown = append(topdown, describe(n))
		return nil
	})
	require.NoError(t, err)
	err = tr.Traverse(true, func(n Node, d int) error {
		bottomup = append(bottomup, describe(n))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x[0] < 2.5", "leaf 0", "x[1] < 10", "leaf 1", "leaf 2"}, topdown)
	assert.Equal(t, []string{"leaf 0", "leaf 1", "leaf 2", "x[1] < 10", "x[0] < 2.5"}, bottomup)

	stop := errors.New("stop")
	var visited int
	err = tr.Traverse(false, func(n Node, d int) error {
		visited++
		if d == 1 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 2, visited)
}

func describe(n Node) string {
	switch node := n.(type) {
	case *Leaf:
		return "leaf " + name(nil, node.Class)
	case *Internal:
		return node.Split.String()
	}
	return ""
}

func TestFormat(t *testing.T) {
	expected := "{ x < 2.5 }\n" +
		"|\n" +
		"|__[A]\n" +
		"|__{ y < 10 }\n" +
		"   |\n" +
		"   |__[B]\n" +
		"   |__[C]\n"
	assert.Equal(t, expected, sampleTree().Format([]string{"x", "y"}, []string{"A", "B", "C"}))
}

func TestTestBuildsConfusionMatrix(t *testing.T) {
	tr := sampleTree()
	samples := []dataset.Sample{
		{1, 0, 0},
		{2, 0, 0},
		{3, 5, 1},
		{3, 50, 1},
		{1, 50, 2},
	}
	cm := tr.Test(samples, []string{"A", "B", "C"})
	assert.Equal(t, [][]int{{2, 0, 0}, {0, 1, 1}, {1, 0, 0}}, cm.Counts)
	assert.Equal(t, 5, cm.Total())
	assert.Equal(t, 3, cm.Trace())
	assert.InDelta(t, 0.4, cm.ErrorRate(), 1e-12)
}

func TestEmptyConfusionMatrix(t *testing.T) {
	cm := NewConfusionMatrix([]string{"A", "B"})
	assert.True(t, math.IsNaN(cm.ErrorRate()))
	assert.Contains(t, cm.String(), "A")
}
