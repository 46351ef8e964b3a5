package xstat

import (
	"math/rand"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
	"github.com/Xuerui-Yang/xuerui-stat/split"
	"github.com/Xuerui-Yang/xuerui-stat/tree"
)

// grower holds the configuration used to grow a single tree. Every
// tree of a forest gets its own grower, sampler and random source.
type grower struct {
	// maxDepth is the depth at which nodes become leaves regardless
	// of their impurity.
	maxDepth int
	// minGini is the impurity at or below which a node is not split.
	minGini float64
	// features is the number of features on the samples.
	features int
	sampler  FeatureSampler
	rand     *rand.Rand
}

/*
grow takes a slice of samples and the depth of the node to grow from them
and returns the node, recursively growing its subtrees.

The node is a leaf predicting the majority class of the samples when their
impurity is at or below the minimum, the maximum depth has been reached or
no split can partition the samples on the features proposed by the sampler.
Otherwise it is an internal node with the best split found.
*/
func (g *grower) grow(rows []dataset.Sample, depth int) tree.Node {
	if split.Gini(rows) > g.minGini && depth < g.maxDepth {
		s := split.BestSplit(rows, g.sampler.Sample(g.features))
		if !s.IsNone() {
			left, right := s.Partition(rows)
			// a midpoint rounded onto one of its ends can leave a side empty
			if len(left) > 0 && len(right) > 0 {
				return &tree.Internal{
					Split: s,
					Left:  g.grow(left, depth+1),
					Right: g.grow(right, depth+1),
				}
			}
		}
	}
	return &tree.Leaf{Class: vote(dataset.Labels(rows), g.rand)}
}

// defaultMaxDepth returns the maximum depth used when none is given.
func defaultMaxDepth(maxDepth, rows int) int {
	if maxDepth > 0 {
		return maxDepth
	}
	return 2 * rows
}
