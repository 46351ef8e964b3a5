package tree

import (
	"fmt"
	"strings"

	"github.com/Xuerui-Yang/xuerui-stat/dataset"
)

// Tree represents a classification tree grown from a dataset. It
// owns its root node and, through it, every node in the tree.
type Tree struct {
	root Node
}

// New takes the root node of a tree and returns the tree.
func New(root Node) *Tree {
	return &Tree{root}
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.root
}

// Leaf takes a sample and returns the leaf it reaches when walked
// down from the root.
func (t *Tree) Leaf(x []float64) *Leaf {
	n := t.root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node
		case *Internal:
			n = node.Next(x)
		default:
			return nil
		}
	}
}

// Predict takes a sample and returns the class code of the leaf it reaches.
func (t *Tree) Predict(x []float64) int {
	return t.Leaf(x).Class
}

// PredictAll returns the class code predicted for each of the given samples,
// in the same order.
func (t *Tree) PredictAll(xs []dataset.Sample) []int {
	result := make([]int, len(xs))
	for i, x := range xs {
		result[i] = t.Predict(x)
	}
	return result
}

/*
Test takes a slice of labelled samples and the list of categories their
label codes index and returns the confusion matrix of the tree's
predictions for them.
*/
func (t *Tree) Test(samples []dataset.Sample, categories []string) *ConfusionMatrix {
	cm := NewConfusionMatrix(categories)
	for _, s := range samples {
		cm.Add(s.Label(), t.Predict(s))
	}
	return cm
}

// Traverse takes a bottomup boolean and an error-returning function
// that takes a node and its depth, and goes through the tree running
// the function with every traversed node.
// Traverse will call the function with a parent node before calling
// it for its children if bottomup is false, and call it after its
// children if bottomup is true. Left subtrees are traversed before
// right ones. If the call to the function returns an error, the
// traversing is aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(n Node, depth int) error) error {
	return traverse(t.root, 0, bottomup, f)
}

func traverse(n Node, depth int, bottomup bool, f func(Node, int) error) error {
	var err error
	if !bottomup {
		err = f(n, depth)
		if err != nil {
			return err
		}
	}
	if in, ok := n.(*Internal); ok {
		err = traverse(in.Left, depth+1, bottomup, f)
		if err != nil {
			return err
		}
		err = traverse(in.Right, depth+1, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(n, depth)
	}
	return err
}

// Depth returns the depth of the deepest leaf in the tree. A tree with
// a single leaf has depth 0.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(n Node, d int) error {
		if d > depth {
			depth = d
		}
		return nil
	})
	return depth
}

// Leaves returns the number of leaves in the tree.
func (t *Tree) Leaves() int {
	var count int
	t.Traverse(false, func(n Node, _ int) error {
		if _, ok := n.(*Leaf); ok {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	return t.Format(nil, nil)
}

/*
Format returns a multiline text rendering of the tree. Features and
categories, when given, are used to name split features and leaf
classes instead of their indices and codes.
*/
func (t *Tree) Format(features, categories []string) string {
	return subtreeString(t.root, features, categories)
}

func subtreeString(n Node, features, categories []string) string {
	var result string
	var children []Node
	switch node := n.(type) {
	case *Leaf:
		result = fmt.Sprintf("[%s]\n \n", name(categories, node.Class))
	case *Internal:
		result = fmt.Sprintf("{ %s < %v }\n|\n", name(features, node.Split.Feature), node.Split.Threshold)
		children = []Node{node.Left, node.Right}
	}
	for i, child := range children {
		for j, line := range strings.Split(subtreeString(child, features, categories), "\n") {
			if len(strings.TrimSpace(line)) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}

func name(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%d", i)
}
