package tree

import (
	"github.com/Xuerui-Yang/xuerui-stat/split"
)

/*
Node is a node of a tree: either a *Leaf or an *Internal node.
*/
type Node interface {
	node()
}

/*
Leaf is a terminal node holding the class code predicted for the
samples that reach it.
*/
type Leaf struct {
	Class int
}

/*
Internal is a node that sends samples to its Left subtree when they
satisfy its split and to its Right subtree otherwise. Both subtrees are
owned exclusively by the node.
*/
type Internal struct {
	Split split.Split
	Left  Node
	Right Node
}

func (*Leaf) node()     {}
func (*Internal) node() {}

// Next returns the child node a sample goes to.
func (n *Internal) Next(x []float64) Node {
	if n.Split.Left(x) {
		return n.Left
	}
	return n.Right
}
