package threaded

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newExampleTree builds the binary encoding of the forest
//
//	1{2{3,4,5},6{7,8,9},10}, 11
//
// with the attach calls a forest builder makes, in the same order.
func newExampleTree(t *testing.T) (*Node[int], map[int]*Node[int]) {
	t.Helper()
	nodes := make(map[int]*Node[int])
	for i := 1; i <= 11; i++ {
		nodes[i] = NewWithData(i)
	}

	chain := func(parent int, children ...int) {
		require.NoError(t, nodes[parent].AttachLeft(nodes[children[0]]))
		for i := 1; i < len(children); i++ {
			require.NoError(t, nodes[children[i-1]].AttachRight(nodes[children[i]]))
		}
	}

	chain(2, 3, 4, 5)
	require.NoError(t, nodes[1].AttachLeft(nodes[2]))
	chain(6, 7, 8, 9)
	require.NoError(t, nodes[2].AttachRight(nodes[6]))
	require.NoError(t, nodes[6].AttachRight(nodes[10]))

	root := nodes[1]
	root.SetRoot(true)
	require.NoError(t, root.ExtendFrontier(nodes[11]))
	return root, nodes
}

func values(seq func(func(*Node[int]) bool)) []int {
	var out []int
	for n := range seq {
		v, _ := n.Data()
		out = append(out, v)
	}
	return out
}

// structuralInOrder walks child links only, recursively, as a reference for
// what the threads must reproduce.
func structuralInOrder[T any](n *Node[T], out []*Node[T]) []*Node[T] {
	if n == nil {
		return out
	}
	out = structuralInOrder(n.Left(), out)
	out = append(out, n)
	return structuralInOrder(n.Right(), out)
}

func structuralPreOrder[T any](n *Node[T], out []*Node[T]) []*Node[T] {
	if n == nil {
		return out
	}
	out = append(out, n)
	out = structuralPreOrder(n.Left(), out)
	return structuralPreOrder(n.Right(), out)
}

// requireThreadsConsistent checks every thread against the structural in-order
// sequence and every child against Parent.
func requireThreadsConsistent[T any](t *testing.T, root *Node[T]) {
	t.Helper()
	seq := structuralInOrder(root, nil)
	for i, n := range seq {
		var pred, succ *Node[T]
		if i > 0 {
			pred = seq[i-1]
		}
		if i+1 < len(seq) {
			succ = seq[i+1]
		}
		require.Same(t, pred, n.Predecessor(), "predecessor of node %d", i)
		require.Same(t, succ, n.Successor(), "successor of node %d", i)
		if target, ok := n.LeftLink().Thread(); ok {
			require.Same(t, pred, target, "left thread of node %d", i)
		}
		if target, ok := n.RightLink().Thread(); ok {
			require.Same(t, succ, target, "right thread of node %d", i)
		}
		if l := n.Left(); l != nil {
			require.Same(t, n, l.Parent(), "parent of left child of node %d", i)
		}
		if r := n.Right(); r != nil {
			require.Same(t, n, r.Parent(), "parent of right child of node %d", i)
		}
	}
	require.Nil(t, root.Parent())
}
