package threaded

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Render draws the structural links of the tree headed by root as branches
// tagged L and R. Threads are drawn as leaves tagged l~ and r~ carrying the
// label of their target. format labels payloads; nil uses %v.
func Render[T any](root *Node[T], format func(T) string) string {
	if root == nil {
		return ""
	}
	if format == nil {
		format = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	label := func(n *Node[T]) string {
		if n == nil {
			return "nil"
		}
		v, ok := n.Data()
		if !ok {
			return "<empty>"
		}
		return format(v)
	}

	rootLabel := label(root)
	if root.IsRoot() {
		rootLabel += " (root)"
	}
	tree := treeprint.NewWithRoot(rootLabel)

	type frame struct {
		node   *Node[T]
		branch treeprint.Tree
	}
	stack := []frame{{root, tree}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var children []frame
		if l := f.node.Left(); l != nil {
			children = append(children, frame{l, f.branch.AddMetaBranch("L", label(l))})
		} else {
			f.branch.AddMetaNode("l~", label(f.node.left.node))
		}
		if r := f.node.Right(); r != nil {
			children = append(children, frame{r, f.branch.AddMetaBranch("R", label(r))})
		} else {
			f.branch.AddMetaNode("r~", label(f.node.right.node))
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return tree.String()
}
