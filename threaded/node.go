package threaded

// Node is a node of a threaded binary tree. The zero value is an empty,
// detached node.
type Node[T any] struct {
	data    T
	hasData bool

	left  Link[T]
	right Link[T]

	isRoot bool
}

// New returns an empty node. Empty nodes carry structure but no payload.
func New[T any]() *Node[T] {
	return &Node[T]{}
}

// NewWithData returns a detached node holding v.
func NewWithData[T any](v T) *Node[T] {
	return &Node[T]{data: v, hasData: true}
}

// Data returns the payload. ok is false for an empty node.
func (n *Node[T]) Data() (v T, ok bool) {
	return n.data, n.hasData
}

func (n *Node[T]) SetData(v T) {
	n.data = v
	n.hasData = true
}

// ClearData makes the node empty.
func (n *Node[T]) ClearData() {
	var zero T
	n.data = zero
	n.hasData = false
}

func (n *Node[T]) IsEmpty() bool { return !n.hasData }

// IsRoot reports the root mark. Only the node heading a whole tree should
// carry it; attaching a node under another clears it.
func (n *Node[T]) IsRoot() bool { return n.isRoot }

func (n *Node[T]) SetRoot(root bool) { n.isRoot = root }

// IsLeaf is true when neither side is a child.
func (n *Node[T]) IsLeaf() bool {
	return n.left.IsThread() && n.right.IsThread()
}

// Left returns the structural left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left.Child() }

// Right returns the structural right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right.Child() }

func (n *Node[T]) LeftLink() Link[T]  { return n.left }
func (n *Node[T]) RightLink() Link[T] { return n.right }

func (n *Node[T]) LeftIsThread() bool  { return n.left.IsThread() }
func (n *Node[T]) RightIsThread() bool { return n.right.IsThread() }

// Leftmost follows structural left links to the first thread. O(height)
func (n *Node[T]) Leftmost() *Node[T] {
	cur := n
	for cur.left.kind == KindChild {
		cur = cur.left.node
	}
	return cur
}

// Rightmost follows structural right links to the first thread. For a tree
// root this is the frontier. O(height)
func (n *Node[T]) Rightmost() *Node[T] {
	cur := n
	for cur.right.kind == KindChild {
		cur = cur.right.node
	}
	return cur
}

// Successor returns the in-order successor, nil at the end of the tree.
func (n *Node[T]) Successor() *Node[T] {
	if n.right.kind == KindThread {
		return n.right.node
	}
	return n.right.node.Leftmost()
}

// Predecessor returns the in-order predecessor, nil at the start of the tree.
func (n *Node[T]) Predecessor() *Node[T] {
	if n.left.kind == KindThread {
		return n.left.node
	}
	return n.left.node.Rightmost()
}

// IsDetached is true if n heads a subtree that is not threaded into anything
// else: the extreme nodes of its in-order sequence both face the boundary. A
// whole tree's root is detached. O(height)
func (n *Node[T]) IsDetached() bool {
	return n.Leftmost().left.IsBoundary() && n.Rightmost().right.IsBoundary()
}
