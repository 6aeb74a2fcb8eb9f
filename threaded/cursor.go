package threaded

import "iter"

// Order selects the traversal a Cursor performs.
type Order uint8

const (
	// InOrder runs from the leftmost descendant of the start node to the end
	// of the tree.
	InOrder Order = iota
	// ReverseInOrder runs from the rightmost descendant of the start node
	// back to the start of the tree.
	ReverseInOrder
	// PreOrder visits the start node, then its left subtree, then its right
	// subtree.
	PreOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case ReverseInOrder:
		return "reverse"
	case PreOrder:
		return "pre"
	default:
		return "invalid"
	}
}

// Cursor is a peekable iterator over a tree. The in-order variants are driven
// entirely by the threads; PreOrder keeps a stack of pending right subtrees.
//
// A cursor is invalidated by any mutation of the tree it walks.
type Cursor[T any] struct {
	order   Order
	opts    TraversalOptions[T]
	current *Node[T]
	pending []*Node[T]
}

// NewCursor positions a cursor on the first node start yields in the given
// order. A stop point equal to start gives an exhausted cursor.
func NewCursor[T any](start *Node[T], order Order, opts ...Option) *Cursor[T] {
	c := &Cursor[T]{
		order: order,
		opts:  NewTraversalOptions[T](opts...),
	}
	if start == nil || start == c.opts.StopPoint {
		return c
	}

	var first *Node[T]
	switch order {
	case InOrder:
		first = start.Leftmost()
	case ReverseInOrder:
		first = start.Rightmost()
	case PreOrder:
		first = start
	}
	c.settle(first)
	return c
}

// Peek returns the node Next would return, without advancing.
func (c *Cursor[T]) Peek() *Node[T] { return c.current }

// Done is true once the cursor is exhausted.
func (c *Cursor[T]) Done() bool { return c.current == nil }

// Next returns the current node and advances. It returns nil when exhausted.
func (c *Cursor[T]) Next() *Node[T] {
	cur := c.current
	if cur == nil {
		return nil
	}
	c.settle(c.step(cur))
	return cur
}

// settle makes cand, or the first acceptable node after it, current.
func (c *Cursor[T]) settle(cand *Node[T]) {
	for cand != nil {
		if cand == c.opts.StopPoint {
			break
		}
		if !c.opts.SkipEmpty || !cand.IsEmpty() {
			c.current = cand
			return
		}
		cand = c.step(cand)
	}
	c.current = nil
	c.pending = nil
}

func (c *Cursor[T]) step(n *Node[T]) *Node[T] {
	switch c.order {
	case InOrder:
		return n.Successor()
	case ReverseInOrder:
		return n.Predecessor()
	case PreOrder:
		if r := n.right.Child(); r != nil {
			c.pending = append(c.pending, r)
		}
		if l := n.left.Child(); l != nil {
			return l
		}
		if len(c.pending) == 0 {
			return nil
		}
		next := c.pending[len(c.pending)-1]
		c.pending = c.pending[:len(c.pending)-1]
		return next
	}
	return nil
}

// Walk returns a restartable sequence of the nodes start yields in the given
// order. Each range over it uses a fresh Cursor.
func Walk[T any](start *Node[T], order Order, opts ...Option) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		c := NewCursor(start, order, opts...)
		for n := c.Next(); n != nil; n = c.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// InOrder walks forwards from the leftmost descendant of n to the end of the
// tree. See WithSkipEmpty and WithStopPoint.
func (n *Node[T]) InOrder(opts ...Option) iter.Seq[*Node[T]] {
	return Walk(n, InOrder, opts...)
}

// ReverseInOrder walks backwards from the rightmost descendant of n to the
// start of the tree.
func (n *Node[T]) ReverseInOrder(opts ...Option) iter.Seq[*Node[T]] {
	return Walk(n, ReverseInOrder, opts...)
}

// PreOrder walks the binary subtree headed by n, which for a forest item is the
// item, its descendants and its following siblings.
func (n *Node[T]) PreOrder(opts ...Option) iter.Seq[*Node[T]] {
	return Walk(n, PreOrder, opts...)
}
