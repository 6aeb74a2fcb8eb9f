package threaded

// Link is one side of a Node. It is either a Child, which owns the subtree it
// refers to, or a Thread to the in-order predecessor (left) or successor
// (right). A Thread with a nil target is the tree boundary.
type Link[T any] struct {
	kind LinkKind
	node *Node[T]
}

func childLink[T any](n *Node[T]) Link[T] {
	return Link[T]{kind: KindChild, node: n}
}

func threadLink[T any](n *Node[T]) Link[T] {
	return Link[T]{kind: KindThread, node: n}
}

// Kind reports whether the link is a child or a thread.
func (l Link[T]) Kind() LinkKind { return l.kind }

// IsThread is true for threads, including the boundary thread.
func (l Link[T]) IsThread() bool { return l.kind == KindThread }

// IsBoundary is true for a thread with no target.
func (l Link[T]) IsBoundary() bool { return l.kind == KindThread && l.node == nil }

// Child returns the owned subtree, or nil if the link is a thread.
func (l Link[T]) Child() *Node[T] {
	if l.kind != KindChild {
		return nil
	}
	return l.node
}

// Thread returns the thread target. ok is false if the link is a child.
// A nil target with ok true is the tree boundary.
func (l Link[T]) Thread() (target *Node[T], ok bool) {
	if l.kind != KindThread {
		return nil, false
	}
	return l.node, true
}

// Target returns whatever the link refers to regardless of kind.
func (l Link[T]) Target() *Node[T] { return l.node }
