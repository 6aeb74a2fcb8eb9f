package threaded

// Parent derives the structural parent of n from the threads. It returns nil
// for the tree root and for detached nodes.
//
// Cost is O(height) per call; there is no stored parent pointer and nothing is
// amortized. Callers ascending a whole chain (TreeRoot, CommonAncestor) pay
// O(height²).
//
// Two walkers descend from n in lockstep, one along left links and one along
// right links. The first to reach a thread has found an edge of n's in-order
// range:
//
//   - if n is a left child, the successor of its rightmost descendant is the
//     parent
//   - if n is a right child, the predecessor of its leftmost descendant is the
//     parent
//
// A thread target is only accepted if its structural child on the matching side
// is n. If the first edge found does not match, the other walker is completed and
// its edge tested. A node matching neither has no parent.
func (n *Node[T]) Parent() *Node[T] {
	l, r := n, n
	for {
		if r.right.kind == KindThread {
			if p := r.right.node; p != nil && p.left.Child() == n {
				return p
			}
			return n.parentBefore(l)
		}
		if l.left.kind == KindThread {
			if p := l.left.node; p != nil && p.right.Child() == n {
				return p
			}
			return n.parentAfter(r)
		}
		l = l.left.node
		r = r.right.node
	}
}

// parentBefore completes the descent to the leftmost node from l and tests its
// predecessor as the parent of n.
func (n *Node[T]) parentBefore(l *Node[T]) *Node[T] {
	p := l.Leftmost().left.node
	if p != nil && p.right.Child() == n {
		return p
	}
	return nil
}

// parentAfter completes the descent to the rightmost node from r and tests its
// successor as the parent of n.
func (n *Node[T]) parentAfter(r *Node[T]) *Node[T] {
	p := r.Rightmost().right.node
	if p != nil && p.left.Child() == n {
		return p
	}
	return nil
}

// TreeRoot ascends to the top of the tree containing n. O(height²)
func (n *Node[T]) TreeRoot() *Node[T] {
	return n.TreeRootWithin(nil)
}

// TreeRootWithin ascends towards the top of the tree but does not cross
// boundary: it returns the highest ancestor of n (or n) that is strictly below
// boundary. A nil boundary is the same as TreeRoot.
func (n *Node[T]) TreeRootWithin(boundary *Node[T]) *Node[T] {
	cur := n
	for {
		p := cur.Parent()
		if p == nil || (boundary != nil && p == boundary) {
			return cur
		}
		cur = p
	}
}

// CommonAncestorWith is CommonAncestor(n, other).
func (n *Node[T]) CommonAncestorWith(other *Node[T]) *Node[T] {
	return CommonAncestor(n, other)
}

// CommonAncestor returns the lowest node that is an ancestor of, or equal to,
// both a and b. It returns nil if there is none: the nodes are in different
// trees, or either is nil.
//
// Both parent chains are ascended one step at a time in lockstep, starting with
// the nodes themselves, so depths need not be known. The walk stops at the first
// node seen by both chains, either reached simultaneously or already recorded by
// the other side. Each step costs a Parent call.
func CommonAncestor[T any](a, b *Node[T]) *Node[T] {
	if a == nil || b == nil {
		return nil
	}

	seenA := make(map[*Node[T]]struct{})
	seenB := make(map[*Node[T]]struct{})

	for a != nil || b != nil {
		if a != nil && a == b {
			return a
		}
		if a != nil {
			if _, ok := seenB[a]; ok {
				return a
			}
			seenA[a] = struct{}{}
		}
		if b != nil {
			if _, ok := seenA[b]; ok {
				return b
			}
			seenB[b] = struct{}{}
		}
		if a != nil {
			a = a.Parent()
		}
		if b != nil {
			b = b.Parent()
		}
	}
	return nil
}
