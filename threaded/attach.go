package threaded

import "fmt"

func (n *Node[T]) checkAttachable(sub *Node[T]) error {
	if sub == nil {
		return ErrNilNode
	}
	if sub == n {
		return ErrSelfAttach
	}
	if !sub.IsDetached() {
		return ErrAlreadyAttached
	}
	return nil
}

// AttachLeft installs the detached subtree sub as the left child of n. The
// whole of sub comes immediately before n in the in-order sequence.
//
// If n already has a left subtree, that subtree becomes the left child of the
// leftmost node of sub, so it still precedes everything in sub. Otherwise the
// leftmost node of sub inherits n's predecessor thread.
//
// Nothing is changed if an error is returned.
func (n *Node[T]) AttachLeft(sub *Node[T]) error {
	if err := n.checkAttachable(sub); err != nil {
		return err
	}

	subLeftmost := sub.Leftmost()
	subRightmost := sub.Rightmost()

	if old := n.left.Child(); old != nil {
		old.Rightmost().right = threadLink(subLeftmost)
	}
	subLeftmost.left = n.left
	subRightmost.right = threadLink(n)
	n.left = childLink(sub)
	sub.isRoot = false
	return nil
}

// AttachRight installs the detached subtree sub as the right child of n. The
// whole of sub comes immediately after n in the in-order sequence.
//
// If n already has a right subtree, that subtree becomes the right child of the
// rightmost node of sub. Otherwise the rightmost node of sub inherits n's
// successor thread.
//
// Nothing is changed if an error is returned.
func (n *Node[T]) AttachRight(sub *Node[T]) error {
	if err := n.checkAttachable(sub); err != nil {
		return err
	}

	subLeftmost := sub.Leftmost()
	subRightmost := sub.Rightmost()

	if old := n.right.Child(); old != nil {
		old.Leftmost().left = threadLink(subRightmost)
	}
	subRightmost.right = n.right
	subLeftmost.left = threadLink(n)
	n.right = childLink(sub)
	sub.isRoot = false
	return nil
}

// ExtendFrontier attaches sub to the right of the Rightmost node of n. sub
// must represent a single forest item: a subtree with no structural right
// child. Otherwise ErrInvalidStructure is returned and nothing is changed.
func (n *Node[T]) ExtendFrontier(sub *Node[T]) error {
	if sub == nil {
		return ErrNilNode
	}
	if sub.right.Child() != nil {
		return fmt.Errorf("%w: subtree already extends to a right sibling", ErrInvalidStructure)
	}
	return n.Rightmost().AttachRight(sub)
}
