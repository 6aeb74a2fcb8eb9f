package threaded

import "fmt"

// Fold applies fn to each node in-order from the leftmost descendant of start
// to the end of the tree, threading the accumulator through.
//
// Unlike the cursors, a stop point is inclusive: the fold ends after applying
// fn to it. WithSkipEmpty skips empty nodes but an empty stop point still ends
// the fold.
//
// The fold records every node it visits. Arriving at a node twice can only
// happen if the threads are corrupt, and returns the accumulator so far with
// ErrThreadCycle rather than looping forever. The record lives only as long as
// the call.
func Fold[T, R any](start *Node[T], initial R, fn func(acc R, n *Node[T]) R, opts ...Option) (R, error) {
	acc := initial
	if start == nil {
		return acc, nil
	}
	o := NewTraversalOptions[T](opts...)

	visited := make(map[*Node[T]]struct{})
	for cur := start.Leftmost(); cur != nil; cur = cur.Successor() {
		if _, ok := visited[cur]; ok {
			return acc, fmt.Errorf("%w: node revisited after %d nodes", ErrThreadCycle, len(visited))
		}
		visited[cur] = struct{}{}

		if !o.SkipEmpty || !cur.IsEmpty() {
			acc = fn(acc, cur)
		}
		if cur == o.StopPoint {
			break
		}
	}
	return acc, nil
}

// ToSlice materializes the in-order sequence from start.
func ToSlice[T any](start *Node[T], opts ...Option) ([]*Node[T], error) {
	return Fold(start, make([]*Node[T], 0, 64), func(acc []*Node[T], n *Node[T]) []*Node[T] {
		return append(acc, n)
	}, opts...)
}

// Visit calls visitor for each node of the in-order fold from start.
func Visit[T any](start *Node[T], visitor func(*Node[T]), opts ...Option) error {
	_, err := Fold(start, struct{}{}, func(acc struct{}, n *Node[T]) struct{} {
		visitor(n)
		return acc
	}, opts...)
	return err
}

// CountNonEmpty counts the nodes with a payload, in-order from start up to and
// including upToIncluding. A nil upToIncluding counts to the end of the tree.
func CountNonEmpty[T any](start *Node[T], upToIncluding *Node[T]) (int, error) {
	return Fold(start, 0, func(acc int, n *Node[T]) int {
		return acc + 1
	}, WithSkipEmpty(), WithStopPoint(upToIncluding))
}
