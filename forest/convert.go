package forest

import (
	"fmt"

	"github.com/forestrie/go-threadforest/threaded"
)

// convertFrame is the worklist entry for one item whose node exists but whose
// children are not all attached yet.
type convertFrame[T any] struct {
	node     *threaded.Node[T]
	children []Item[T]
	next     int
	// last is the node of the most recently attached child. The next child
	// goes to its right.
	last *threaded.Node[T]
}

func newConvertFrame[T any](item Item[T]) *convertFrame[T] {
	node := threaded.New[T]()
	if v, ok := item.Content(); ok {
		node.SetData(v)
	}
	return &convertFrame[T]{node: node, children: item.Children()}
}

func (f *convertFrame[T]) attach(sub *threaded.Node[T]) error {
	var err error
	if f.last == nil {
		err = f.node.AttachLeft(sub)
	} else {
		err = f.last.AttachRight(sub)
	}
	if err != nil {
		return err
	}
	f.last = sub
	return nil
}

// convert builds the subtree for item using an explicit worklist. A child's
// subtree is complete before it is attached and children are attached first to
// last, the same order as the recursive definition. The node count is returned
// alongside.
func convert[T any](item Item[T], o BuilderOptions) (*threaded.Node[T], int, error) {
	if item == nil {
		return nil, 0, ErrNilItem
	}

	count := 1
	stack := []*convertFrame[T]{newConvertFrame(item)}
	for {
		top := stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			if child == nil {
				return nil, 0, fmt.Errorf("%w: child %d at depth %d", ErrNilItem, top.next-1, len(stack)-1)
			}
			if o.PruneEmptyLeaves && isEmptyLeaf(child) {
				continue
			}
			stack = append(stack, newConvertFrame(child))
			count++
			continue
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return top.node, count, nil
		}
		if err := stack[len(stack)-1].attach(top.node); err != nil {
			return nil, 0, err
		}
	}
}
