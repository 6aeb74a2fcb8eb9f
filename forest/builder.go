package forest

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-threadforest/threaded"
)

// Builder grows a single threaded tree from a sequence of forest items. Each
// appended item is converted to a subtree and spliced to the right of the
// current frontier (the rightmost node), so the forest's roots form the right
// spine of the tree.
//
// A Builder is not safe for concurrent use.
type Builder[T any] struct {
	log  logger.Logger
	opts BuilderOptions

	root *threaded.Node[T]
	// frontier is the last appended subtree. The tree's rightmost node is
	// always frontier.Rightmost(), which saves walking the spine from root.
	frontier *threaded.Node[T]

	roots int
	nodes int
}

// NewBuilder creates an empty Builder. log may be nil, in which case nothing is
// logged.
func NewBuilder[T any](log logger.Logger, opts ...Option) *Builder[T] {
	b := &Builder[T]{log: log}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Root returns the tree built so far, nil until the first append.
func (b *Builder[T]) Root() *threaded.Node[T] { return b.root }

// Len returns the number of forest roots appended.
func (b *Builder[T]) Len() int { return b.roots }

// Size returns the number of nodes converted from items by Append. Subtrees
// added with AppendSubtree are not counted.
func (b *Builder[T]) Size() int { return b.nodes }

// Append converts item and splices it in as the next forest root. With
// WithPruneEmptyLeaves an item with neither payload nor children is skipped.
func (b *Builder[T]) Append(item Item[T]) error {
	if item == nil {
		return ErrNilItem
	}
	if b.opts.PruneEmptyLeaves && isEmptyLeaf(item) {
		b.debugf("forest: pruned empty root item %d", b.roots)
		return nil
	}
	sub, count, err := convert(item, b.opts)
	if err != nil {
		return err
	}
	if err := b.AppendSubtree(sub); err != nil {
		return err
	}
	b.nodes += count
	return nil
}

// AppendAll appends each item in turn, stopping at the first error.
func (b *Builder[T]) AppendAll(items []Item[T]) error {
	for i, item := range items {
		if err := b.Append(item); err != nil {
			return fmt.Errorf("forest item %d: %w", i, err)
		}
	}
	return nil
}

// AppendSubtree splices an already built subtree in as the next forest root.
// sub must be detached and must represent a single item: a subtree with a
// structural right child is rejected with ErrInvalidStructure and nothing is
// changed. The first subtree becomes the tree and is marked as the root.
func (b *Builder[T]) AppendSubtree(sub *threaded.Node[T]) error {
	if sub == nil {
		return threaded.ErrNilNode
	}
	if sub.Right() != nil {
		b.debugf("forest: rejected subtree for root %d, it already has a right sibling", b.roots)
		return fmt.Errorf("%w: subtree for forest root %d extends more than one item", ErrInvalidStructure, b.roots)
	}

	if b.root == nil {
		if !sub.IsDetached() {
			return threaded.ErrAlreadyAttached
		}
		sub.SetRoot(true)
		b.root = sub
	} else if err := b.frontier.ExtendFrontier(sub); err != nil {
		return err
	}
	b.frontier = sub
	b.roots++
	b.debugf("forest: appended root %d", b.roots-1)
	return nil
}

func (b *Builder[T]) debugf(format string, args ...any) {
	if b.log == nil {
		return
	}
	b.log.Debugf(format, args...)
}

// Convert converts a single item into a detached subtree: the item's node with
// its first child's subtree on the left, and each later child's subtree to the
// right of the previous child's node.
//
// The result is not marked as a root; see ConvertAll.
func Convert[T any](item Item[T], opts ...Option) (*threaded.Node[T], error) {
	var o BuilderOptions
	for _, opt := range opts {
		opt(&o)
	}
	sub, _, err := convert(item, o)
	return sub, err
}

// ConvertAll builds one tree from an ordered forest. The first item's subtree
// becomes the tree and each following item is spliced at the frontier. An empty
// forest gives a nil tree and no error.
func ConvertAll[T any](items []Item[T], opts ...Option) (*threaded.Node[T], error) {
	b := NewBuilder[T](nil, opts...)
	if err := b.AppendAll(items); err != nil {
		return nil, err
	}
	return b.Root(), nil
}

func isEmptyLeaf[T any](item Item[T]) bool {
	_, ok := item.Content()
	return !ok && len(item.Children()) == 0
}
