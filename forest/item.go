package forest

// Item is a hierarchical data source: a payload, which may be absent, and an
// ordered list of child items.
type Item[T any] interface {
	Content() (T, bool)
	Children() []Item[T]
}

// Block is the plain Item implementation.
type Block[T any] struct {
	Value    T
	HasValue bool
	Items    []Item[T]
}

// NewBlock returns a block holding v with the given children.
func NewBlock[T any](v T, children ...Item[T]) *Block[T] {
	return &Block[T]{Value: v, HasValue: true, Items: children}
}

// EmptyBlock returns a block with no payload. It converts to an empty node,
// which exists only to hold its children.
func EmptyBlock[T any](children ...Item[T]) *Block[T] {
	return &Block[T]{Items: children}
}

// Leaves returns one childless block per value.
func Leaves[T any](values ...T) []Item[T] {
	items := make([]Item[T], 0, len(values))
	for _, v := range values {
		items = append(items, NewBlock(v))
	}
	return items
}

func (b *Block[T]) Content() (T, bool) { return b.Value, b.HasValue }

func (b *Block[T]) Children() []Item[T] { return b.Items }

// Add appends children and returns b.
func (b *Block[T]) Add(children ...Item[T]) *Block[T] {
	b.Items = append(b.Items, children...)
	return b
}
