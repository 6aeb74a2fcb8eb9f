package forest

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/forestrie/go-threadforest/threaded"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomForest builds a forest of uuid labelled blocks. Roughly one block in
// eight has no payload.
func randomForest(rng *rand.Rand, roots, budget int) []Item[string] {
	var items []Item[string]
	var open []*Block[string]
	for i := 0; i < budget; i++ {
		var b *Block[string]
		if rng.Intn(8) == 0 {
			b = EmptyBlock[string]()
		} else {
			b = NewBlock(uuid.NewString())
		}
		if len(open) == 0 || len(items) < roots && rng.Intn(3) == 0 {
			items = append(items, b)
		} else {
			open[rng.Intn(len(open))].Add(b)
		}
		open = append(open, b)
	}
	return items
}

func label(n *threaded.Node[string]) string {
	if v, ok := n.Data(); ok {
		return v
	}
	return "<empty>"
}

func itemLabel(item Item[string]) string {
	if v, ok := item.Content(); ok {
		return v
	}
	return "<empty>"
}

func forestPreOrder(items []Item[string], out []string) []string {
	for _, item := range items {
		out = append(out, itemLabel(item))
		out = forestPreOrder(item.Children(), out)
	}
	return out
}

func forestPostOrder(items []Item[string], out []string) []string {
	for _, item := range items {
		out = forestPostOrder(item.Children(), out)
		out = append(out, itemLabel(item))
	}
	return out
}

func labels(seq func(func(*threaded.Node[string]) bool)) []string {
	var out []string
	for n := range seq {
		out = append(out, label(n))
	}
	return out
}

func TestRandomForestOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 25; round++ {
		items := randomForest(rng, 1+rng.Intn(5), 1+rng.Intn(200))

		root, err := ConvertAll(items)
		require.NoError(t, err)
		require.NotNil(t, root)

		pre := labels(root.PreOrder())
		in := labels(root.InOrder())
		reverse := labels(root.ReverseInOrder())

		assert.Equal(t, forestPreOrder(items, nil), pre, "round %d", round)
		assert.Equal(t, forestPostOrder(items, nil), in, "round %d", round)

		slices.Reverse(reverse)
		assert.Equal(t, in, reverse, "round %d", round)
	}
}

func TestRandomForestParents(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 10; round++ {
		root, err := ConvertAll(randomForest(rng, 3, 150))
		require.NoError(t, err)

		for n := range root.PreOrder() {
			if l := n.Left(); l != nil {
				require.Same(t, n, l.Parent(), "round %d", round)
			}
			if r := n.Right(); r != nil {
				require.Same(t, n, r.Parent(), "round %d", round)
			}
			require.Same(t, root, n.TreeRoot(), "round %d", round)
		}
		assert.Nil(t, root.Parent())
	}
}

func TestRandomForestNonEmptyCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	items := randomForest(rng, 4, 300)

	want := 0
	for _, l := range forestPreOrder(items, nil) {
		if l != "<empty>" {
			want++
		}
	}

	root, err := ConvertAll(items)
	require.NoError(t, err)
	got, err := threaded.CountNonEmpty(root, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeepForestDoesNotRecurse(t *testing.T) {
	const depth = 5000

	top := NewBlock(0)
	last := top
	for i := 1; i < depth; i++ {
		child := NewBlock(i)
		last.Add(child)
		last = child
	}

	root, err := Convert[int](top)
	require.NoError(t, err)

	in := payloads(root.InOrder())
	require.Len(t, in, depth)
	assert.Equal(t, depth-1, in[0])
	assert.Equal(t, 0, in[depth-1])

	pre := payloads(root.PreOrder())
	require.Len(t, pre, depth)
	assert.Equal(t, 0, pre[0])
	assert.Equal(t, depth-1, pre[depth-1])
}

func TestWideForest(t *testing.T) {
	const width = 10000

	b := NewBuilder[int](nil)
	for i := 0; i < width; i++ {
		require.NoError(t, b.Append(NewBlock(i)))
	}
	assert.Equal(t, width, b.Len())

	in := payloads(b.Root().InOrder())
	require.Len(t, in, width)
	for i, v := range in {
		if v != i {
			t.Fatalf("position %d holds %d", i, v)
		}
	}
}
