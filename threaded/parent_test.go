package threaded

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParent(t *testing.T) {
	root, nodes := newExampleTree(t)

	// binary parents: a first child's parent is its group, a later sibling's
	// parent is the sibling before it
	want := map[int]int{
		2: 1, 11: 1,
		3: 2, 6: 2,
		4: 3, 5: 4,
		7: 6, 10: 6,
		8: 7, 9: 8,
	}
	for child, parent := range want {
		assert.Same(t, nodes[parent], nodes[child].Parent(), "parent of %d", child)
	}
	assert.Nil(t, root.Parent())
}

func TestParentOfDetachedSubtree(t *testing.T) {
	sub := NewWithData(1)
	assert.NoError(t, sub.AttachLeft(NewWithData(2)))
	assert.NoError(t, sub.AttachRight(NewWithData(3)))

	assert.Nil(t, sub.Parent())
	assert.Same(t, sub, sub.Left().Parent())
	assert.Same(t, sub, sub.Right().Parent())
}

func TestTreeRoot(t *testing.T) {
	root, nodes := newExampleTree(t)

	for i := 1; i <= 11; i++ {
		assert.Same(t, root, nodes[i].TreeRoot(), "tree root of %d", i)
	}

	// 9 -> 8 -> 7 -> 6 -> 2: the highest ancestor below 2 is 6
	assert.Same(t, nodes[6], nodes[9].TreeRootWithin(nodes[2]))
	// bounded by its own parent gives the node itself
	assert.Same(t, nodes[9], nodes[9].TreeRootWithin(nodes[8]))
	// a boundary that is not an ancestor does not bound anything
	assert.Same(t, root, nodes[9].TreeRootWithin(nodes[11]))
}

func TestCommonAncestor(t *testing.T) {
	root, nodes := newExampleTree(t)

	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"node with itself", 7, 7, 7},
		{"root with itself", 1, 1, 1},
		{"ancestor and descendant", 3, 5, 3},
		{"descendant and ancestor", 5, 3, 3},
		{"siblings of a group", 5, 9, 2},
		{"across forest roots", 5, 11, 1},
		{"uneven depths", 9, 4, 2},
		{"first children chain", 10, 8, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommonAncestor(nodes[tt.a], nodes[tt.b])
			assert.Same(t, nodes[tt.want], got)
			assert.Same(t, got, nodes[tt.b].CommonAncestorWith(nodes[tt.a]))
		})
	}

	other, otherNodes := newExampleTree(t)
	assert.Nil(t, CommonAncestor(root, other))
	assert.Nil(t, CommonAncestor(nodes[5], otherNodes[5]))
	assert.Nil(t, CommonAncestor(nodes[5], nil))
	assert.Nil(t, CommonAncestor(nil, nodes[5]))
}
