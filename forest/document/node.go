// Package document decodes forest documents into forest items.
//
// A document is a single node or an array of nodes. Each node has an optional
// string value and an ordered list of children:
//
//	[
//	  {"value": "1", "children": [{"value": "2"}, {"children": [{"value": "3"}]}]},
//	  {"value": "4"}
//	]
//
// The same shape is accepted as JSON (with comments and trailing commas), YAML
// and CBOR.
package document

import "github.com/forestrie/go-threadforest/forest"

// Node is one item of a decoded document. A nil Value is an empty item. Nodes
// holds the children, encoded under the "children" key.
type Node struct {
	Value *string `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
	Nodes []*Node `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
}

// Leaf returns a childless node holding v.
func Leaf(v string) *Node {
	return &Node{Value: &v}
}

func (n *Node) Content() (string, bool) {
	if n.Value == nil {
		return "", false
	}
	return *n.Value, true
}

// Children returns the children as items. A null entry in the document stays
// a nil item, which the forest builder rejects.
func (n *Node) Children() []forest.Item[string] {
	if len(n.Nodes) == 0 {
		return nil
	}
	return Items(n.Nodes)
}

// Items returns nodes as a forest, preserving nil entries as nil items.
func Items(nodes []*Node) []forest.Item[string] {
	items := make([]forest.Item[string], len(nodes))
	for i, n := range nodes {
		if n != nil {
			items[i] = n
		}
	}
	return items
}
