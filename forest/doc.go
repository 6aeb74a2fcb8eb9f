/*
Package forest converts ordered forests of hierarchical items into a single
threaded binary tree using the left-child/right-sibling transform.

An item becomes a node. Its first child's subtree is the node's left child, and
each following child's subtree is the right child of the previous child's node.
Forest roots are chained the same way, each spliced to the right of the tree's
frontier.

Two useful consequences for walking the result:

  - pre-order of the tree is the forest's natural (pre-order) sequence
  - in-order of the tree is the forest's post-order sequence, children before
    their parent

Conversion uses an explicit worklist, so very deep forests do not recurse.
*/
package forest
