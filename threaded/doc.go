package threaded

/*

# Threaded binary trees for left-child/right-sibling forests

An arbitrary arity forest (roots with ordered children, recursively) can be
encoded as a single binary tree: a node's left link is its first child and
its right link is its next sibling. Given the forest

	1             11
	├── 2
	│   ├── 3
	│   ├── 4
	│   └── 5
	├── 6
	│   ├── 7
	│   ├── 8
	│   └── 9
	└── 10

the binary encoding is

	          1
	        /   \
	       2     11
	     /   \
	    3     6
	     \   / \
	      4 7   10
	       \ \
	        5 8
	           \
	            9

and its orders are

	pre-order          1 2 3 4 5 6 7 8 9 10 11   (the forest's natural order)
	in-order           3 4 5 2 7 8 9 6 10 1 11
	reverse in-order   11 1 10 6 9 8 7 2 5 4 3

# Threads

Each side of a node holds a Link: either a Child (the owned subtree) or a
Thread. A left Thread refers to the node's in-order predecessor and a right
Thread to its in-order successor. A Thread with a nil target marks the tree
boundary. The zero Link is a boundary thread, so a zero Node is a detached,
single node tree.

Threads give us, without parent pointers or a stack:

  - in-order successor and predecessor in O(height) worst case and O(1) for
    any node that has no subtree on the relevant side
  - parent derivation in O(height), see Node.Parent
  - forward and backward in-order traversal

Pre-order is not encoded by the threads, so PreOrder keeps an explicit stack of
pending right subtrees.

# Growth

Trees only grow by attaching detached subtrees. AttachLeft and AttachRight
relink the threads at the seam so that every invariant above holds after each
call. ExtendFrontier attaches a subtree to the right of the Rightmost node, which
is how successive forest roots are chained into one tree.

There is no deletion and no rebalancing.

# Ownership

Only Child links own. Nothing in this package that copies, renders or counts a
subtree follows a Thread to do so. The garbage collector reclaims the thread
cycles, there is no explicit release.

# Burden of knowledge

The attach operations check what they can check in O(height): nil arguments,
self attachment and that the argument is a detached subtree. Attaching a tree
into one of its own descendants can not be detected without an O(height²)
ascent and is the caller's responsibility. Nodes are not safe for concurrent
use, and mutating a tree invalidates any cursor or sequence in progress over it.
*/
