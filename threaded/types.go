package threaded

import "errors"

// LinkKind selects what a Link refers to.
type LinkKind uint8

const (
	// KindThread is a non owning reference to the in-order neighbour. It is
	// the zero value so that new nodes start with boundary threads.
	KindThread LinkKind = 0
	// KindChild is an owned subtree.
	KindChild LinkKind = 1
)

func (k LinkKind) String() string {
	switch k {
	case KindThread:
		return "thread"
	case KindChild:
		return "child"
	default:
		return "invalid"
	}
}

var (
	ErrNilNode          = errors.New("threaded: nil node")
	ErrSelfAttach       = errors.New("threaded: node attached to itself")
	ErrAlreadyAttached  = errors.New("threaded: subtree is already attached")
	ErrInvalidStructure = errors.New("threaded: invalid structure")
	ErrThreadCycle      = errors.New("threaded: thread cycle detected")
)
