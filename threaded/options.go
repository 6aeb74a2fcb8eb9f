package threaded

// Option configures a traversal. Options type assert their target and do
// nothing if it is not the record they expect, so one Option type serves every
// payload type.
type Option func(any)

// TraversalOptions is the target record for Option.
type TraversalOptions[T any] struct {
	// SkipEmpty suppresses nodes without a payload.
	SkipEmpty bool
	// StopPoint halts the traversal. Cursors and sequences stop before
	// yielding it, folds stop after applying to it.
	StopPoint *Node[T]
}

type skipEmptySetter interface {
	setSkipEmpty(bool)
}

func (o *TraversalOptions[T]) setSkipEmpty(skip bool) { o.SkipEmpty = skip }

func WithSkipEmpty() Option {
	return func(opts any) {
		if o, ok := opts.(skipEmptySetter); ok {
			o.setSkipEmpty(true)
		}
	}
}

// WithStopPoint sets the traversal stop point. The node type must match the
// traversed tree, otherwise the option is ignored.
func WithStopPoint[T any](stop *Node[T]) Option {
	return func(opts any) {
		if o, ok := opts.(*TraversalOptions[T]); ok {
			o.StopPoint = stop
		}
	}
}

func NewTraversalOptions[T any](opts ...Option) TraversalOptions[T] {
	var o TraversalOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
