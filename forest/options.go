package forest

// Option configures a Builder. Options type assert their target and ignore
// targets they do not recognise.
type Option func(any)

type BuilderOptions struct {
	// PruneEmptyLeaves drops items that have neither a payload nor children.
	// They would otherwise become empty leaf nodes.
	PruneEmptyLeaves bool
}

func WithPruneEmptyLeaves() Option {
	return func(opts any) {
		if o, ok := opts.(*BuilderOptions); ok {
			o.PruneEmptyLeaves = true
		}
	}
}
