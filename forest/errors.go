package forest

import (
	"errors"

	"github.com/forestrie/go-threadforest/threaded"
)

var (
	// ErrInvalidStructure is threaded.ErrInvalidStructure, so either can be
	// matched with errors.Is.
	ErrInvalidStructure = threaded.ErrInvalidStructure
	ErrNilItem          = errors.New("forest: nil item")
)
