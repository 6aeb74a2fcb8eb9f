package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-threadforest/forest"
	"github.com/forestrie/go-threadforest/forest/document"
	"github.com/forestrie/go-threadforest/threaded"
	"github.com/urfave/cli/v2"
)

const emptyLabel = "<empty>"

var ErrValueNotFound = errors.New("forestdump: value not found")

func loadTree(cctx *cli.Context) (*threaded.Node[string], error) {
	path := cctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("need to provide a forest document as the first argument")
	}

	var format document.Format
	var err error
	if cctx.IsSet("format") {
		format, err = document.ParseFormat(cctx.String("format"))
	} else {
		format, err = document.FormatFromPath(path)
	}
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	nodes, err := document.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log := logger.Sugar.WithServiceName("forestdump")
	b := forest.NewBuilder[string](log)
	if err := b.AppendAll(document.Items(nodes)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("loaded %s (%v): %d roots, %d nodes", path, format, b.Len(), b.Size())
	return b.Root(), nil
}

func parseOrder(name string) (threaded.Order, error) {
	for _, o := range []threaded.Order{threaded.PreOrder, threaded.InOrder, threaded.ReverseInOrder} {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown order %q, expected pre, in or reverse", name)
}

func label(n *threaded.Node[string]) string {
	if v, ok := n.Data(); ok {
		return v
	}
	return emptyLabel
}

func runWalk(cctx *cli.Context) error {
	order, err := parseOrder(cctx.String("order"))
	if err != nil {
		return err
	}
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}

	var opts []threaded.Option
	if cctx.Bool("skip-empty") {
		opts = append(opts, threaded.WithSkipEmpty())
	}
	w := cctx.App.Writer
	for n := range threaded.Walk(root, order, opts...) {
		fmt.Fprintln(w, label(n))
	}
	return nil
}

func runRender(cctx *cli.Context) error {
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, threaded.Render(root, nil))
	return nil
}

func runParent(cctx *cli.Context) error {
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("need to provide a forest document and a value")
	}
	value := cctx.Args().Get(1)
	root, err := loadTree(cctx)
	if err != nil {
		return err
	}

	var found *threaded.Node[string]
	for n := range threaded.Walk(root, threaded.PreOrder, threaded.WithSkipEmpty()) {
		if v, _ := n.Data(); v == value {
			found = n
			break
		}
	}
	if found == nil {
		return fmt.Errorf("%w: %q", ErrValueNotFound, value)
	}

	p := found.Parent()
	if p == nil {
		fmt.Fprintln(cctx.App.Writer, "none")
		return nil
	}
	fmt.Fprintln(cctx.App.Writer, label(p))
	return nil
}
