package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	logger.OnExit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "forestdump",
		Usage:   "load a forest document and inspect it as a threaded binary tree",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (DEBUG, INFO, WARN, ERROR, NOOP)",
				Value:   "INFO",
				EnvVars: []string{"FORESTDUMP_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logger.New(cctx.String("log-level"))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "walk",
			Usage:     "print node values in traversal order, one per line",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				formatFlag(),
				&cli.StringFlag{
					Name:  "order",
					Usage: "traversal order: pre, in or reverse",
					Value: "pre",
				},
				&cli.BoolFlag{
					Name:  "skip-empty",
					Usage: "omit nodes that hold no value",
				},
			},
			Action: runWalk,
		},
		{
			Name:      "render",
			Usage:     "print the binary tree with child and thread links",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{formatFlag()},
			Action:    runRender,
		},
		{
			Name:      "parent",
			Usage:     "print the binary parent of the first node holding value",
			ArgsUsage: "<file> <value>",
			Flags:     []cli.Flag{formatFlag()},
			Action:    runParent,
		},
	}
	return app
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Usage: "document format (json, yaml, cbor). Defaults to the file extension",
	}
}
