/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datacontract/pkg/logging"
)

// version is injected at build time via ldflags.
var version = "dev"

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "output file path (defaults to stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Value: "yaml",
	Usage: "output format (yaml, json, table)",
}

var contractFlag = &cli.StringFlag{
	Name:     "contract",
	Aliases:  []string{"c"},
	Required: true,
	Usage:    "contract document path (YAML or JSON)",
}

// Root builds the top-level command with all subcommands attached.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  "datacontract",
		Usage:                 "Validate tabular datasets against declarative data contracts",
		Version:               version,
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "emit logs as JSON",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			lintCmd(),
			serveCmd(),
		},
	}
}

// commandLister prints the visible subcommand names, used for shell
// completion of the root command.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Println(sub.Name)
	}
}
