/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datacontract/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the validation HTTP API",
		Description: `Starts the HTTP API:

  POST /v1/validate  validate a dataset against a contract
  POST /v1/lint      check a contract document
  GET  /health       liveness probe
  GET  /ready        readiness probe
  GET  /metrics      Prometheus metrics

The PORT and LOG_LEVEL environment variables override the defaults;
command-line flags take precedence over both. The server shuts down
gracefully on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "address to bind (defaults to all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to listen on",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			if cmd.IsSet("address") {
				cfg.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				cfg.Port = int(cmd.Int("port"))
			}

			return server.New(cfg).Run(ctx)
		},
	}
}
