/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/datacontract/pkg/contract"
	"github.com/NVIDIA/datacontract/pkg/serializer"
)

// LintResult is the serialized output of a successful lint run.
type LintResult struct {
	Status   string   `json:"status" yaml:"status"`
	Contract string   `json:"contract" yaml:"contract"`
	Fields   []string `json:"fields" yaml:"fields"`
}

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lint",
		EnableShellCompletion: true,
		Usage:                 "Check a contract document without data",
		Description: `Runs the contract construction checks only: unknown type tags, patterns
on non-string fields, invalid regular expressions, bounds incompatible with
the declared type, min above max, and duplicate field names. No dataset is
read.`,
		Flags: []cli.Flag{
			contractFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			contractPath := cmd.String("contract")
			c, err := contract.FromFile(contractPath)
			if err != nil {
				return fmt.Errorf("contract %q is invalid: %w", contractPath, err)
			}

			fields := make([]string, 0, c.Len())
			for _, f := range c.Fields() {
				fields = append(fields, f.Name)
			}

			slog.Info("contract is valid", "contract", c.Name(), "fields", len(fields))

			ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, LintResult{
				Status:   "ok",
				Contract: c.Name(),
				Fields:   fields,
			})
		},
	}
}
