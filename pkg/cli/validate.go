/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/datacontract/pkg/contract"
	"github.com/NVIDIA/datacontract/pkg/dataset"
	"github.com/NVIDIA/datacontract/pkg/serializer"
	"github.com/NVIDIA/datacontract/pkg/validator"
)

// DatasetReport pairs a dataset path with its validation report in the
// serialized output of `validate` runs over multiple files.
type DatasetReport struct {
	Dataset string            `json:"dataset" yaml:"dataset"`
	Report  *validator.Report `json:"report" yaml:"report"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate datasets against a contract",
		Description: `Validates one or more CSV datasets against a contract document. Every
field rule is evaluated against every row and all violations are reported,
never just the first:
  - missing required columns
  - type mismatches
  - values below min or above max
  - values outside the allowed set
  - pattern mismatches
  - duplicate values in unique columns

Multiple datasets are validated concurrently; the report order matches the
order the files were given. The report can be output in JSON, YAML, or
table format.`,
		Flags: []cli.Flag{
			contractFlag,
			&cli.StringSliceFlag{
				Name:     "dataset",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "dataset CSV file path (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Value: true,
				Usage: "exit non-zero when any dataset has violations",
			},
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
				return fmt.Errorf("failed to load contract from %q: %w", contractPath, err)
			}

			service := validator.New(
				validator.WithVersion(version),
			)

			paths := cmd.StringSlice("dataset")
			results := make([]DatasetReport, len(paths))

			g, gctx := errgroup.WithContext(ctx)
			for i, path := range paths {
				g.Go(func() error {
					ds, err := dataset.FromCSVFile(path)
					if err != nil {
						return fmt.Errorf("failed to load dataset from %q: %w", path, err)
					}

					report, err := service.Validate(gctx, c, ds)
					if err != nil {
						return fmt.Errorf("failed to validate %q: %w", path, err)
					}

					results[i] = DatasetReport{Dataset: path, Report: report}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

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

			// A single dataset serializes as a bare report
			var payload any = results
			if len(results) == 1 {
				payload = results[0].Report
			}
			if err := ser.Serialize(ctx, payload); err != nil {
				return err
			}

			if !cmd.Bool("fail-on-error") {
				return nil
			}

			var failures []error
			for _, res := range results {
				if err := res.Report.Err(); err != nil {
					failures = append(failures, fmt.Errorf("%s: %w", res.Dataset, err))
				}
			}
			return errors.Join(failures...)
		},
	}
}
