/*
Copyright © 2025 Terrapin Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/fkautz/terrapin/pkg/attestor"
	"github.com/fkautz/terrapin/pkg/serializer"
	"github.com/fkautz/terrapin/pkg/validator"
)

// errMismatch maps a mismatch outcome to a non-zero exit code after the
// result has already been reported.
var errMismatch = cli.Exit("validation failed: digests do not match", 2)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check a byte range of a file against stored attestations",
		ArgsUsage:             "<file> <artifact>",
		Description: `Verify that a byte range of the file still matches the attestation
artifact previously produced by attest.

The requested range is widened outward to whole 2 MiB windows, the
covered windows are re-hashed, and each digest is compared against the
stored one. Omitting --start and --end validates the entire file.

The command exits non-zero when any window digest differs.

Examples:

  # Validate the whole file
  terrapin validate disk.img disk.att

  # Validate the bytes backing one extent, JSON report to a file
  terrapin validate --start 4194304 --end 8388608 -o result.json -t json disk.img disk.att`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "start",
				Usage: "Inclusive start offset of the byte range (default: 0)",
			},
			&cli.IntFlag{
				Name:  "end",
				Value: -1,
				Usage: "Exclusive end offset of the byte range (default: end of file)",
			},
			chunkSizeFlag,
			maxBPSFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			result, err := runValidation(ctx, cmd, nil)
			if err != nil {
				return err
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close result writer", "error", err)
				}
			}()
			if err := ser.Serialize(ctx, result); err != nil {
				return err
			}

			if result.Summary.Status != validator.StatusMatch {
				return errMismatch
			}
			return nil
		},
	}
}

// runValidation parses the shared validate/cat arguments, runs the range
// validation, and returns the result. sink, when non-nil, receives the bytes
// of the aligned span in stream order.
func runValidation(ctx context.Context, cmd *cli.Command, sink *validationSink) (*validator.ValidationResult, error) {
	input := cmd.Args().Get(0)
	artifact := cmd.Args().Get(1)
	if input == "" || artifact == "" {
		return nil, fmt.Errorf("missing required arguments: <file> <artifact>")
	}

	stored, err := attestor.LoadSequence(artifact)
	if err != nil {
		return nil, err
	}

	f, size, err := openInput(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start := int64(cmd.Int("start"))
	end := int64(cmd.Int("end"))
	if end < 0 {
		end = size
	}
	if sink != nil {
		sink.configure(start, end, size)
	}

	opts := []validator.Option{
		validator.WithChunkSize(int(cmd.Int("chunk-size"))),
		validator.WithVersion(version),
	}
	if bps := int(cmd.Int("max-bps")); bps > 0 {
		opts = append(opts, validator.WithRateLimit(bps))
	}
	if sink != nil {
		opts = append(opts, validator.WithSink(sink))
	}

	result, err := validator.New(opts...).Validate(ctx, f, size, stored, start, end)
	if err != nil {
		return nil, err
	}
	result.Input = input
	result.AttestationSource = artifact

	slog.Info("validation complete",
		"input", input,
		"status", result.Summary.Status,
		"windows", result.Summary.Windows,
		"mismatched", result.Summary.Mismatched,
		"bytes", byteCount(result.Summary.Bytes))

	return result, nil
}
