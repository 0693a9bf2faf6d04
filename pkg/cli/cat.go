/*
Copyright © 2025 Terrapin Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fkautz/terrapin/pkg/attestor"
	"github.com/fkautz/terrapin/pkg/validator"
)

func catCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cat",
		EnableShellCompletion: true,
		Usage:                 "Validate a byte range while emitting the bytes read",
		ArgsUsage:             "<file> <artifact>",
		Description: `Validate a byte range of the file against the attestation artifact and
write the requested bytes to stdout (or --output) as they are read.

Bytes are streamed during validation, so output is produced before the
verdict is known. The command exits non-zero when any window digest
differs; consumers that need verified data must check the exit code.

Examples:

  # Emit a verified extent
  terrapin cat --start 4096 --end 8192 disk.img disk.att > extent.bin

  # Stream the whole verified file into another tool
  terrapin cat disk.img disk.att | tar -tzf -`,
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
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := io.Writer(os.Stdout)
			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create output %q: %w", path, err)
				}
				defer f.Close()
				out = f
			}

			result, err := runValidation(ctx, cmd, &validationSink{w: out})
			if err != nil {
				return err
			}
			if result.Summary.Status != validator.StatusMatch {
				return errMismatch
			}
			return nil
		},
	}
}

// validationSink narrows the aligned span streamed by the validator back to
// the requested byte range before forwarding it.
type validationSink struct {
	w      io.Writer
	skip   int64
	remain int64
}

// configure derives the leading bytes to drop and the count to forward from
// the requested range, clamped to the stream length.
func (s *validationSink) configure(start, end, size int64) {
	start = min(start, size)
	end = min(end, size)
	s.skip = start - start/attestor.WindowSize*attestor.WindowSize
	s.remain = end - start
}

func (s *validationSink) Write(p []byte) (int, error) {
	n := len(p)
	if s.skip > 0 {
		drop := min(s.skip, int64(len(p)))
		s.skip -= drop
		p = p[drop:]
	}
	if s.remain <= 0 || len(p) == 0 {
		return n, nil
	}
	take := min(int64(len(p)), s.remain)
	if _, err := s.w.Write(p[:take]); err != nil {
		return 0, err
	}
	s.remain -= take
	return n, nil
}
