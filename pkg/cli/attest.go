/*
Copyright © 2025 Terrapin Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/fkautz/terrapin/pkg/attestor"
	"github.com/fkautz/terrapin/pkg/serializer"
)

func attestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "attest",
		EnableShellCompletion: true,
		Usage:                 "Generate the attestation artifact for a file",
		ArgsUsage:             "<file>",
		Description: `Hash the file in fixed 2 MiB windows and emit the attestation artifact,
the concatenation of one 32-byte digest per window.

The artifact is written to stdout unless --output is given. With
--layered the artifact is itself attested, repeatedly, until a single
root digest remains; each layer n is written to <output>.<n> with the
root layer first, alongside the full artifact at <output>.

Examples:

  # Attest a file, artifact to stdout
  terrapin attest disk.img > disk.att

  # Parallel attestation with a structured report
  terrapin attest --parallel -o disk.att --report report.yaml disk.img

  # Layered attestation down to a single root digest
  terrapin attest --layered -o disk.att disk.img`,
		Flags: []cli.Flag{
			outputFlag,
			&cli.BoolFlag{
				Name:  "layered",
				Usage: "Re-attest the artifact until a single root digest remains (requires --output)",
			},
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "Hash windows concurrently",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent hash workers with --parallel (default: GOMAXPROCS)",
			},
			chunkSizeFlag,
			maxBPSFlag,
			&cli.StringFlag{
				Name:  "report",
				Usage: "Write a structured attestation report to this path",
			},
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.Args().First()
			if input == "" {
				return fmt.Errorf("missing required argument: <file>")
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			output := cmd.String("output")
			layered := cmd.Bool("layered")
			if layered && output == "" {
				return fmt.Errorf("--layered requires --output for the layer files")
			}

			f, size, err := openInput(input)
			if err != nil {
				return err
			}
			defer f.Close()

			opts := []attestor.GenerateOption{
				attestor.WithChunkSize(int(cmd.Int("chunk-size"))),
			}
			if bps := int(cmd.Int("max-bps")); bps > 0 {
				opts = append(opts, attestor.WithRateLimit(bps))
			}
			if workers := int(cmd.Int("workers")); workers > 0 {
				opts = append(opts, attestor.WithWorkers(workers))
			}

			// Layered generation re-reads its own artifacts and stays sequential.
			mode := "sequential"
			if cmd.Bool("parallel") && !layered {
				mode = "parallel"
			}

			began := time.Now()
			report := attestor.NewReport(version)
			report.Input = input
			report.Artifact = output
			report.Summary.Mode = mode
			report.Summary.Bytes = size

			var seq attestor.Sequence
			switch {
			case layered:
				layers, err := attestor.GenerateLayers(ctx, f, opts...)
				if err != nil {
					return err
				}
				for i, layer := range layers {
					if err := writeSequenceFile(fmt.Sprintf("%s.%d", output, i), layer); err != nil {
						return err
					}
				}
				seq = layers[len(layers)-1]
				if top, err := layers[0].Window(0); err == nil {
					report.Top = top.OCI().String()
				}
				report.Summary.Layers = len(layers)
			case mode == "parallel":
				if seq, err = attestor.GenerateParallel(ctx, f, opts...); err != nil {
					return err
				}
				report.Summary.Layers = 1
			default:
				if seq, err = attestor.Generate(ctx, f, opts...); err != nil {
					return err
				}
				report.Summary.Layers = 1
			}
			report.Summary.Windows = len(seq)
			report.Summary.Duration = time.Since(began)

			if output == "" {
				if _, err := seq.WriteTo(os.Stdout); err != nil {
					return err
				}
			} else if err := writeSequenceFile(output, seq); err != nil {
				return err
			}

			slog.Info("attestation complete",
				"input", input,
				"bytes", byteCount(size),
				"windows", report.Summary.Windows,
				"layers", report.Summary.Layers,
				"mode", mode,
				"duration", report.Summary.Duration)

			if reportPath := cmd.String("report"); reportPath != "" {
				ser := serializer.NewFileWriterOrStdout(outFormat, reportPath)
				defer func() {
					if err := ser.Close(); err != nil {
						slog.Warn("failed to close report writer", "error", err)
					}
				}()
				return ser.Serialize(ctx, report)
			}
			return nil
		},
	}
}

// writeSequenceFile writes the raw artifact bytes of seq to path.
func writeSequenceFile(path string, seq attestor.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact %q: %w", path, err)
	}
	if _, err := seq.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write artifact %q: %w", path, err)
	}
	return f.Close()
}
