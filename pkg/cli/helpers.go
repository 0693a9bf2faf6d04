/*
Copyright © 2025 Terrapin Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkautz/terrapin/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Report format: yaml, json, table",
	}

	chunkSizeFlag = &cli.IntFlag{
		Name:  "chunk-size",
		Value: 64 * 1024,
		Usage: "Read granularity in bytes; does not affect digests",
	}

	maxBPSFlag = &cli.IntFlag{
		Name:  "max-bps",
		Usage: "Cap read throughput in bytes per second (0 = unlimited)",
	}
)

// parseOutputFormat reads the format flag and rejects unknown values.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)", format, serializer.SupportedFormats())
	}
	return format, nil
}

// openInput opens the input file and reports its size.
func openInput(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input %q: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat input %q: %w", path, err)
	}
	return f, info.Size(), nil
}

// byteCount renders byte totals with thousands separators for log lines.
func byteCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
