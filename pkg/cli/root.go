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
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/fkautz/terrapin/pkg/logging"
)

const (
	name           = "terrapin"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New builds the root terrapin command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Create and verify windowed data attestations",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `terrapin computes a sequence of digests over fixed 2 MiB windows of a
file and can later verify that any byte range of the file still matches
the digests computed over it, without re-hashing the whole file.

attest   - generate the attestation artifact for a file
validate - check a byte range of a file against stored attestations
cat      - validate a byte range while emitting the bytes read`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			attestCmd(),
			validateCmd(),
			catCmd(),
		},
	}
}

// Execute runs the root command with signal-aware cancellation. It is called
// by main.main() and exits the process on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
