// Package cli implements the command-line interface for the terrapin tool.
//
// # Overview
//
// The terrapin CLI creates and verifies windowed data attestations. A file is
// hashed in fixed 2 MiB windows into an attestation artifact, and any byte
// range of the file can later be verified against that artifact without
// re-hashing the whole file.
//
// # Commands
//
// attest - Generate the attestation artifact:
//
//	terrapin attest [--output FILE] [--layered] [--parallel] <file>
//
// Hashes the file window by window and emits the artifact, one 32-byte digest
// per window, to stdout or --output. With --layered the artifact is itself
// re-attested until a single root digest remains. A structured report can be
// written with --report.
//
// validate - Check a byte range against stored attestations:
//
//	terrapin validate [--start N] [--end N] <file> <artifact>
//
// Widens the requested range outward to whole windows, re-hashes the covered
// windows, and compares each digest against the stored one. The result is
// reported in YAML, JSON, or table form; the command exits non-zero on a
// mismatch.
//
// cat - Validate while emitting the bytes read:
//
//	terrapin cat [--start N] [--end N] <file> <artifact>
//
// Like validate, but streams the requested bytes to stdout (or --output)
// while they are being verified.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Report format: yaml, json, table (default: yaml)
//	--chunk-size   Read granularity in bytes; does not affect digests
//	--max-bps      Cap read throughput in bytes per second
//	--log-level    Log verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success, and for validate/cat a full digest match
//	1  General error (invalid arguments, I/O failure, range out of span)
//	2  Validation mismatch
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/attestor - Window accumulation and artifact generation
//   - pkg/validator - Range alignment and digest comparison
//   - pkg/chunker - Fixed-size, optionally rate-limited reads
//   - pkg/serializer - Report formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fkautz/terrapin/pkg/cli.version=1.0.0'"
package cli
