// Copyright (c) 2025, Terrapin Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides structured logging utilities for terrapin
// components.
//
// It wraps the standard library slog package with terrapin-specific defaults
// for consistent logging across the CLI and library packages: JSON output to
// stderr, module and version context on every record, LOG_LEVEL environment
// configuration, and source location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("terrapin", version, "warn")
//
//	    slog.Info("attesting input", "path", path, "chunkSize", chunkSize)
//	}
//
// An empty level falls back to LOG_LEVEL:
//
//	logging.SetDefaultStructuredLoggerWithLevel("terrapin", version, "")
//
// Supported log levels (case-insensitive): debug, info (default), warn or
// warning, error. If LOG_LEVEL is not set and no explicit level is given,
// INFO is used.
package logging
