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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/fkautz/terrapin/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFormat serializer.Format
			var gotErr error

			cmd := &cli.Command{
				Name:  "test",
				Flags: []cli.Flag{&cli.StringFlag{Name: "format"}},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gotFormat, gotErr = parseOutputFormat(cmd)
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test", "--format", tt.format}); err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}

			if tt.wantErr {
				if gotErr == nil {
					t.Error("expected error but got nil")
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("unexpected error: %v", gotErr)
			}
			if gotFormat != tt.wantFormat {
				t.Errorf("format = %v, want %v", gotFormat, tt.wantFormat)
			}
		})
	}
}

func TestOpenInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte("hello terrapin"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, size, err := openInput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	if size != int64(len("hello terrapin")) {
		t.Errorf("size = %d, want %d", size, len("hello terrapin"))
	}

	if _, _, err := openInput(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestByteCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{2097152, "2,097,152"},
	}

	for _, tt := range tests {
		if got := byteCount(tt.in); got != tt.want {
			t.Errorf("byteCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
