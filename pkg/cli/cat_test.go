/*
Copyright © 2025 Terrapin Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fkautz/terrapin/pkg/attestor"
	"github.com/fkautz/terrapin/pkg/validator"
)

func TestCatCmd(t *testing.T) {
	input, artifact, data := attestedInput(t, attestor.WindowSize+4096)

	t.Run("whole file to output", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.bin")
		err := catCmd().Run(context.Background(), []string{"cat", "-o", out, input, artifact})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Error("output differs from input data")
		}
	})

	t.Run("requested range only", func(t *testing.T) {
		var buf bytes.Buffer
		run, result := captureValidation(catCmd(), &validationSink{w: &buf})
		err := run([]string{"cat", "--start", "100", "--end", "300", input, artifact})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if (*result).Summary.Status != validator.StatusMatch {
			t.Fatalf("status = %v, want match", (*result).Summary.Status)
		}
		if !bytes.Equal(buf.Bytes(), data[100:300]) {
			t.Errorf("sink bytes = %d, want data[100:300]", buf.Len())
		}
	})

	t.Run("range spanning windows", func(t *testing.T) {
		var buf bytes.Buffer
		run, _ := captureValidation(catCmd(), &validationSink{w: &buf})
		start, end := attestor.WindowSize-100, attestor.WindowSize+100
		err := run([]string{"cat",
			"--start", "2097052", // WindowSize-100
			"--end", "2097252", // WindowSize+100
			input, artifact})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), data[start:end]) {
			t.Errorf("sink bytes = %d, want %d bytes across the window boundary", buf.Len(), end-start)
		}
	})
}

func TestValidationSink(t *testing.T) {
	// An aligned span starting at window 0 with a request at [100, 300).
	var out bytes.Buffer
	s := &validationSink{w: &out}
	s.configure(100, 300, int64(attestor.WindowSize))

	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i)
	}

	// Deliver in uneven chunks the way a chunker would.
	for _, chunk := range [][]byte{data[:64], data[64:199], data[199:350], data[350:]} {
		n, err := s.Write(chunk)
		if err != nil {
			t.Fatal(err)
		}
		if n != len(chunk) {
			t.Fatalf("short write: %d != %d", n, len(chunk))
		}
	}

	if !bytes.Equal(out.Bytes(), data[100:300]) {
		t.Errorf("forwarded %d bytes, want data[100:300]", out.Len())
	}
}

func TestValidationSinkClampsToSize(t *testing.T) {
	var out bytes.Buffer
	s := &validationSink{w: &out}
	s.configure(0, 10*attestor.WindowSize, 256)

	if _, err := s.Write(make([]byte, 256)); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 256 {
		t.Errorf("forwarded %d bytes, want 256", out.Len())
	}
}
