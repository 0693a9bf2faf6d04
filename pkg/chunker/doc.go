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

// Package chunker reads a byte stream as a sequence of fixed-size chunks.
//
// The chunk size is the granularity at which callers feed bytes into an
// attestor; it is independent of the attestor's 2 MiB accumulation window
// and has no effect on the resulting digests.
//
//	c, err := chunker.New(f, 64*1024)
//	if err != nil {
//	    return err
//	}
//	for {
//	    chunk, err := c.Next(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use chunk before the next call
//	}
package chunker
