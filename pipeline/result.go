// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import (
	"bytes"
	"sync"
)

// Result holds the captured output of a pipeline run and the exit
// status of every stage.
type Result struct {
	// Stdout is the terminal stage's captured standard output.
	Stdout []byte

	// Stderr is the terminal stage's captured standard error.
	Stderr []byte

	// Combined interleaves stdout and stderr in arrival order. The
	// interleaving across the two streams is best-effort.
	Combined []byte

	// Statuses holds one exit status per stage, in pipeline order.
	Statuses []Status
}

// Success reports whether every stage exited successfully.
func (r *Result) Success() bool {
	for _, s := range r.Statuses {
		if !s.Success() {
			return false
		}
	}
	return true
}

// syncBuffer is a bytes.Buffer safe for concurrent writers. The stdout
// and stderr drain goroutines both append to the combined stream.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}
