// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import "fmt"

// Allocator provides the raw memory behind a Buffer.
//
// A Buffer calls Free exactly once for every region returned by Alloc, and
// always before asking for the next one, so at most one region per Buffer
// is outstanding at any time.
type Allocator interface {
	// Alloc returns a region of exactly size bytes. Contents are unspecified.
	Alloc(size int) ([]byte, error)

	// Free releases a region previously returned by Alloc.
	Free(mem []byte)
}

// HeapAllocator allocates from the Go heap.
//
// Requests the runtime cannot satisfy are reported as ErrAllocation
// instead of crashing the caller.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(size int) (mem []byte, err error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, size)
	}
	defer func() {
		if r := recover(); r != nil {
			mem = nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrAllocation, size, r)
		}
	}()
	return make([]byte, size), nil
}

// Free implements Allocator. Heap memory is reclaimed by the collector once
// the buffer drops its reference.
func (HeapAllocator) Free([]byte) {}
