// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package input

import "fmt"

// DefaultLoader returns a loader that reports ErrUnsupported for every name.
// Resolve with it always yields an unbound Binding.
func DefaultLoader() Loader {
	return LoaderFunc(func(name string) (Driver, error) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	})
}
