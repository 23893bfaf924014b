// Package ecode holds the five error kinds spec.md §7 defines at the
// boundaries between the decoder, the propagation engine, and the
// accelerator backends. Every raising package wraps one of these sentinels
// with fmt.Errorf's %w so errors.Is keeps working across package
// boundaries, mirroring the teacher's per-package sentinel-error style
// (codec/errors.go) but shared because spec.md's error table is itself
// cross-cutting rather than package-local.
package ecode

import "errors"

var (
	// ErrInputUnreadable: the decoder could not decode the input, or it is
	// not reducible to a single channel. Fatal; user-visible; exit non-zero.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrAllocationFailure: the diagram or an output buffer could not be
	// allocated. Fatal; partial state is dropped.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrBackendUnavailable: no compute device/backend suitable for the
	// request. Recovered locally by falling back to the CPU backend.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrBackendFailure: a backend pass reported a runtime error. Fatal.
	ErrBackendFailure = errors.New("backend failure")

	// ErrNonConvergence: the propagation safety bound was exceeded. Fatal;
	// indicates an implementation bug, not bad input.
	ErrNonConvergence = errors.New("propagation did not converge")
)
