package transform

import "github.com/FranciscoPDNeto/eucligpu/ecode"

// The five error kinds spec.md §7 names, re-exported from ecode so callers
// of this package's public API need only import transform, not the
// lower-level packages that actually raise them.
var (
	ErrInputUnreadable   = ecode.ErrInputUnreadable
	ErrAllocationFailure = ecode.ErrAllocationFailure
	ErrBackendUnavailable = ecode.ErrBackendUnavailable
	ErrBackendFailure    = ecode.ErrBackendFailure
	ErrNonConvergence    = ecode.ErrNonConvergence
)
