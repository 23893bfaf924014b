// Package transform wires C1-C7 into a single entry point (spec.md §2
// "Control flow: decoded image -> C2 -> C4 emits... -> C5 converges... ->
// C6 emits output image"), and implements the backend-selection policy
// spec.md §4.6/§7 leave to the repository: probe order, BackendUnavailable
// recovery, kernel-source resolution.
package transform

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/FranciscoPDNeto/eucligpu/backend"
	"github.com/FranciscoPDNeto/eucligpu/backend/cpu"
	"github.com/FranciscoPDNeto/eucligpu/backend/opencldetect"
	"github.com/FranciscoPDNeto/eucligpu/backend/wasmkernel"
	"github.com/FranciscoPDNeto/eucligpu/ecode"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/materialize"
	"github.com/FranciscoPDNeto/eucligpu/propagate"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// defaultKernelPath is where the accelerator source is expected in the
// working directory (spec.md §6 "Accelerator source").
const defaultKernelPath = "relax.wasm"

// Options configures one Run. The zero value selects the accelerator
// automatically and tags log lines with a freshly generated RunID.
type Options struct {
	// ForceCPU skips accelerator selection entirely and uses Schedule A.
	ForceCPU bool

	// KernelPath overrides the WASM kernel file location; empty means
	// defaultKernelPath.
	KernelPath string

	// KernelEnv is a shell-quoted KEY=VALUE list passed through to the WASM
	// kernel's environment; empty sets nothing.
	KernelEnv string

	// RunID correlates this run's log lines; if it is the zero UUID, Run
	// generates a random one.
	RunID uuid.UUID
}

// Result is the materialized output of one transform.
type Result struct {
	Width, Height int
	Bytes         []byte
	BackendUsed   string
	Passes        int
}

// Run performs the full pipeline: seed, converge, materialize. It returns an
// error wrapping one of ecode.ErrAllocationFailure, ecode.ErrBackendFailure,
// or ecode.ErrNonConvergence on failure; ecode.ErrBackendUnavailable is
// always recovered internally and never escapes Run.
func Run(ctx context.Context, img *imageview.Image, opts Options) (*Result, error) {
	if opts.RunID == (uuid.UUID{}) {
		opts.RunID = uuid.New()
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ecode.ErrAllocationFailure)
	}

	diag, wave := voronoi.Seed(img)

	b, name, err := selectBackend(ctx, img, opts)
	if err != nil {
		return nil, err
	}
	if closer, ok := b.(interface{ Close(context.Context) error }); ok {
		defer closer.Close(ctx)
	}

	log.Printf("[%s] backend=%s image=%dx%d propagating", opts.RunID, name, img.Width(), img.Height())

	eng := propagate.New(b)
	passes, err := eng.Run(ctx, img, diag, wave)
	if err != nil {
		log.Printf("[%s] backend=%s failed after %d passes: %v", opts.RunID, name, passes, err)
		return nil, err
	}

	out := materialize.Bytes(diag, img.Width(), img.Height())
	log.Printf("[%s] backend=%s converged in %d passes", opts.RunID, name, passes)

	return &Result{Width: img.Width(), Height: img.Height(), Bytes: out, BackendUsed: name, Passes: passes}, nil
}

// selectBackend implements the policy of SPEC_FULL.md §4.6: try an OpenCL
// presence probe as an advisory signal only, then the WASM kernel backend if
// a kernel file is present and loadable, and fall back to the CPU backend
// otherwise. Only the CPU backend is assumed always available; any
// BackendFailure from the WASM path (a present but malformed kernel) is
// fatal and propagates, per spec.md §7's recovery policy naming
// BackendUnavailable as the only kind recovered locally.
func selectBackend(ctx context.Context, img *imageview.Image, opts Options) (backend.Backend, string, error) {
	if opts.ForceCPU {
		return cpu.New(), "cpu", nil
	}

	if err := opencldetect.Probe(); err != nil {
		log.Printf("[%s] opencl probe: %v", opts.RunID, err)
	} else {
		log.Printf("[%s] opencl platform detected", opts.RunID)
	}

	kernelPath := opts.KernelPath
	if kernelPath == "" {
		kernelPath = defaultKernelPath
	}

	wb, err := wasmkernel.Load(ctx, kernelPath, opts.KernelEnv, img.Size())
	switch {
	case err == nil:
		return wb, "wasm", nil
	case errors.Is(err, ecode.ErrBackendUnavailable):
		log.Printf("[%s] %v; falling back to cpu", opts.RunID, err)
		return cpu.New(), "cpu", nil
	default:
		return nil, "", err
	}
}
