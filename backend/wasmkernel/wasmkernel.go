// Package wasmkernel implements spec.md §4.4 Schedule B — bulk relaxation —
// by compiling and instantiating a WebAssembly module with
// github.com/tetratelabs/wazero and invoking its single exported relaxation
// function once per dispatch. This stands in for the cgo/OpenCL accelerator
// of the original source (see original_source/eucligpu.cpp) in a portable,
// dependency-light form: no native GPU driver, no cgo, but the exact
// dispatch shape spec.md describes — one blocking host call per pass, a
// bulk sweep over every pixel, a host-visible "changed" result.
//
// The module is expected to export:
//
//	alloc(size i32) -> ptr i32
//	relax_pass(ptr i32, width i32, height i32) -> changed i32
//
// and memory large enough to hold width*height entries of 20 bytes each
// (pointY, pointX, nearestY, nearestX, valid — all little-endian uint32).
// Producing that module is the accelerator's concern (spec.md §6
// "Accelerator source: ... filename and contents are the backend's
// concern, not the core's"); this package only consumes it.
package wasmkernel

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/FranciscoPDNeto/eucligpu/ecode"
	"github.com/FranciscoPDNeto/eucligpu/geom"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

const entryStride = 20 // 5 little-endian uint32 fields per entry

// Backend drives a compiled WASM relaxation kernel.
type Backend struct {
	runtime  wazero.Runtime
	module   api.Module
	alloc    api.Function
	relax    api.Function
	scratch  uint32 // pointer returned by alloc, reused across passes
	numBytes uint32
}

// Load reads kernelPath, compiles it, and instantiates it against N entries
// worth of scratch memory. kernelEnv is a shell-quoted string of KEY=VALUE
// pairs (tokenized with github.com/google/shlex so values may contain
// spaces) exposed to the module's WASI environment, e.g. to select a tuning
// variant the kernel itself branches on; an empty string sets no variables.
// If kernelPath cannot be read (for example, it does not exist), Load
// returns an error wrapping
// ecode.ErrBackendUnavailable so the selection policy in package transform
// can fall back to the CPU backend without treating a missing kernel file
// as fatal. Any other failure (malformed module, missing exports, malformed
// kernelEnv) wraps ecode.ErrBackendFailure.
func Load(ctx context.Context, kernelPath, kernelEnv string, n int) (*Backend, error) {
	src, err := os.ReadFile(kernelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading kernel %q: %v", ecode.ErrBackendUnavailable, kernelPath, err)
	}

	cfg := wazero.NewModuleConfig()
	if env := strings.TrimSpace(kernelEnv); env != "" {
		tokens, err := shlex.Split(env)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing kernel env %q: %v", ecode.ErrBackendFailure, kernelEnv, err)
		}
		for _, tok := range tokens {
			key, val, ok := strings.Cut(tok, "=")
			if !ok {
				return nil, fmt.Errorf("%w: kernel env token %q is not KEY=VALUE", ecode.ErrBackendFailure, tok)
			}
			cfg = cfg.WithEnv(key, val)
		}
	}

	rt := wazero.NewRuntime(ctx)
	compiled, err := rt.CompileModule(ctx, src)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("%w: compiling kernel %q: %v", ecode.ErrBackendFailure, kernelPath, err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("%w: instantiating kernel %q: %v", ecode.ErrBackendFailure, kernelPath, err)
	}

	alloc := mod.ExportedFunction("alloc")
	relax := mod.ExportedFunction("relax_pass")
	if alloc == nil || relax == nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("%w: kernel %q missing required exports alloc/relax_pass", ecode.ErrBackendFailure, kernelPath)
	}

	numBytes := uint32(n) * entryStride
	results, err := alloc.Call(ctx, uint64(numBytes))
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("%w: kernel alloc(%d): %v", ecode.ErrBackendFailure, numBytes, err)
	}

	return &Backend{
		runtime:  rt,
		module:   mod,
		alloc:    alloc,
		relax:    relax,
		scratch:  uint32(results[0]),
		numBytes: numBytes,
	}, nil
}

// Close releases the wazero runtime and its compiled module. It is safe to
// call multiple times.
func (b *Backend) Close(ctx context.Context) error {
	if b == nil || b.runtime == nil {
		return nil
	}
	err := b.runtime.Close(ctx)
	b.runtime = nil
	return err
}

// Name identifies this backend in the registry and in log output.
func (*Backend) Name() string { return "wasm" }

// MaxPasses bounds the number of bulk-sweep passes, per spec.md §5's
// H+W+1 cap for Schedule B.
func (*Backend) MaxPasses(width, height int) int {
	return width + height + 1
}

// RunPass writes the current diagram into the kernel's scratch memory,
// invokes relax_pass once (one bulk sweep over every pixel, spec.md §4.4
// Schedule B), and reads the updated entries back. The incoming wavefront
// is drained and discarded: Schedule B does not use a worklist, it
// re-examines every pixel each pass, so wave carries no information this
// backend needs; draining it still satisfies the "wavefront... empty at
// termination" lifecycle (spec.md §3).
func (b *Backend) RunPass(ctx context.Context, img *imageview.Image, diag *voronoi.Diagram, wave *voronoi.Wavefront) (bool, error) {
	wave.Drain()

	mem := b.module.Memory()
	buf := make([]byte, b.numBytes)
	for i := 0; i < diag.Len(); i++ {
		e := diag.At(uint32(i))
		off := i * entryStride
		binary.LittleEndian.PutUint32(buf[off:], e.Point.Y)
		binary.LittleEndian.PutUint32(buf[off+4:], e.Point.X)
		if e.NearestBackground.IsValid() {
			binary.LittleEndian.PutUint32(buf[off+8:], e.NearestBackground.Y)
			binary.LittleEndian.PutUint32(buf[off+12:], e.NearestBackground.X)
			binary.LittleEndian.PutUint32(buf[off+16:], 1)
		} else {
			binary.LittleEndian.PutUint32(buf[off+16:], 0)
		}
	}
	if !mem.Write(b.scratch, buf) {
		return false, fmt.Errorf("%w: writing %d bytes to kernel memory at %#x", ecode.ErrBackendFailure, len(buf), b.scratch)
	}

	results, err := b.relax.Call(ctx, uint64(b.scratch), uint64(img.Width()), uint64(img.Height()))
	if err != nil {
		return false, fmt.Errorf("%w: relax_pass: %v", ecode.ErrBackendFailure, err)
	}
	changed := results[0] != 0

	out, ok := mem.Read(b.scratch, b.numBytes)
	if !ok {
		return false, fmt.Errorf("%w: reading back %d bytes from kernel memory at %#x", ecode.ErrBackendFailure, b.numBytes, b.scratch)
	}
	for i := 0; i < diag.Len(); i++ {
		off := i * entryStride
		point := geom.New(int(binary.LittleEndian.Uint32(out[off:])), int(binary.LittleEndian.Uint32(out[off+4:])), img.Width())
		var nearest geom.Coord
		if binary.LittleEndian.Uint32(out[off+16:]) != 0 {
			nearest = geom.New(int(binary.LittleEndian.Uint32(out[off+8:])), int(binary.LittleEndian.Uint32(out[off+12:])), img.Width())
		} else {
			nearest = geom.Invalid()
		}
		diag.Set(uint32(i), voronoi.Entry{Point: point, NearestBackground: nearest})
	}

	return changed, nil
}
