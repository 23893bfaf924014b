// Package opencldetect performs best-effort detection of a native OpenCL
// installation by dynamically loading the platform's OpenCL shared library
// with github.com/ebitengine/purego — no cgo, no build-time linkage against
// a library that may not exist on the build machine. It never compiles or
// runs a kernel (spec.md §1 explicitly puts "the accelerator runtime itself
// (platform/device enumeration...)" out of the core's scope). The
// backend-selection policy in package transform only logs Probe's result;
// it does not change which backend is chosen.
package opencldetect

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/FranciscoPDNeto/eucligpu/ecode"
)

// libraryNames lists, per platform, the conventional locations of the
// system OpenCL ICD loader.
func libraryNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenCL.framework/OpenCL"}
	case "windows":
		return []string{"OpenCL.dll"}
	default:
		return []string{"libOpenCL.so.1", "libOpenCL.so"}
	}
}

// Probe reports whether at least one OpenCL platform is enumerable on this
// machine. A non-nil error always wraps ecode.ErrBackendUnavailable: the
// selection policy treats "no OpenCL" as a routine signal, never a fatal
// condition, per spec.md §7's recovery policy for BackendUnavailable.
func Probe() error {
	var lastErr error
	for _, name := range libraryNames() {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}

		var clGetPlatformIDs func(numEntries uint32, platforms uintptr, numPlatforms *uint32) int32
		purego.RegisterLibFunc(&clGetPlatformIDs, handle, "clGetPlatformIDs")

		var n uint32
		rc := clGetPlatformIDs(0, 0, &n)
		purego.Dlclose(handle)

		if rc != 0 || n == 0 {
			lastErr = fmt.Errorf("clGetPlatformIDs returned rc=%d platforms=%d", rc, n)
			continue
		}
		return nil
	}
	return fmt.Errorf("%w: no usable OpenCL platform found: %v", ecode.ErrBackendUnavailable, lastErr)
}
