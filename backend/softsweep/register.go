package softsweep

import "github.com/FranciscoPDNeto/eucligpu/backend"

// init registers a prototype soft-sweep backend so backend.List() can
// discover it; RunPass is stateless so, unlike cpu.Backend, this prototype
// is safe to reuse directly across runs.
func init() {
	backend.Register(New())
}
