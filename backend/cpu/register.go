package cpu

import "github.com/FranciscoPDNeto/eucligpu/backend"

// init registers a prototype CPU backend under the name "cpu" so
// backend.List() can discover it; transform.Run always instantiates a fresh
// Backend with New() for the actual run rather than reusing this prototype,
// since RunPass accumulates per-run state.
func init() {
	backend.Register(New())
}
