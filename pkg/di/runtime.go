// Package di wires docdiff's runtime dependencies with samber/do.
package di

import "github.com/samber/do/v2"

// Injector is the dependency container handed to modules and handlers.
type Injector = do.Injector

// Module registers dependencies with an injector.
type Module func(Injector) error

// Runtime builds a fresh injector from its modules for every invocation.
type Runtime struct {
	modules []Module
}

// New creates a Runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke registers the base modules followed by extra, in order, and then runs
// handler. Nil modules are skipped. A module error aborts before handler runs.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()

	modules := make([]Module, 0, len(r.modules)+len(extra))
	modules = append(modules, r.modules...)
	modules = append(modules, extra...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}
