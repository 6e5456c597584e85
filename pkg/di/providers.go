package di

import (
	"github.com/devantler-tech/docdiff/pkg/launcher"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command.
// It registers the process-backed executor factory.
func NewRuntime() *Runtime {
	return New(
		provideExecutorFactory,
	)
}

// ProvideExecutorFactory returns a module registering factory as the executor factory.
func ProvideExecutorFactory(factory launcher.Factory) Module {
	return func(i Injector) error {
		do.Provide(i, func(Injector) (launcher.Factory, error) {
			return factory, nil
		})

		return nil
	}
}

func provideExecutorFactory(i Injector) error {
	return ProvideExecutorFactory(launcher.DefaultFactory)(i)
}
