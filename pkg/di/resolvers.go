package di

import (
	"fmt"

	"github.com/devantler-tech/docdiff/pkg/launcher"
	"github.com/samber/do/v2"
)

// ResolveExecutorFactory retrieves the executor factory from the injector.
func ResolveExecutorFactory(injector Injector) (launcher.Factory, error) {
	factory, err := do.Invoke[launcher.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve executor factory dependency: %w", err)
	}

	return factory, nil
}
