package legacy

import (
	"errors"
	"fmt"

	"github.com/buildpath/go-depscope/confgraph"
)

// Well-known configuration names of the legacy Maven-interop model.
const (
	// CompileConfiguration is targeted by compile-scoped edges.
	CompileConfiguration = "compile"

	// RuntimeConfiguration is targeted by every non-compile legacy edge.
	RuntimeConfiguration = "runtime"

	// DefaultConfiguration is the fallback when the sought configuration is
	// absent on the target.
	DefaultConfiguration = "default"

	// MasterConfiguration carries the component's own artifacts. It is
	// appended to every selection when present and non-empty.
	MasterConfiguration = "master"
)

// ErrConfigurationNotFound indicates that a required target configuration
// (and its "default" fallback) is absent. Match it with errors.Is, or use
// errors.As with *ConfigurationNotFoundError for the details.
var ErrConfigurationNotFound = errors.New("configuration not found")

// ConfigurationNotFoundError is returned when the primary legacy
// configuration is missing on the target component and no "default" fallback
// exists. It is fatal to resolving the edge it occurred on.
type ConfigurationNotFoundError struct {
	// Component is the identity of the target component.
	Component string

	// Configuration is the name that was sought before falling back.
	Configuration string
}

func (e *ConfigurationNotFoundError) Error() string {
	return fmt.Sprintf("configuration %q not found on %s and no %q configuration present",
		e.Configuration, e.Component, DefaultConfiguration)
}

func (e *ConfigurationNotFoundError) Unwrap() error { return ErrConfigurationNotFound }

// SelectConfigurations computes the ordered list of target configurations a
// legacy dependency edge materializes as, given the name of the
// configuration traversal originates from.
//
// An edge from "compile" targets the compile configuration alone; an edge
// from any other configuration targets runtime first, then compile unless
// runtime's hierarchy already subsumes it. The artifact-bearing master
// configuration, when present, comes last. The result never contains
// duplicates, and two calls with the same arguments yield equal lists.
func SelectConfigurations(fromConfiguration string, target confgraph.Component) ([]confgraph.Configuration, error) {
	var result []confgraph.Configuration

	if fromConfiguration == CompileConfiguration {
		compile, err := lookupWithDefault(target, CompileConfiguration)
		if err != nil {
			return nil, err
		}
		result = append(result, compile)
	} else {
		runtime, err := lookupWithDefault(target, RuntimeConfiguration)
		if err != nil {
			return nil, err
		}
		result = append(result, runtime)

		if !runtime.Hierarchy().Contains(CompileConfiguration) {
			compile, err := lookupWithDefault(target, CompileConfiguration)
			if err != nil {
				return nil, err
			}
			// Both lookups can land on "default"; never emit the same
			// configuration twice.
			if compile.Name() != runtime.Name() {
				result = append(result, compile)
			}
		}
	}

	if master, ok := target.Configuration(MasterConfiguration); ok && master.HasArtifacts() {
		result = append(result, master)
	}

	return result, nil
}

// lookupWithDefault resolves name on the target, falling back to "default"
// in every absence case. Absence of both is the resolution-fatal condition.
func lookupWithDefault(target confgraph.Component, name string) (confgraph.Configuration, error) {
	if c, ok := target.Configuration(name); ok {
		return c, nil
	}
	if c, ok := target.Configuration(DefaultConfiguration); ok {
		return c, nil
	}
	return nil, &ConfigurationNotFoundError{
		Component:     target.ID(),
		Configuration: name,
	}
}
