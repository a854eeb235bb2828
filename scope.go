package depscope

import (
	"fmt"
	"strings"

	"github.com/buildpath/go-depscope/legacy"
)

// Scope is the Maven-style classification of a dependency declaration. The
// set is closed and fixed at descriptor creation.
//
// Only the compile/runtime distinction affects traversal: every scope other
// than Compile collapses to runtime-like behavior (see FromConfiguration).
type Scope int

const (
	// ScopeCompile dependencies are needed to compile against the consumer.
	ScopeCompile Scope = iota

	// ScopeRuntime dependencies are needed at execution time only.
	ScopeRuntime

	// ScopeProvided dependencies are supplied by the execution environment.
	ScopeProvided

	// ScopeTest dependencies are needed only to compile and run tests.
	ScopeTest

	// ScopeSystem dependencies are resolved from an explicit local path.
	ScopeSystem

	// ScopeImport pulls in a dependency-management section rather than an
	// artifact.
	ScopeImport
)

var scopeNames = [...]string{
	ScopeCompile:  "compile",
	ScopeRuntime:  "runtime",
	ScopeProvided: "provided",
	ScopeTest:     "test",
	ScopeSystem:   "system",
	ScopeImport:   "import",
}

// String returns the lowercase scope name as it appears in module metadata.
func (s Scope) String() string {
	if s < 0 || int(s) >= len(scopeNames) {
		return fmt.Sprintf("Scope(%d)", int(s))
	}
	return scopeNames[s]
}

// ParseScope parses a metadata scope string, case-insensitively.
func ParseScope(name string) (Scope, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for s, n := range scopeNames {
		if n == lower {
			return Scope(s), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownScope, name)
}

// FromConfiguration returns the name of the configuration a dependency with
// this scope is traversed from: "compile" for the compile scope and
// "runtime" for everything else.
func (s Scope) FromConfiguration() string {
	if s == ScopeCompile {
		return legacy.CompileConfiguration
	}
	return legacy.RuntimeConfiguration
}
