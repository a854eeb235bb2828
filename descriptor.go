// Package depscope provides the legacy dependency-resolution core of a build
// tool: given a dependency declared with Maven-style scoping and a set of
// exclusion rules, it determines which configurations of the resolved target
// must be traversed during graph construction, and which transitive modules
// must be pruned from that traversal.
//
// # Overview
//
// The package pairs two tightly coupled subsystems, invoked together for
// every legacy (non-variant-aware) dependency edge:
//
//   - exclude: merges exclusion rules into canonical, reference-stable
//     evaluators usable for fast matching during traversal
//   - legacy: maps Maven scopes onto the target component's Ivy-style
//     configuration graph (modeled by confgraph)
//
// A DependencyDescriptor ties one declared dependency to both: it exposes
// the merged exclude spec (computed once, interned) and delegates
// configuration selection against a resolved target.
//
//	sel := depscope.ModuleSelector{Group: "org.sample", Name: "lib", VersionConstraint: "1.2"}
//	rule := exclude.MustRule(exclude.MatchExact, "org.unwanted", "*")
//	d := depscope.NewDependencyDescriptor(sel, depscope.ScopeRuntime, rule)
//
//	confs, err := d.SelectConfigurations(d.Scope().FromConfiguration(), target)
//	spec := d.ExcludeSpec() // same instance on every call
//
// # Thread safety
//
// Descriptors are immutable after construction and safe for concurrent use.
// The exclude intern table is the only shared mutable state in the core; no
// operation blocks or performs I/O.
package depscope

import (
	"slices"
	"sync"

	"github.com/buildpath/go-depscope/confgraph"
	"github.com/buildpath/go-depscope/exclude"
	"github.com/buildpath/go-depscope/legacy"
)

// DependencyDescriptor is one parsed dependency declaration: a requested
// module selector, a Maven-style scope, and the exclusion rules declared on
// the dependency. It is immutable once constructed; the graph builder holds
// one descriptor per declared dependency edge.
type DependencyDescriptor struct {
	selector ModuleSelector
	scope    Scope
	rules    []exclude.Rule

	once sync.Once
	spec *exclude.Spec
}

// NewDependencyDescriptor creates a descriptor for one dependency
// declaration. The rules must already be validated (NewRule rejects
// malformed patterns at construction time, upstream of this core).
func NewDependencyDescriptor(selector ModuleSelector, scope Scope, rules ...exclude.Rule) *DependencyDescriptor {
	return &DependencyDescriptor{
		selector: selector,
		scope:    scope,
		rules:    slices.Clone(rules),
	}
}

// Selector returns the requested module selector.
func (d *DependencyDescriptor) Selector() ModuleSelector { return d.selector }

// Scope returns the declared Maven scope.
func (d *DependencyDescriptor) Scope() Scope { return d.scope }

// ExcludeRules returns the exclusion rules as declared.
func (d *DependencyDescriptor) ExcludeRules() []exclude.Rule { return slices.Clone(d.rules) }

// ExcludeSpec returns the merged exclusion spec for this descriptor's rules.
// The spec is computed once and is reference-stable: repeated calls return
// the same instance, and descriptors constructed with set-equal rule lists
// share that instance through the exclude intern table.
func (d *DependencyDescriptor) ExcludeSpec() *exclude.Spec {
	d.once.Do(func() {
		d.spec = exclude.Merge(d.rules)
	})
	return d.spec
}

// SelectConfigurations computes the ordered target configurations this edge
// materializes as, given the configuration traversal originates from.
// See legacy.SelectConfigurations for the mapping and failure modes.
func (d *DependencyDescriptor) SelectConfigurations(fromConfiguration string, target confgraph.Component) ([]confgraph.Configuration, error) {
	return legacy.SelectConfigurations(fromConfiguration, target)
}
