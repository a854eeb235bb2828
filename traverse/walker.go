package traverse

import (
	"context"
	"fmt"
	"log/slog"

	depscope "github.com/buildpath/go-depscope"
	"github.com/buildpath/go-depscope/confgraph"
	"github.com/buildpath/go-depscope/exclude"
)

// Provider resolves a module selector to its component configuration graph
// and the dependencies the component declares. It stands in for the
// repository-access and metadata-parsing collaborators, which are outside
// the resolution core.
type Provider interface {
	Resolve(ctx context.Context, selector depscope.ModuleSelector) (confgraph.Component, []*depscope.DependencyDescriptor, error)
}

// Edge is one traversal edge materialized by the walker: a configuration of
// a resolved component, reached from a module for a requested selector.
type Edge struct {
	// From is the module coordinate ("group:name") the edge originates
	// from; empty for edges of the root component.
	From string

	// Selector is the requested target module.
	Selector depscope.ModuleSelector

	// Configuration is the selected target configuration name.
	Configuration string
}

// PrunedEdge records a dependency that was dropped because its module
// matched the exclusion spec accumulated on the path to it.
type PrunedEdge struct {
	// From is the module coordinate the dependency was declared on.
	From string

	// Selector is the excluded target module.
	Selector depscope.ModuleSelector
}

// Result is the outcome of one walk.
type Result struct {
	// Edges lists every materialized traversal edge, in visit order.
	Edges []Edge

	// Pruned lists dependencies dropped by exclusion, in visit order.
	Pruned []PrunedEdge
}

// Options configures a Walker.
type Options struct {
	// Logger receives debug events for every selection and pruning
	// decision. Defaults to slog.Default().
	Logger *slog.Logger
}

// Walker drives traversal over a provider's components. A Walker is not safe
// for concurrent use; create one per walk or per goroutine.
type Walker struct {
	provider Provider
	logger   *slog.Logger

	visited map[visitKey]bool
	result  *Result
}

// visitKey identifies a (component, configuration, exclusion set) triple.
// The spec field is the interned pointer: set-equal exclusion sets share an
// instance, so repeated subgraphs hash to the same key.
type visitKey struct {
	component     string
	configuration string
	spec          *exclude.Spec
}

// NewWalker creates a walker over the given provider.
func NewWalker(provider Provider, opts Options) *Walker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{provider: provider, logger: logger}
}

// Walk resolves the root selector and traverses its dependency graph,
// producing the materialized edges and the pruned dependencies. It returns
// the first error encountered; selection failures carry the component and
// configuration that could not be resolved.
func (w *Walker) Walk(ctx context.Context, root depscope.ModuleSelector) (*Result, error) {
	w.visited = make(map[visitKey]bool)
	w.result = &Result{}

	component, deps, err := w.provider.Resolve(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}

	for _, dep := range deps {
		if err := w.walkEdge(ctx, component, dep.Scope().FromConfiguration(), "", dep, exclude.Nothing()); err != nil {
			return nil, err
		}
	}
	return w.result, nil
}

// walkEdge processes one declared dependency of fromComponent, traversed
// from the named configuration. inherited is the exclusion spec accumulated
// on the path to fromComponent; fromModule is its "group:name" coordinate
// (empty at the root).
func (w *Walker) walkEdge(ctx context.Context, fromComponent confgraph.Component, fromConfiguration, fromModule string, dep *depscope.DependencyDescriptor, inherited *exclude.Spec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	selector := dep.Selector()
	if inherited.Excludes(selector.Group, selector.Name, fromModule) {
		w.logger.Debug("pruned excluded dependency",
			"from", fromComponent.ID(), "module", selector.ModuleID())
		w.result.Pruned = append(w.result.Pruned, PrunedEdge{From: fromModule, Selector: selector})
		return nil
	}

	target, targetDeps, err := w.provider.Resolve(ctx, selector)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", selector, err)
	}

	configurations, err := dep.SelectConfigurations(fromConfiguration, target)
	if err != nil {
		return err
	}

	// The edge's own exclusions apply to the target's transitive
	// dependencies, not to the target itself.
	carried := exclude.Union(inherited, dep.ExcludeSpec())

	materialized := false
	for _, configuration := range configurations {
		key := visitKey{
			component:     target.ID(),
			configuration: configuration.Name(),
			spec:          carried,
		}
		if w.visited[key] {
			continue
		}
		w.visited[key] = true
		materialized = true

		w.logger.Debug("materialized edge",
			"from", fromConfiguration, "target", target.ID(), "configuration", configuration.Name())
		w.result.Edges = append(w.result.Edges, Edge{
			From:          fromModule,
			Selector:      selector,
			Configuration: configuration.Name(),
		})
	}

	// Recurse once per edge, from the primary selected configuration. If
	// every configuration was already visited under this exclusion set the
	// whole subgraph has been walked before; interning makes that check a
	// pointer comparison.
	if materialized {
		primary := configurations[0].Name()
		for _, transitive := range targetDeps {
			if err := w.walkEdge(ctx, target, primary, selector.ModuleID(), transitive, carried); err != nil {
				return err
			}
		}
	}

	return nil
}
