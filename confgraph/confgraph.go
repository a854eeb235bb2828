package confgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Component is the queryable configuration graph of one resolved component.
// Implementations must be immutable once published to resolution; the core
// performs concurrent lock-free reads against them.
type Component interface {
	// ID identifies the component for diagnostics, conventionally
	// "group:module:version".
	ID() string

	// Configuration looks up a configuration by name. The boolean is false
	// when no configuration with that name exists; absence is the only
	// failure channel, there is no distinct "lookup error".
	Configuration(name string) (Configuration, bool)
}

// Configuration is one named node in a component's configuration graph.
type Configuration interface {
	// Name is unique within the owning component.
	Name() string

	// Hierarchy is the closure of configuration names this configuration
	// extends, always including its own name.
	Hierarchy() Hierarchy

	// HasArtifacts reports whether the configuration declares at least one
	// artifact.
	HasArtifacts() bool
}

// Hierarchy is a precomputed closure of configuration names.
type Hierarchy map[string]struct{}

// Contains reports whether name is part of the closure.
func (h Hierarchy) Contains(name string) bool {
	_, ok := h[name]
	return ok
}

// Names returns the closure as a sorted slice.
func (h Hierarchy) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComponentGraph is an immutable in-memory Component.
type ComponentGraph struct {
	id      string
	configs map[string]*configuration
}

var _ Component = (*ComponentGraph)(nil)

type configuration struct {
	name      string
	hierarchy Hierarchy
	artifacts bool
}

func (c *configuration) Name() string         { return c.name }
func (c *configuration) Hierarchy() Hierarchy { return c.hierarchy }
func (c *configuration) HasArtifacts() bool   { return c.artifacts }

// ID returns the component identity the graph was built with.
func (g *ComponentGraph) ID() string { return g.id }

// Configuration looks up a configuration by name.
func (g *ComponentGraph) Configuration(name string) (Configuration, bool) {
	c, ok := g.configs[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// ConfigurationNames returns all configuration names, sorted.
func (g *ComponentGraph) ConfigurationNames() []string {
	names := make([]string, 0, len(g.configs))
	for name := range g.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builder assembles a ComponentGraph. Declare every configuration with Add,
// then call Build, which validates extension targets and computes hierarchy
// closures.
type Builder struct {
	id    string
	decls []configDecl
}

type configDecl struct {
	name      string
	extends   []string
	artifacts bool
}

// NewBuilder creates a builder for the component with the given identity.
func NewBuilder(id string) *Builder {
	return &Builder{id: id}
}

// Add declares a configuration. extends lists the configurations it directly
// extends; hasArtifacts records whether it carries at least one artifact.
func (b *Builder) Add(name string, extends []string, hasArtifacts bool) *Builder {
	b.decls = append(b.decls, configDecl{
		name:      name,
		extends:   slices.Clone(extends),
		artifacts: hasArtifacts,
	})
	return b
}

// Build validates the declarations and produces the immutable graph.
// It fails on duplicate configuration names, extension of an undeclared
// configuration, and extension cycles ("extends" must be a partial order).
func (b *Builder) Build() (*ComponentGraph, error) {
	decls := make(map[string]configDecl, len(b.decls))
	for _, d := range b.decls {
		if _, dup := decls[d.name]; dup {
			return nil, fmt.Errorf("component %s: configuration %q declared twice", b.id, d.name)
		}
		decls[d.name] = d
	}
	for _, d := range b.decls {
		for _, parent := range d.extends {
			if _, ok := decls[parent]; !ok {
				return nil, fmt.Errorf("component %s: configuration %q extends undeclared configuration %q", b.id, d.name, parent)
			}
		}
	}

	closures := make(map[string]Hierarchy, len(decls))
	state := make(map[string]int, len(decls)) // 0 unvisited, 1 in progress, 2 done

	var closure func(name string) (Hierarchy, error)
	closure = func(name string) (Hierarchy, error) {
		switch state[name] {
		case 2:
			return closures[name], nil
		case 1:
			return nil, fmt.Errorf("component %s: configuration %q is part of an extension cycle", b.id, name)
		}
		state[name] = 1

		h := Hierarchy{name: {}}
		for _, parent := range decls[name].extends {
			ph, err := closure(parent)
			if err != nil {
				return nil, err
			}
			for n := range ph {
				h[n] = struct{}{}
			}
		}

		state[name] = 2
		closures[name] = h
		return h, nil
	}

	configs := make(map[string]*configuration, len(decls))
	for name, d := range decls {
		h, err := closure(name)
		if err != nil {
			return nil, err
		}
		configs[name] = &configuration{
			name:      name,
			hierarchy: h,
			artifacts: d.artifacts,
		}
	}

	return &ComponentGraph{id: b.id, configs: configs}, nil
}

// MustBuild is Build that panics on invalid declarations. Use only for
// constants and tests.
func (b *Builder) MustBuild() *ComponentGraph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
