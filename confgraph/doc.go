// Package confgraph models the named, hierarchical configuration graph of a
// resolved component (the Ivy-style legacy model).
//
// The resolution core only reads this graph: the Component and Configuration
// interfaces are the contract with the resolved-component collaborator, which
// guarantees the graph is complete and immutable once published.
//
// The package also ships ComponentGraph, an immutable in-memory
// implementation assembled through a Builder. The builder validates extension
// targets and precomputes the hierarchy closure of every configuration, so
// that hierarchy subsumption checks during selection are plain set
// containment rather than repeated graph walks.
package confgraph
