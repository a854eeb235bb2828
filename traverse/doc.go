// Package traverse implements the graph-traversal loop that consumes the
// resolution core: for each dependency edge it computes the merged exclusion
// spec, selects the target's legacy configurations, prunes transitive
// modules matching the accumulated exclusions, and recurses.
//
// Exclusion specs accumulate along paths through exclude.Union, which
// re-enters the intern table; the walker's visited set is keyed on the spec
// pointer, so subgraphs reached repeatedly under the same exclusion set are
// walked once. Version conflict resolution is out of scope here: the walker
// visits every requested version it is handed.
package traverse
