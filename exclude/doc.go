// Package exclude implements the exclusion rule engine used during legacy
// dependency resolution.
//
// An exclusion rule is a pattern over a module coordinate (group and module
// name), optionally restricted to a set of "from" modules, i.e. the modules
// from which traversal reached the candidate. Rules are combined into a
// merged Spec with OR semantics: a candidate is excluded when any constituent
// rule matches it.
//
// # Interning
//
// Merged specs are interned. Merging the same set of rules always returns the
// same *Spec instance, regardless of declaration order or duplicates, and an
// empty rule set always returns the canonical Nothing() spec. Graph traversal
// compares specs across a very large number of edges; callers may use pointer
// equality as a fast path before any structural comparison.
//
// # Thread safety
//
// All types in this package are immutable after construction. Merge and Union
// are safe for concurrent use; a race merging the same rule set publishes
// exactly one canonical instance.
package exclude
