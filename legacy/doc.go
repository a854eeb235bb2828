// Package legacy implements legacy configuration selection: the
// Maven-to-Ivy interop mapping that decides which configurations of a target
// component a dependency edge materializes as.
//
// The mapping is fixed by decades of interoperability between the two
// dependency models. A compile-scoped edge targets the "compile"
// configuration; every other legacy edge targets "runtime" plus "compile"
// (unless runtime's hierarchy already includes compile); the artifact-bearing
// "master" configuration, when present, is always appended. Configuration
// lookups fall back to "default" when the sought name is absent; when the
// fallback is also absent the edge fails with ConfigurationNotFoundError.
//
// Selection is a pure read over an immutable configuration graph; it is
// stateless, non-blocking, and safe to invoke concurrently.
package legacy
