package depscope

import (
	mm "github.com/Masterminds/semver/v3"
)

// ModuleSelector identifies a requested target module: a group, a module
// name and a version constraint. The resolution core treats selectors as
// opaque identities; only the surrounding version-conflict resolution
// interprets the constraint, via Matches.
type ModuleSelector struct {
	// Group is the module's group (organization) coordinate.
	Group string

	// Name is the module name within the group.
	Name string

	// VersionConstraint is the requested version or version range. Empty
	// accepts any version.
	VersionConstraint string
}

// String returns the selector as "group:name:constraint".
func (s ModuleSelector) String() string {
	return s.Group + ":" + s.Name + ":" + s.VersionConstraint
}

// ModuleID returns the constraint-free "group:name" coordinate that drives
// selector identity during traversal.
func (s ModuleSelector) ModuleID() string {
	return s.Group + ":" + s.Name
}

// Matches reports whether a concrete version satisfies the selector's
// constraint. Constraints that parse as semantic version ranges are
// evaluated as such ("1.2.3", ">=1.2 <2.0", "~1.4"); legacy non-semver
// constraints and versions fall back to literal equality.
func (s ModuleSelector) Matches(version string) bool {
	if s.VersionConstraint == "" {
		return true
	}
	c, err := mm.NewConstraint(s.VersionConstraint)
	if err != nil {
		return s.VersionConstraint == version
	}
	v, err := mm.NewVersion(version)
	if err != nil {
		return s.VersionConstraint == version
	}
	return c.Check(v)
}
