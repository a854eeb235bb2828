package depscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleSelectorString(t *testing.T) {
	sel := ModuleSelector{Group: "org.sample", Name: "lib", VersionConstraint: "1.2"}
	assert.Equal(t, "org.sample:lib:1.2", sel.String())
	assert.Equal(t, "org.sample:lib", sel.ModuleID())
}

func TestModuleSelectorMatchesSemverConstraints(t *testing.T) {
	sel := ModuleSelector{Group: "g", Name: "n", VersionConstraint: ">=1.2.0 <2.0.0"}

	assert.True(t, sel.Matches("1.2.0"))
	assert.True(t, sel.Matches("1.9.9"))
	assert.False(t, sel.Matches("2.0.0"))
	assert.False(t, sel.Matches("1.1.0"))
}

func TestModuleSelectorMatchesLiteralFallback(t *testing.T) {
	// Legacy versions that are not semver fall back to literal equality.
	sel := ModuleSelector{Group: "g", Name: "n", VersionConstraint: "RELEASE-candidate.final"}
	assert.True(t, sel.Matches("RELEASE-candidate.final"))
	assert.False(t, sel.Matches("RELEASE-other"))

	// A semver constraint against a non-semver version also falls back.
	ranged := ModuleSelector{Group: "g", Name: "n", VersionConstraint: ">=1.0"}
	assert.False(t, ranged.Matches("not-a-version"))
}

func TestModuleSelectorEmptyConstraintMatchesAnything(t *testing.T) {
	sel := ModuleSelector{Group: "g", Name: "n"}
	assert.True(t, sel.Matches("1.0.0"))
	assert.True(t, sel.Matches("weird"))
}
