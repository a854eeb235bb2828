package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactMatching(t *testing.T) {
	r := MustRule(MatchExact, "org.sample", "lib")

	assert.True(t, r.Matches("org.sample", "lib", ""))
	assert.False(t, r.Matches("org.sample", "other", ""))
	assert.False(t, r.Matches("org.other", "lib", ""))

	// No prefix or substring semantics under exact matching.
	assert.False(t, r.Matches("org.sample.nested", "lib", ""))
}

func TestExactWildcardPatterns(t *testing.T) {
	// Legacy metadata uses "*" (or omits the field) to mean "any value"
	// even for exact rules.
	anyGroup := MustRule(MatchExact, "*", "lib")
	assert.True(t, anyGroup.Matches("org.a", "lib", ""))
	assert.True(t, anyGroup.Matches("org.b", "lib", ""))
	assert.False(t, anyGroup.Matches("org.a", "other", ""))

	emptyModule := MustRule(MatchExact, "org.sample", "")
	assert.True(t, emptyModule.Matches("org.sample", "anything", ""))
}

func TestGlobMatching(t *testing.T) {
	r := MustRule(MatchGlob, "org.sample.*", "lib-?")

	assert.True(t, r.Matches("org.sample.core", "lib-a", ""))
	assert.False(t, r.Matches("org.sample.core", "lib-ab", ""))
	assert.False(t, r.Matches("org.other", "lib-a", ""))
}

func TestRegexpMatching(t *testing.T) {
	r := MustRule(MatchRegexp, `org\.x`, `.*`)

	assert.True(t, r.Matches("org.x", "whatever", ""))

	// Regexp patterns are anchored: no accidental substring matches.
	assert.False(t, r.Matches("org.xylophone", "whatever", ""))
}

func TestFromRestriction(t *testing.T) {
	restricted := MustRule(MatchExact, "org.sample", "lib", "org.a:app", "org.b:svc")

	assert.True(t, restricted.Matches("org.sample", "lib", "org.a:app"))
	assert.True(t, restricted.Matches("org.sample", "lib", "org.b:svc"))
	assert.False(t, restricted.Matches("org.sample", "lib", "org.c:other"))
	assert.False(t, restricted.Matches("org.sample", "lib", ""))

	// Absent from list: the rule applies regardless of traversal source.
	open := MustRule(MatchExact, "org.sample", "lib")
	assert.True(t, open.Matches("org.sample", "lib", "org.c:other"))
	assert.True(t, open.Matches("org.sample", "lib", ""))
}

func TestMalformedPatternsFailAtConstruction(t *testing.T) {
	_, err := NewRule(MatchGlob, "org.[", "lib")
	require.ErrorIs(t, err, ErrMalformedPattern)

	_, err = NewRule(MatchRegexp, "org(", "lib")
	require.ErrorIs(t, err, ErrMalformedPattern)

	_, err = NewRule(MatchRegexp, "org", "lib(")
	require.ErrorIs(t, err, ErrMalformedPattern)

	// Exact patterns cannot be malformed.
	_, err = NewRule(MatchExact, "org.[", "lib(")
	require.NoError(t, err)
}

func TestRuleFromOrderIsPreserved(t *testing.T) {
	r := MustRule(MatchExact, "g", "m", "b", "a")
	assert.Equal(t, []string{"b", "a"}, r.From())
}
