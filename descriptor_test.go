package depscope

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildpath/go-depscope/confgraph"
	"github.com/buildpath/go-depscope/exclude"
)

func TestExcludeSpecIsReferenceStable(t *testing.T) {
	d := NewDependencyDescriptor(
		ModuleSelector{Group: "org.sample", Name: "lib", VersionConstraint: "1.0"},
		ScopeRuntime,
		exclude.MustRule(exclude.MatchExact, "org.unwanted", "*"),
	)

	require.Same(t, d.ExcludeSpec(), d.ExcludeSpec())
}

func TestExcludeSpecSharedAcrossEqualDescriptors(t *testing.T) {
	rules := func() []exclude.Rule {
		return []exclude.Rule{
			exclude.MustRule(exclude.MatchExact, "org.unwanted", "*"),
			exclude.MustRule(exclude.MatchGlob, "org.legacy.*", "*"),
		}
	}

	a := NewDependencyDescriptor(ModuleSelector{Group: "g", Name: "a"}, ScopeCompile, rules()...)

	reversed := rules()
	reversed[0], reversed[1] = reversed[1], reversed[0]
	b := NewDependencyDescriptor(ModuleSelector{Group: "g", Name: "b"}, ScopeRuntime, reversed...)

	// Structurally equal rule sets intern to one spec, whatever descriptor
	// asked first.
	require.Same(t, a.ExcludeSpec(), b.ExcludeSpec())
}

func TestExcludeSpecWithoutRulesIsNothing(t *testing.T) {
	d := NewDependencyDescriptor(ModuleSelector{Group: "g", Name: "n"}, ScopeCompile)
	require.Same(t, exclude.Nothing(), d.ExcludeSpec())
}

func TestExcludeSpecConcurrentAccess(t *testing.T) {
	d := NewDependencyDescriptor(
		ModuleSelector{Group: "g", Name: "n"},
		ScopeRuntime,
		exclude.MustRule(exclude.MatchExact, "org.unwanted", "lib"),
	)

	const goroutines = 32
	specs := make([]*exclude.Spec, goroutines)
	var wg sync.WaitGroup
	for i := range specs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			specs[i] = d.ExcludeSpec()
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Same(t, specs[0], specs[i])
	}
}

func TestSelectConfigurationsDelegation(t *testing.T) {
	target := confgraph.NewBuilder("org.sample:lib:1.0").
		Add("compile", nil, false).
		Add("runtime", []string{"compile"}, false).
		Add("master", nil, true).
		MustBuild()

	d := NewDependencyDescriptor(ModuleSelector{Group: "org.sample", Name: "lib"}, ScopeProvided)

	result, err := d.SelectConfigurations(d.Scope().FromConfiguration(), target)
	require.NoError(t, err)

	got := make([]string, len(result))
	for i, c := range result {
		got[i] = c.Name()
	}
	assert.Equal(t, []string{"runtime", "master"}, got)
}

func TestDescriptorAccessors(t *testing.T) {
	sel := ModuleSelector{Group: "org.sample", Name: "lib", VersionConstraint: "[1.0,2.0)"}
	rule := exclude.MustRule(exclude.MatchExact, "org.unwanted", "*")
	d := NewDependencyDescriptor(sel, ScopeTest, rule)

	assert.Equal(t, sel, d.Selector())
	assert.Equal(t, ScopeTest, d.Scope())

	rules := d.ExcludeRules()
	require.Len(t, rules, 1)
	assert.Equal(t, rule.String(), rules[0].String())
}
