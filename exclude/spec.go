package exclude

import (
	"slices"
	"strings"
	"sync"
)

// Spec is the merged evaluator produced by combining zero or more rules with
// OR semantics. Specs are interned: Merge returns the same instance for
// set-equal rule inputs, so callers on the traversal hot path may compare
// specs by pointer.
type Spec struct {
	rules []Rule
	key   string
}

// excludeNothing is the canonical spec for an empty rule set.
var excludeNothing = &Spec{}

// interned maps canonical rule-set keys to their published *Spec. It is the
// only shared mutable state in this package; LoadOrStore guarantees that a
// merge race publishes exactly one winner.
var interned sync.Map

// Nothing returns the canonical spec that excludes nothing. Merging an empty
// rule set returns this same instance.
func Nothing() *Spec { return excludeNothing }

// Merge combines rules into an interned Spec. The input may be empty and may
// contain duplicates; it is treated as an unordered set, so two sequences
// holding the same rules in different order intern to the same instance.
func Merge(rules []Rule) *Spec {
	if len(rules) == 0 {
		return excludeNothing
	}

	canonical := canonicalize(rules)
	key := specKey(canonical)

	if cached, ok := interned.Load(key); ok {
		return cached.(*Spec)
	}
	spec, _ := interned.LoadOrStore(key, &Spec{rules: canonical, key: key})
	return spec.(*Spec)
}

// Union merges the rules of two specs. Combining any spec with Nothing()
// returns the other spec unchanged, and combining a spec with itself returns
// it unchanged, both without touching the intern table.
func Union(a, b *Spec) *Spec {
	if a == b || b == excludeNothing {
		return a
	}
	if a == excludeNothing {
		return b
	}
	combined := make([]Rule, 0, len(a.rules)+len(b.rules))
	combined = append(combined, a.rules...)
	combined = append(combined, b.rules...)
	return Merge(combined)
}

// Excludes reports whether the candidate module coordinate, reached from the
// given module, matches at least one constituent rule. from may be empty for
// root edges.
func (s *Spec) Excludes(group, module, from string) bool {
	for _, r := range s.rules {
		if r.Matches(group, module, from) {
			return true
		}
	}
	return false
}

// ExcludesNothing reports whether this is the canonical empty spec.
func (s *Spec) ExcludesNothing() bool { return s == excludeNothing }

// Rules returns the canonicalized rules of this spec.
func (s *Spec) Rules() []Rule { return slices.Clone(s.rules) }

// String renders the constituent rules for diagnostics.
func (s *Spec) String() string {
	if s == excludeNothing {
		return "excludes nothing"
	}
	parts := make([]string, len(s.rules))
	for i, r := range s.rules {
		parts[i] = r.String()
	}
	return "excludes {" + strings.Join(parts, "; ") + "}"
}

// canonicalize sorts rules by their identity key and drops duplicates,
// producing the representation the intern table is keyed on.
func canonicalize(rules []Rule) []Rule {
	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b Rule) int {
		return strings.Compare(a.key, b.key)
	})
	return slices.CompactFunc(sorted, func(a, b Rule) bool {
		return a.key == b.key
	})
}

func specKey(canonical []Rule) string {
	var sb strings.Builder
	for i, r := range canonical {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.key)
	}
	return sb.String()
}
