package exclude

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// ErrMalformedPattern indicates a group or module pattern that does not
// compile under its matcher kind. It is reported by NewRule, never by
// Merge or by matching.
var ErrMalformedPattern = errors.New("malformed exclude pattern")

// MatchKind selects how a rule's group and module patterns are evaluated.
type MatchKind int

const (
	// MatchExact requires literal string equality. The pattern "*" (or an
	// empty pattern) matches any value, as legacy metadata uses it to mean
	// "any group" or "any module".
	MatchExact MatchKind = iota

	// MatchGlob applies glob matching ("org.sample.*", "lib-?").
	MatchGlob

	// MatchRegexp applies anchored regular expression matching.
	MatchRegexp
)

// String returns the matcher kind name used in diagnostics.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchGlob:
		return "glob"
	case MatchRegexp:
		return "regexp"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
}

// matcher is a compiled single-pattern predicate.
type matcher func(string) bool

// Rule is one exclusion rule: a pattern over {group, module name}, an
// optional list of "from" module names restricting when the rule applies,
// and a matcher kind.
//
// Rules are value types: two rules with the same kind, group pattern, module
// pattern and from list are interchangeable, and merging them produces the
// same interned Spec. Construct rules with NewRule so that patterns are
// compiled exactly once, at declaration time.
type Rule struct {
	kind   MatchKind
	group  string
	module string
	from   []string

	groupMatch  matcher
	moduleMatch matcher

	// key is the canonical identity of the rule, used by the intern table.
	key string
}

// NewRule compiles an exclusion rule. The group and module patterns are
// interpreted according to kind; from lists the module names the rule is
// restricted to (empty means the rule applies regardless of traversal
// source).
//
// Pattern compilation failures are returned here, wrapping
// ErrMalformedPattern. A rule that constructed successfully never fails
// later: merge and match are total.
func NewRule(kind MatchKind, group, module string, from ...string) (Rule, error) {
	groupMatch, err := compilePattern(kind, group)
	if err != nil {
		return Rule{}, fmt.Errorf("group pattern %q: %w", group, err)
	}
	moduleMatch, err := compilePattern(kind, module)
	if err != nil {
		return Rule{}, fmt.Errorf("module pattern %q: %w", module, err)
	}

	r := Rule{
		kind:        kind,
		group:       group,
		module:      module,
		from:        slices.Clone(from),
		groupMatch:  groupMatch,
		moduleMatch: moduleMatch,
	}
	r.key = ruleKey(kind, group, module, r.from)
	return r, nil
}

// MustRule is NewRule that panics on malformed patterns. Use only for
// constants and tests.
func MustRule(kind MatchKind, group, module string, from ...string) Rule {
	r, err := NewRule(kind, group, module, from...)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind returns the rule's matcher kind.
func (r Rule) Kind() MatchKind { return r.kind }

// Group returns the group pattern as declared.
func (r Rule) Group() string { return r.group }

// Module returns the module name pattern as declared.
func (r Rule) Module() string { return r.module }

// From returns the module names this rule is restricted to, in declaration
// order. An empty result means the rule applies from any module.
func (r Rule) From() []string { return slices.Clone(r.from) }

// Matches reports whether the candidate module coordinate, reached from the
// given module, is excluded by this rule. from may be empty when the
// traversal source is the root of resolution.
func (r Rule) Matches(group, module, from string) bool {
	if !r.appliesFrom(from) {
		return false
	}
	return r.groupMatch(group) && r.moduleMatch(module)
}

func (r Rule) appliesFrom(from string) bool {
	if len(r.from) == 0 {
		return true
	}
	return slices.Contains(r.from, from)
}

// String returns the rule as "kind:group:module" with the from restriction
// appended when present.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.kind.String())
	sb.WriteByte(':')
	sb.WriteString(r.group)
	sb.WriteByte(':')
	sb.WriteString(r.module)
	if len(r.from) > 0 {
		sb.WriteString(" from ")
		sb.WriteString(strings.Join(r.from, ","))
	}
	return sb.String()
}

// compilePattern builds the predicate for one pattern under the given kind.
func compilePattern(kind MatchKind, pattern string) (matcher, error) {
	switch kind {
	case MatchExact:
		// Legacy metadata uses "*" (or omits the field entirely) to mean
		// "any value", even under exact matching.
		if pattern == "" || pattern == "*" {
			return matchAny, nil
		}
		return func(s string) bool { return s == pattern }, nil

	case MatchGlob:
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
		}
		return g.Match, nil

	case MatchRegexp:
		re, err := regexp.Compile(anchored(pattern))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPattern, err)
		}
		return re.MatchString, nil

	default:
		return nil, fmt.Errorf("%w: unknown matcher kind %d", ErrMalformedPattern, int(kind))
	}
}

func matchAny(string) bool { return true }

// anchored forces full-string regexp matching so that "org.x" cannot
// accidentally match "org.xylophone".
func anchored(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// ruleKey builds the canonical identity of a rule. Every field is quoted so
// that separators occurring inside patterns cannot collide.
func ruleKey(kind MatchKind, group, module string, from []string) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(kind)))
	sb.WriteByte('|')
	sb.WriteString(strconv.Quote(group))
	sb.WriteByte('|')
	sb.WriteString(strconv.Quote(module))
	for _, f := range from {
		sb.WriteByte('|')
		sb.WriteString(strconv.Quote(f))
	}
	return sb.String()
}
