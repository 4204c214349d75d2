// Package names reconciles team names across the three external sources
// (odds feed, stats site, rankings site). Each source spells teams
// differently, so resolution runs a curated alias table plus an ordered
// cascade of rewrite stages, ending in a slug fallback that never fails.
package names

import (
	"regexp"
	"strings"
)

// rewrite is one ordered string-rewrite stage. JS-style semantics: a
// non-global stage replaces only the first occurrence.
type rewrite struct {
	re   *regexp.Regexp
	repl string
	all  bool
}

func (rw rewrite) apply(s string) string {
	if rw.all {
		return rw.re.ReplaceAllString(s, rw.repl)
	}
	loc := rw.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + string(rw.re.ExpandString(nil, rw.repl, s, loc)) + s[loc[1]:]
}

// Table maps source-observed team names onto one target name-space.
type Table struct {
	name string

	// overrides are checked before any generic rewrite runs. Each entry
	// protects a name the generic stages would corrupt; see tables.go.
	overrides map[string]string

	fold    func(string) string
	pre     []rewrite
	special func(string) string
	post    []rewrite
	mascots *regexp.Regexp

	// mascotFirst strips the mascot token before the post rewrites,
	// matching the rankings site's lookup order.
	mascotFirst bool

	entries map[string]string
	values  map[string]struct{}
}

func newTable(t *Table) *Table {
	t.values = make(map[string]struct{}, len(t.entries))
	for _, v := range t.entries {
		t.values[v] = struct{}{}
	}
	return t
}

// Name reports which table this is, for log context.
func (t *Table) Name() string { return t.name }

// Len reports the number of curated entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the curated alias entries.
func (t *Table) Entries() map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

func (t *Table) rewriteKey(name string) string {
	key := name
	if t.fold != nil {
		key = t.fold(key)
	}
	for _, rw := range t.pre {
		key = rw.apply(key)
	}
	if t.special != nil {
		key = t.special(key)
	}
	return strings.TrimSpace(key)
}

func (t *Table) stripMascot(key string) string {
	if t.mascots == nil {
		return key
	}
	return strings.TrimSpace(t.mascots.ReplaceAllString(key, ""))
}

func (t *Table) stripTrailing(key string) string {
	for _, rw := range t.post {
		key = rw.apply(key)
	}
	return strings.TrimSpace(key)
}

// Resolve canonicalizes a free-form team name against the given table.
// The cascade is ordered and first match wins:
//
//  1. priority overrides on the raw input
//  2. source-specific rewrites, then exact table match
//  3. exact table match on the raw spelling
//  4. names that already ARE a canonical target value pass through
//  5. trailing-token strips (University / mascot), retrying the table
//  6. slug fallback, which always succeeds
//
// The function is total: any input yields a deterministic string, and a
// miss always produces a string matching ^[a-z0-9-]*$.
func Resolve(name string, t *Table) string {
	v, _ := ResolveKnown(name, t)
	return v
}

// ResolveKnown resolves like Resolve and additionally reports whether the
// name matched a curated entry or canonical value, as opposed to landing
// on the slug fallback.
func ResolveKnown(name string, t *Table) (string, bool) {
	name = strings.TrimSpace(name)

	if v, ok := t.overrides[name]; ok {
		return v, true
	}

	key := t.rewriteKey(name)
	if v, ok := t.entries[key]; ok {
		return v, true
	}
	if v, ok := t.entries[name]; ok {
		return v, true
	}
	if _, ok := t.values[name]; ok {
		return name, true
	}

	if t.mascotFirst {
		key = t.stripMascot(key)
		if v, ok := t.entries[key]; ok {
			return v, true
		}
		key = t.stripTrailing(key)
	} else {
		key = t.stripTrailing(key)
		if v, ok := t.entries[key]; ok {
			return v, true
		}
		key = t.stripMascot(key)
	}
	if v, ok := t.entries[key]; ok {
		return v, true
	}

	return Slugify(key), false
}

var (
	slugTheRe      = regexp.MustCompile(`^the\s+`)
	slugParenRe    = regexp.MustCompile(`\([^)]*\)`)
	slugPunctRe    = regexp.MustCompile(`[.']`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugInvalidRe  = regexp.MustCompile(`[^a-z0-9-]`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify lowers a name into the stats site's URL-safe slug form. Total
// function; output always matches ^[a-z0-9-]*$.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugTheRe.ReplaceAllString(s, "")
	s = slugParenRe.ReplaceAllString(s, "")
	s = slugPunctRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&", "and")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugInvalidRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
