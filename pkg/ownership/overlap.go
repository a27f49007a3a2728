// Package ownership guards parallel sibling tasks against overlapping
// owned_files claims. The overlap predicate is conservative: wildcards
// count as overlap whenever the literal prefix matches.
package ownership

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/droverhq/drover/pkg/services"
)

// MayOverlap reports whether two glob patterns could match a common path.
// Equal patterns overlap; so does a segment-level prefix relation once a
// trailing '**' is stripped. Otherwise the patterns are walked segment by
// segment: a wildcard at any shared depth means overlap, the first
// differing literal segments mean disjoint.
func MayOverlap(a, b string) bool {
	if a == b {
		return true
	}

	as := splitPattern(a)
	bs := splitPattern(b)
	if segmentPrefix(trimGlobstar(as), bs) || segmentPrefix(trimGlobstar(bs), as) {
		return true
	}

	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if isWildcardSegment(as[i]) || isWildcardSegment(bs[i]) {
			return true
		}
		if as[i] != bs[i] {
			return false
		}
	}

	// One pattern exhausted with only literal matches: prefix relation.
	return true
}

// CheckSyntax validates glob pattern syntax for an owned_files list.
func CheckSyntax(patterns []string) error {
	for _, p := range patterns {
		if p == "" {
			return services.NewValidationError("owned_files", "empty pattern")
		}
		if !doublestar.ValidatePattern(p) {
			return services.NewValidationError("owned_files", fmt.Sprintf("invalid pattern %q", p))
		}
	}
	return nil
}

func splitPattern(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

// trimGlobstar drops a trailing '**' segment so "src/auth/**" prefixes
// "src/auth/jwt.go".
func trimGlobstar(segs []string) []string {
	if len(segs) > 0 && segs[len(segs)-1] == "**" {
		return segs[:len(segs)-1]
	}
	return segs
}

func segmentPrefix(prefix, segs []string) bool {
	if len(prefix) > len(segs) {
		return false
	}
	for i := range prefix {
		if prefix[i] != segs[i] {
			return false
		}
	}
	return true
}

func isWildcardSegment(seg string) bool {
	return strings.ContainsAny(seg, "*?[{")
}
