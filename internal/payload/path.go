// SPDX-FileCopyrightText: 2026 payloaddoc
// SPDX-License-Identifier: FSL-1.1-MIT

package payload

import (
	"strings"
)

// wildcardSegment marks a descent into every element of an array.
const wildcardSegment = "[]"

// FieldPath is a compiled field path expression. A path is a sequence of
// named-key descents ("a.b"), quoted-key descents ("['a.b']") for keys that
// are unsafe in the bare syntax, and wildcarded array descents ("a[]").
// Compiled paths are immutable and safe to reuse across documents.
type FieldPath struct {
	segments []string
	wildcard bool
}

// Compile parses a field path expression into its segments.
func Compile(expr string) (*FieldPath, error) {
	segments, err := parseSegments(expr)
	if err != nil {
		return nil, err
	}
	path := &FieldPath{segments: segments}
	for _, seg := range segments {
		if seg == wildcardSegment {
			path.wildcard = true
			break
		}
	}
	return path, nil
}

// Segments returns the compiled segments. Wildcard segments are "[]".
func (p *FieldPath) Segments() []string {
	return p.segments
}

// HasWildcard reports whether the path descends into array elements.
func (p *FieldPath) HasWildcard() bool {
	return p.wildcard
}

// String renders the canonical form of the path. The canonical form is what
// "nested beneath" prefix comparisons operate on; compiling it yields an
// equivalent segment sequence.
func (p *FieldPath) String() string {
	var b strings.Builder
	for i, seg := range p.segments {
		switch {
		case seg == wildcardSegment:
			b.WriteString(wildcardSegment)
		case needsBrackets(seg):
			b.WriteString("['")
			b.WriteString(seg)
			b.WriteString("']")
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg)
		}
	}
	return b.String()
}

// needsBrackets reports whether a key must be rendered in the quoted
// bracket syntax.
func needsBrackets(key string) bool {
	return key == "" || strings.ContainsAny(key, ".[]'")
}

func parseSegments(expr string) ([]string, error) {
	if expr == "" {
		return nil, &PathParseError{Path: expr, Reason: "path is empty"}
	}
	var segments []string
	i := 0
	for i < len(expr) {
		switch expr[i] {
		case '.':
			if i == 0 {
				return nil, &PathParseError{Path: expr, Reason: "path starts with '.'"}
			}
			if i == len(expr)-1 || expr[i+1] == '.' {
				return nil, &PathParseError{Path: expr, Reason: "empty segment"}
			}
			i++
		case '[':
			if strings.HasPrefix(expr[i:], wildcardSegment) {
				segments = append(segments, wildcardSegment)
				i += len(wildcardSegment)
				continue
			}
			if !strings.HasPrefix(expr[i:], "['") {
				return nil, &PathParseError{Path: expr, Reason: "malformed bracket: expected \"[]\" or \"['\""}
			}
			end := strings.Index(expr[i+2:], "']")
			if end < 0 {
				return nil, &PathParseError{Path: expr, Reason: "unterminated bracket"}
			}
			segments = append(segments, expr[i+2:i+2+end])
			i += 2 + end + 2
		case ']':
			return nil, &PathParseError{Path: expr, Reason: "unexpected ']'"}
		default:
			j := i
			for j < len(expr) && expr[j] != '.' && expr[j] != '[' && expr[j] != ']' {
				j++
			}
			segments = append(segments, expr[i:j])
			i = j
		}
	}
	return segments, nil
}
