package shield

import "strings"

// The pipeline hides extension delimiters from the generic CommonMark engine
// by swapping them for private-use code points before parsing. Each sentinel
// stands in for exactly one literal delimiter; Unprotect and the restoration
// passes rely on that mapping being total.

const (
	// HighlightOpen and HighlightClose replace the == pair of ==text==.
	HighlightOpen  rune = '\uE000'
	HighlightClose rune = '\uE001'

	// MathOpen and MathClose replace the $ pair of $expr$.
	MathOpen  rune = '\uE010'
	MathClose rune = '\uE011'

	// ImageDivider replaces a | inside the alt text of an image reference.
	ImageDivider rune = '\uE020'

	// Editorial markup delimiters, one code point per bracket or separator.
	AdditionOpen          rune = '\uE030'
	AdditionClose         rune = '\uE031'
	DeletionOpen          rune = '\uE032'
	DeletionClose         rune = '\uE033'
	SubstitutionOpen      rune = '\uE034'
	SubstitutionSeparator rune = '\uE035'
	SubstitutionClose     rune = '\uE036'
	CommentOpen           rune = '\uE037'
	CommentClose          rune = '\uE038'
	CriticHighlightOpen   rune = '\uE039'
	CriticHighlightClose  rune = '\uE03A'
)

var literals = map[rune]string{
	HighlightOpen:         "==",
	HighlightClose:        "==",
	MathOpen:              "$",
	MathClose:             "$",
	ImageDivider:          "|",
	AdditionOpen:          "{++",
	AdditionClose:         "++}",
	DeletionOpen:          "{--",
	DeletionClose:         "--}",
	SubstitutionOpen:      "{~~",
	SubstitutionSeparator: "~>",
	SubstitutionClose:     "~~}",
	CommentOpen:           "{>>",
	CommentClose:          "<<}",
	CriticHighlightOpen:   "{==",
	CriticHighlightClose:  "==}",
}

var sentinelSet = func() string {
	var sb strings.Builder
	for r := range literals {
		sb.WriteRune(r)
	}
	return sb.String()
}()

// Literal returns the source text the given sentinel replaced.
func Literal(r rune) (string, bool) {
	lit, ok := literals[r]
	return lit, ok
}

// ContainsSentinel reports whether s contains any registered sentinel.
func ContainsSentinel(s string) bool {
	return strings.ContainsAny(s, sentinelSet)
}

// Unprotect replaces every sentinel in s with the literal delimiter it
// stands for. Code spans and raw HTML keep their shielded characters through
// parsing; this turns them back into source text.
func Unprotect(s string) string {
	if !ContainsSentinel(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if lit, ok := literals[r]; ok {
			sb.WriteString(lit)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ContainsPrivateUse reports whether s contains any code point from the BMP
// private use area, registered sentinel or not.
func ContainsPrivateUse(s string) bool {
	return strings.IndexFunc(s, isPrivateUse) >= 0
}

// StripPrivateUse removes every BMP private use code point from s. Content
// the pipeline did not originate should pass through here before protection,
// otherwise stray private characters would be indistinguishable from
// sentinels.
func StripPrivateUse(s string) string {
	if !ContainsPrivateUse(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isPrivateUse(r) {
			return -1
		}
		return r
	}, s)
}

func isPrivateUse(r rune) bool {
	return r >= '\uE000' && r <= '\uF8FF'
}
