package shield

import "github.com/dlclark/regexp2"

// Protector patterns need look-around (the == and $ delimiters are only
// recognized when not adjacent to more of themselves), which the standard
// regexp package cannot express.
var (
	highlightPattern = regexp2.MustCompile(`(?<!=)==([^=\r\n]+?)==(?!=)`, regexp2.None)
	mathPattern      = regexp2.MustCompile(`(?<![$\\])\$(?!\$)([^$\r\n]+?)(?<!\\)\$(?!\$)`, regexp2.None)

	additionPattern        = regexp2.MustCompile(`\{\+\+(.+?)\+\+\}`, regexp2.Singleline)
	deletionPattern        = regexp2.MustCompile(`\{--(.+?)--\}`, regexp2.Singleline)
	substitutionPattern    = regexp2.MustCompile(`\{~~(.+?)~>(.+?)~~\}`, regexp2.Singleline)
	commentPattern         = regexp2.MustCompile(`\{>>(.+?)<<\}`, regexp2.Singleline)
	criticHighlightPattern = regexp2.MustCompile(`\{==(.+?)==\}`, regexp2.Singleline)

	imageDividerPattern = regexp2.MustCompile(`(?<=!\[[^\]\r\n]*)\\?\|(?=[^\]\r\n]*\]\()`, regexp2.None)
)

var (
	highlightReplacement    = string(HighlightOpen) + "${1}" + string(HighlightClose)
	mathReplacement         = string(MathOpen) + "${1}" + string(MathClose)
	additionReplacement     = string(AdditionOpen) + "${1}" + string(AdditionClose)
	deletionReplacement     = string(DeletionOpen) + "${1}" + string(DeletionClose)
	substitutionReplacement = string(SubstitutionOpen) + "${1}" + string(SubstitutionSeparator) + "${2}" + string(SubstitutionClose)
	commentReplacement      = string(CommentOpen) + "${1}" + string(CommentClose)
	criticHighlightRepl     = string(CriticHighlightOpen) + "${1}" + string(CriticHighlightClose)
)

var criticPasses = []struct {
	pattern     *regexp2.Regexp
	replacement string
}{
	{substitutionPattern, substitutionReplacement},
	{additionPattern, additionReplacement},
	{deletionPattern, deletionReplacement},
	{commentPattern, commentReplacement},
	{criticHighlightPattern, criticHighlightRepl},
}

// Protect runs every protector pass over text in a fixed order. Editorial
// markup must precede plain highlights: the inner == pair of a {==…==}
// bracket would otherwise be eaten by the highlight pass.
func Protect(text string) string {
	out, _ := ProtectCriticMarkup(text)
	out, _ = ProtectHighlights(out)
	out, _ = ProtectMath(out)
	out, _ = ProtectImageDividers(out)
	return out
}

// ProtectHighlights shields ==text== spans. The flag reports whether any
// replacement happened.
func ProtectHighlights(text string) (string, bool) {
	return replaceAll(highlightPattern, text, highlightReplacement)
}

// ProtectCriticMarkup shields the five editorial markup kinds, substitution
// first so its ~> separator is bound before the narrower kinds match.
// Content may span line breaks; matching is always non-greedy.
func ProtectCriticMarkup(text string) (string, bool) {
	matched := false
	for _, pass := range criticPasses {
		var ok bool
		text, ok = replaceAll(pass.pattern, text, pass.replacement)
		matched = matched || ok
	}
	return text, matched
}

// ProtectMath shields $expr$ spans. A dollar adjacent to another dollar
// never matches, keeping $$display math$$ out of the pipeline, and a
// backslash-escaped dollar stays an escaped dollar.
func ProtectMath(text string) (string, bool) {
	return replaceAll(mathPattern, text, mathReplacement)
}

// ProtectImageDividers shields every | inside the alt text of an image
// reference so the surrounding table grammar cannot claim it. A
// backslash-escaped pipe is the same divider spelled for a table cell; the
// escape is consumed with it. The URL and the rest of the image syntax pass
// through untouched.
func ProtectImageDividers(text string) (string, bool) {
	return replaceAll(imageDividerPattern, text, string(ImageDivider))
}

// replaceAll substitutes every match in one sweep. regexp2 resolves all
// match spans against the original input before substituting, so earlier
// replacements cannot shift the offsets of later ones.
func replaceAll(re *regexp2.Regexp, text, replacement string) (string, bool) {
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil || out == text {
		return text, false
	}
	return out, true
}
