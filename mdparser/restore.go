package mdparser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgonek/extended-markdown/document"
	"github.com/rgonek/extended-markdown/shield"
)

// spanKind describes one open/close sentinel pair restored by the shared
// outside/collecting scanner: highlights and inline math.
type spanKind struct {
	name    string
	open    rune
	close   rune
	literal string
	seal    func(children []document.InlineNode) document.InlineNode
}

var highlightSpan = &spanKind{
	name:    "highlight",
	open:    shield.HighlightOpen,
	close:   shield.HighlightClose,
	literal: "==",
	seal: func(children []document.InlineNode) document.InlineNode {
		return &document.Highlight{Children: children}
	},
}

var mathSpan = &spanKind{
	name:    "math",
	open:    shield.MathOpen,
	close:   shield.MathClose,
	literal: "$",
	seal: func(children []document.InlineNode) document.InlineNode {
		return &document.Math{Expression: flattenInlineText(children)}
	},
}

// restoreImageDividers turns the shielded | of image alt text back into its
// literal character, in every text run of the tree.
func (s *state) restoreImageDividers(blocks []document.BlockNode) []document.BlockNode {
	return document.MapInlines(blocks, s.restoreDividerSequence)
}

func (s *state) restoreDividerSequence(inlines []document.InlineNode) []document.InlineNode {
	out := make([]document.InlineNode, 0, len(inlines))
	for _, n := range inlines {
		if text, ok := n.(*document.Text); ok {
			if strings.ContainsRune(text.Text, shield.ImageDivider) {
				n = &document.Text{Text: strings.ReplaceAll(text.Text, string(shield.ImageDivider), "|")}
			}
			out = append(out, n)
			continue
		}
		out = append(out, document.MapChildSequences(n, s.restoreDividerSequence))
	}
	return out
}

// restoreHighlights reassembles ==highlighted== spans. The engine may have
// split one logical span over several siblings when other formatting ran
// through it; the scanner collects whole nodes between the two sentinels.
func (s *state) restoreHighlights(blocks []document.BlockNode) []document.BlockNode {
	return document.MapInlines(blocks, func(inlines []document.InlineNode) []document.InlineNode {
		return s.restoreSpanSequence(inlines, highlightSpan)
	})
}

// restoreMath reassembles $expr$ spans into math leaves. Formatting the
// engine applied between the sentinels is flattened back to its markdown
// spelling, since math content is never parsed.
func (s *state) restoreMath(blocks []document.BlockNode) []document.BlockNode {
	return document.MapInlines(blocks, func(inlines []document.InlineNode) []document.InlineNode {
		return s.restoreSpanSequence(inlines, mathSpan)
	})
}

// restoreSpanSequence is the outside/collecting state machine over one
// inline sequence. Outside, text runs are scanned for the open sentinel;
// collecting, every node is accumulated until the close sentinel seals the
// accumulator into one extension node. Scanning resumes inside the text run
// that carried the close, so several spans per line stay separate. Sentinels
// that cannot pair degrade to their literal delimiter text.
func (s *state) restoreSpanSequence(inlines []document.InlineNode, kind *spanKind) []document.InlineNode {
	out := make([]document.InlineNode, 0, len(inlines))
	var buffer []document.InlineNode
	collecting := false

	emitText := func(value string) {
		if collecting {
			buffer = appendText(buffer, value)
			return
		}
		out = appendText(out, value)
	}

	cutset := string(kind.open) + string(kind.close)
	for _, n := range inlines {
		text, ok := n.(*document.Text)
		if !ok {
			restored := document.MapChildSequences(n, func(children []document.InlineNode) []document.InlineNode {
				return s.restoreSpanSequence(children, kind)
			})
			if collecting {
				buffer = append(buffer, restored)
			} else {
				out = append(out, restored)
			}
			continue
		}

		value := text.Text
		for {
			idx := strings.IndexAny(value, cutset)
			if idx < 0 {
				emitText(value)
				break
			}
			r, size := utf8.DecodeRuneInString(value[idx:])
			emitText(value[:idx])
			value = value[idx+size:]

			switch {
			case r == kind.open && !collecting:
				collecting = true
			case r == kind.close && collecting:
				out = append(out, kind.seal(buffer))
				buffer = nil
				collecting = false
			default:
				// A close with no open, or a second open while collecting.
				s.addWarning(WarningStraySentinel, kind.name, fmt.Sprintf("unmatched %s delimiter kept as literal %q", kind.name, kind.literal))
				emitText(kind.literal)
			}
		}
	}

	if collecting {
		s.addWarning(WarningUnterminatedSpan, kind.name, fmt.Sprintf("unterminated %s span kept as literal %q", kind.name, kind.literal))
		out = appendText(out, kind.literal)
		for _, n := range buffer {
			out = appendInline(out, n)
		}
	}
	return out
}

// appendInline appends next to content, merging adjacent text runs the way
// the engine would have emitted them unsplit.
func appendInline(content []document.InlineNode, next document.InlineNode) []document.InlineNode {
	if text, ok := next.(*document.Text); ok {
		return appendText(content, text.Text)
	}
	return append(content, next)
}

// appendText appends a text run to content, merging into a trailing text
// node. Empty runs vanish.
func appendText(content []document.InlineNode, value string) []document.InlineNode {
	if value == "" {
		return content
	}
	if len(content) > 0 {
		if last, ok := content[len(content)-1].(*document.Text); ok {
			content[len(content)-1] = &document.Text{Text: last.Text + value}
			return content
		}
	}
	return append(content, &document.Text{Text: value})
}

// flattenInlineText re-spells inline nodes as markdown source text. Math
// expressions are leaves; whatever structure the engine built between the
// math sentinels collapses back into the characters the author typed.
func flattenInlineText(inlines []document.InlineNode) string {
	var sb strings.Builder
	for _, n := range inlines {
		flattenInline(&sb, n)
	}
	return sb.String()
}

func flattenInline(sb *strings.Builder, n document.InlineNode) {
	switch typed := n.(type) {
	case *document.Text:
		sb.WriteString(typed.Text)
	case *document.SoftBreak, *document.LineBreak:
		sb.WriteString(" ")
	case *document.Code:
		sb.WriteString("`")
		sb.WriteString(typed.Text)
		sb.WriteString("`")
	case *document.HTML:
		sb.WriteString(typed.Text)
	case *document.Math:
		sb.WriteString("$")
		sb.WriteString(typed.Expression)
		sb.WriteString("$")
	case *document.Emphasis:
		flattenWrapped(sb, "*", typed.Children, "*")
	case *document.Strong:
		flattenWrapped(sb, "**", typed.Children, "**")
	case *document.Strikethrough:
		flattenWrapped(sb, "~~", typed.Children, "~~")
	case *document.Highlight:
		flattenWrapped(sb, "==", typed.Children, "==")
	case *document.CriticAddition:
		flattenWrapped(sb, "{++", typed.Children, "++}")
	case *document.CriticDeletion:
		flattenWrapped(sb, "{--", typed.Children, "--}")
	case *document.CriticSubstitution:
		flattenWrapped(sb, "{~~", typed.Old, "~>")
		flattenWrapped(sb, "", typed.New, "~~}")
	case *document.CriticComment:
		flattenWrapped(sb, "{>>", typed.Children, "<<}")
	case *document.CriticHighlight:
		flattenWrapped(sb, "{==", typed.Children, "==}")
	case *document.Link:
		flattenWrapped(sb, "[", typed.Children, "]("+typed.Destination+")")
	case *document.Image:
		flattenWrapped(sb, "![", typed.Children, "]("+typed.Source+")")
	}
}

func flattenWrapped(sb *strings.Builder, opening string, children []document.InlineNode, closing string) {
	sb.WriteString(opening)
	for _, child := range children {
		flattenInline(sb, child)
	}
	sb.WriteString(closing)
}
