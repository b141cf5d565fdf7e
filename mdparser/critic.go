package mdparser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rgonek/extended-markdown/document"
	"github.com/rgonek/extended-markdown/shield"
)

// criticKind describes one editorial markup family. The five kinds carry
// distinct sentinel pairs, so a text run is always scanned for the nearest
// open of any kind and only then for that kind's close. Substitution has the
// extra separator between its old and new halves.
type criticKind struct {
	name      string
	open      rune
	close     rune
	separator rune
	openText  string
	build     func(children []document.InlineNode) document.InlineNode
}

var criticKinds = []*criticKind{
	{
		name:     "criticAddition",
		open:     shield.AdditionOpen,
		close:    shield.AdditionClose,
		openText: "{++",
		build: func(children []document.InlineNode) document.InlineNode {
			return &document.CriticAddition{Children: children}
		},
	},
	{
		name:     "criticDeletion",
		open:     shield.DeletionOpen,
		close:    shield.DeletionClose,
		openText: "{--",
		build: func(children []document.InlineNode) document.InlineNode {
			return &document.CriticDeletion{Children: children}
		},
	},
	{
		name:      "criticSubstitution",
		open:      shield.SubstitutionOpen,
		close:     shield.SubstitutionClose,
		separator: shield.SubstitutionSeparator,
		openText:  "{~~",
	},
	{
		name:     "criticComment",
		open:     shield.CommentOpen,
		close:    shield.CommentClose,
		openText: "{>>",
		build: func(children []document.InlineNode) document.InlineNode {
			return &document.CriticComment{Children: children}
		},
	},
	{
		name:     "criticHighlight",
		open:     shield.CriticHighlightOpen,
		close:    shield.CriticHighlightClose,
		openText: "{==",
		build: func(children []document.InlineNode) document.InlineNode {
			return &document.CriticHighlight{Children: children}
		},
	},
}

var (
	criticOpenKinds   = map[rune]*criticKind{}
	criticStrayKinds  = map[rune]*criticKind{}
	criticSentinelSet = func() string {
		var sb strings.Builder
		for _, kind := range criticKinds {
			sb.WriteRune(kind.open)
			sb.WriteRune(kind.close)
			criticOpenKinds[kind.open] = kind
			criticStrayKinds[kind.close] = kind
			if kind.separator != 0 {
				sb.WriteRune(kind.separator)
				criticStrayKinds[kind.separator] = kind
			}
		}
		return sb.String()
	}()
)

// restoreCritic reassembles the five editorial markup kinds. Nested kinds
// are handled by restoring the assembled children recursively rather than by
// scanner state: the distinct sentinel pairs cannot textually overlap.
func (s *state) restoreCritic(blocks []document.BlockNode) []document.BlockNode {
	return document.MapInlines(blocks, s.restoreCriticSequence)
}

func (s *state) restoreCriticSequence(inlines []document.InlineNode) []document.InlineNode {
	out := make([]document.InlineNode, 0, len(inlines))
	pending := append([]document.InlineNode(nil), inlines...)

	for len(pending) > 0 {
		n := pending[0]
		pending = pending[1:]

		text, ok := n.(*document.Text)
		if !ok {
			out = append(out, document.MapChildSequences(n, s.restoreCriticSequence))
			continue
		}

		idx := strings.IndexAny(text.Text, criticSentinelSet)
		if idx < 0 {
			out = appendText(out, text.Text)
			continue
		}

		r, size := utf8.DecodeRuneInString(text.Text[idx:])
		out = appendText(out, text.Text[:idx])
		rest := text.Text[idx+size:]

		kind, isOpen := criticOpenKinds[r]
		if !isOpen {
			literal, _ := shield.Literal(r)
			s.addWarning(WarningStraySentinel, criticStrayKinds[r].name, fmt.Sprintf("unmatched delimiter kept as literal %q", literal))
			out = appendText(out, literal)
			pending = prependText(pending, rest)
			continue
		}

		node, tail, remaining, found := s.collectCriticSpan(kind, rest, pending)
		if !found {
			s.addWarning(WarningUnterminatedSpan, kind.name, fmt.Sprintf("unterminated %s span kept as literal %q", kind.name, kind.openText))
			out = appendText(out, kind.openText)
			pending = prependText(pending, rest)
			continue
		}
		out = appendInline(out, node)
		pending = prependText(remaining, tail)
	}
	return out
}

// collectCriticSpan assembles the span opened by kind out of head and the
// following nodes. It returns the built node, the remainder of the text run
// that carried the close sentinel, and the nodes still unconsumed. Children
// are restored recursively, which resolves markup of other kinds nested
// inside this span. found is false when the close (or, for substitution, the
// separator) never arrives, in which case nothing is consumed.
func (s *state) collectCriticSpan(kind *criticKind, head string, pending []document.InlineNode) (node document.InlineNode, tail string, remaining []document.InlineNode, found bool) {
	if kind.separator != 0 {
		oldSpan, sepTail, sepPending, ok := scanToSentinel(kind.separator, head, pending)
		if !ok {
			return nil, "", nil, false
		}
		newSpan, tail, remaining, ok := scanToSentinel(kind.close, sepTail, sepPending)
		if !ok {
			return nil, "", nil, false
		}
		substitution := &document.CriticSubstitution{
			Old: s.restoreCriticSequence(oldSpan),
			New: s.restoreCriticSequence(newSpan),
		}
		return substitution, tail, remaining, true
	}

	span, tail, remaining, ok := scanToSentinel(kind.close, head, pending)
	if !ok {
		return nil, "", nil, false
	}
	return kind.build(s.restoreCriticSequence(span)), tail, remaining, true
}

// scanToSentinel collects inline content from head and pending until
// sentinel occurs in a text run. It returns the collected span, the rest of
// the run after the sentinel, and the nodes following the hit.
func scanToSentinel(sentinel rune, head string, pending []document.InlineNode) (span []document.InlineNode, tail string, remaining []document.InlineNode, found bool) {
	needle := string(sentinel)
	if idx := strings.Index(head, needle); idx >= 0 {
		span = appendText(span, head[:idx])
		return span, head[idx+len(needle):], pending, true
	}
	span = appendText(span, head)

	for i, n := range pending {
		text, ok := n.(*document.Text)
		if !ok {
			span = append(span, n)
			continue
		}
		if idx := strings.Index(text.Text, needle); idx >= 0 {
			span = appendText(span, text.Text[:idx])
			return span, text.Text[idx+len(needle):], pending[i+1:], true
		}
		span = appendText(span, text.Text)
	}
	return nil, "", nil, false
}

func prependText(nodes []document.InlineNode, value string) []document.InlineNode {
	if value == "" {
		return nodes
	}
	return append([]document.InlineNode{&document.Text{Text: value}}, nodes...)
}
