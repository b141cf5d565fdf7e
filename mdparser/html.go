package mdparser

import (
	"strings"

	"github.com/rgonek/extended-markdown/document"
	"github.com/rgonek/extended-markdown/shield"
	"github.com/yuin/goldmark/ast"
	xhtml "golang.org/x/net/html"
)

type tagKey struct {
	name    string
	closing bool
}

// Raw tags with extension equivalents fold into the same sentinels the
// protector emits, so the restoration passes assemble them exactly like
// their markdown spellings. The mapping mirrors how editorial markup is
// conventionally rendered to HTML.
var htmlTagSentinels = map[tagKey]rune{
	{"mark", false}: shield.HighlightOpen,
	{"mark", true}:  shield.HighlightClose,
	{"ins", false}:  shield.AdditionOpen,
	{"ins", true}:   shield.AdditionClose,
	{"del", false}:  shield.DeletionOpen,
	{"del", true}:   shield.DeletionClose,
}

func (s *state) convertRawHTML(node *ast.RawHTML) []document.InlineNode {
	raw := s.rawHTMLText(node)

	name, closing, ok := classifyTag(raw)
	if !ok {
		return []document.InlineNode{&document.HTML{Text: raw}}
	}

	if name == "br" && !closing {
		return []document.InlineNode{&document.LineBreak{}}
	}

	if s.config.HTMLTagDetection == HTMLTagDetectInline {
		if sentinel, mapped := htmlTagSentinels[tagKey{name, closing}]; mapped {
			return []document.InlineNode{&document.Text{Text: string(sentinel)}}
		}
	}

	return []document.InlineNode{&document.HTML{Text: raw}}
}

func (s *state) rawHTMLText(node *ast.RawHTML) string {
	var sb strings.Builder
	for i := 0; i < node.Segments.Len(); i++ {
		seg := node.Segments.At(i)
		sb.Write(seg.Value(s.source))
	}
	return sb.String()
}

// classifyTag reports the tag name of raw when it is one open, close, or
// self-closing HTML tag. Comments, processing instructions, and anything
// the tokenizer rejects return ok false.
func classifyTag(raw string) (name string, closing bool, ok bool) {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	switch tokenizer.Next() {
	case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
		token := tokenizer.Token()
		return token.Data, false, true
	case xhtml.EndTagToken:
		token := tokenizer.Token()
		return token.Data, true, true
	default:
		return "", false, false
	}
}
