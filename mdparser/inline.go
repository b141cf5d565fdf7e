package mdparser

import (
	"strings"

	"github.com/rgonek/extended-markdown/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertInlines converts the inline children of a block node. The engine
// splits text runs at every delimiter candidate, including ones that match
// nothing; adjacent runs merge back here so downstream passes always see
// whole runs.
func (s *state) convertInlines(parent ast.Node) []document.InlineNode {
	inlines := make([]document.InlineNode, 0, parent.ChildCount())
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		for _, n := range s.convertInlineNode(child) {
			inlines = appendInline(inlines, n)
		}
	}
	return inlines
}

func (s *state) convertInlineNode(node ast.Node) []document.InlineNode {
	switch typed := node.(type) {
	case *ast.Text:
		return s.convertTextNode(typed)
	case *ast.String:
		return []document.InlineNode{&document.Text{Text: string(typed.Value)}}
	case *ast.CodeSpan:
		return []document.InlineNode{&document.Code{Text: s.codeSpanText(typed)}}
	case *ast.Emphasis:
		children := s.convertInlines(typed)
		if typed.Level >= 2 {
			return []document.InlineNode{&document.Strong{Children: children}}
		}
		return []document.InlineNode{&document.Emphasis{Children: children}}
	case *extast.Strikethrough:
		return []document.InlineNode{&document.Strikethrough{Children: s.convertInlines(typed)}}
	case *ast.Link:
		return []document.InlineNode{&document.Link{
			Destination: string(typed.Destination),
			Title:       string(typed.Title),
			Children:    s.convertInlines(typed),
		}}
	case *ast.Image:
		return []document.InlineNode{&document.Image{
			Source:   string(typed.Destination),
			Title:    string(typed.Title),
			Children: s.convertInlines(typed),
		}}
	case *ast.AutoLink:
		return s.convertAutoLink(typed)
	case *ast.RawHTML:
		return s.convertRawHTML(typed)
	case *extast.TaskCheckBox:
		// Only reachable outside a recognized task list; re-emit the source
		// spelling.
		if typed.IsChecked {
			return []document.InlineNode{&document.Text{Text: "[x] "}}
		}
		return []document.InlineNode{&document.Text{Text: "[ ] "}}
	default:
		if node.HasChildren() {
			return s.convertInlines(node)
		}
		s.addWarning(WarningUnknownNode, node.Kind().String(), "unsupported inline node, converted to plain text")
		content := s.nodePlainText(node)
		if content == "" {
			return nil
		}
		return []document.InlineNode{&document.Text{Text: content}}
	}
}

func (s *state) convertTextNode(node *ast.Text) []document.InlineNode {
	out := make([]document.InlineNode, 0, 2)
	if value := string(node.Segment.Value(s.source)); value != "" {
		out = append(out, &document.Text{Text: value})
	}
	switch {
	case node.HardLineBreak():
		out = append(out, &document.LineBreak{})
	case node.SoftLineBreak():
		out = append(out, &document.SoftBreak{})
	}
	return out
}

func (s *state) convertAutoLink(node *ast.AutoLink) []document.InlineNode {
	destination := string(node.URL(s.source))
	label := string(node.Label(s.source))
	if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(destination, "mailto:") {
		destination = "mailto:" + destination
	}
	return []document.InlineNode{&document.Link{
		Destination: destination,
		Children:    []document.InlineNode{&document.Text{Text: label}},
	}}
}

func (s *state) codeSpanText(node *ast.CodeSpan) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			sb.Write(typed.Segment.Value(s.source))
		case *ast.String:
			sb.Write(typed.Value)
		}
	}
	return sb.String()
}
