package mdparser

import (
	"strings"

	"github.com/rgonek/extended-markdown/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertBlocks converts the block children of a goldmark node. Sentinels
// stay embedded in the produced text; finalize restores them afterwards.
func (s *state) convertBlocks(parent ast.Node) []document.BlockNode {
	blocks := make([]document.BlockNode, 0, parent.ChildCount())
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if block := s.convertBlockNode(child); block != nil {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func (s *state) convertBlockNode(node ast.Node) document.BlockNode {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return &document.Paragraph{Inlines: s.convertInlines(typed)}
	case *ast.TextBlock:
		return &document.Paragraph{Inlines: s.convertInlines(typed)}
	case *ast.Heading:
		return &document.Heading{Level: clampHeadingLevel(typed.Level), Inlines: s.convertInlines(typed)}
	case *ast.Blockquote:
		return &document.Blockquote{Children: s.convertBlocks(typed)}
	case *ast.FencedCodeBlock:
		return &document.CodeBlock{Info: s.fenceInfo(typed), Text: s.blockLines(typed)}
	case *ast.CodeBlock:
		return &document.CodeBlock{Text: s.blockLines(typed)}
	case *ast.HTMLBlock:
		return &document.HTMLBlock{Text: s.htmlBlockText(typed)}
	case *ast.List:
		return s.convertList(typed)
	case *ast.ThematicBreak:
		return &document.ThematicBreak{}
	case *extast.Table:
		return s.convertTable(typed)
	default:
		s.addWarning(WarningUnknownNode, node.Kind().String(), "unsupported block node, converted to plain paragraph")
		return s.fallbackParagraph(node)
	}
}

func (s *state) fallbackParagraph(node ast.Node) document.BlockNode {
	content := s.nodePlainText(node)
	if content == "" {
		return nil
	}
	return &document.Paragraph{Inlines: []document.InlineNode{&document.Text{Text: content}}}
}

// nodePlainText flattens every text leaf under node, dropping formatting.
func (s *state) nodePlainText(node ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := n.(type) {
		case *ast.Text:
			sb.Write(typed.Segment.Value(s.source))
		case *ast.String:
			sb.Write(typed.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func (s *state) fenceInfo(node *ast.FencedCodeBlock) string {
	if node.Info == nil {
		return ""
	}
	return string(node.Info.Segment.Value(s.source))
}

// blockLines concatenates the source lines a leaf block spans.
func (s *state) blockLines(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(s.source))
	}
	return sb.String()
}

func (s *state) htmlBlockText(node *ast.HTMLBlock) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(s.source))
	}
	if node.HasClosure() {
		sb.Write(node.ClosureLine.Value(s.source))
	}
	return sb.String()
}

func clampHeadingLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
