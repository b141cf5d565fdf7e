package mdparser

import (
	"strings"

	"github.com/rgonek/extended-markdown/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertList(node *ast.List) document.BlockNode {
	if s.isTaskList(node) {
		return s.convertTaskList(node)
	}

	items := make([]document.ListItem, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		items = append(items, document.ListItem{Blocks: s.convertBlocks(child)})
	}

	if node.IsOrdered() {
		return &document.NumberedList{Tight: node.IsTight, Start: node.Start, Items: items}
	}
	return &document.BulletedList{Tight: node.IsTight, Items: items}
}

// isTaskList reports whether every item of an unordered list opens with a
// GFM task checkbox. Mixed lists stay bulleted; their stray checkboxes are
// re-emitted as literal text.
func (s *state) isTaskList(node *ast.List) bool {
	if node.IsOrdered() || !node.HasChildren() {
		return false
	}
	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		first := item.FirstChild()
		if first == nil {
			return false
		}
		if _, ok := first.FirstChild().(*extast.TaskCheckBox); !ok {
			return false
		}
	}
	return true
}

func (s *state) convertTaskList(node *ast.List) document.BlockNode {
	items := make([]document.TaskItem, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		items = append(items, s.convertTaskItem(child))
	}
	return &document.TaskList{Tight: node.IsTight, Items: items}
}

func (s *state) convertTaskItem(item ast.Node) document.TaskItem {
	first := item.FirstChild()
	checkbox, _ := first.FirstChild().(*extast.TaskCheckBox)

	inlines := make([]document.InlineNode, 0, first.ChildCount())
	for child := first.FirstChild(); child != nil; child = child.NextSibling() {
		if _, isBox := child.(*extast.TaskCheckBox); isBox {
			continue
		}
		for _, n := range s.convertInlineNode(child) {
			inlines = appendInline(inlines, n)
		}
	}
	inlines = trimLeadingSpace(inlines)

	blocks := make([]document.BlockNode, 0, item.ChildCount())
	if len(inlines) > 0 {
		blocks = append(blocks, &document.Paragraph{Inlines: inlines})
	}
	for child := first.NextSibling(); child != nil; child = child.NextSibling() {
		if block := s.convertBlockNode(child); block != nil {
			blocks = append(blocks, block)
		}
	}

	return document.TaskItem{Checked: checkbox != nil && checkbox.IsChecked, Blocks: blocks}
}

// trimLeadingSpace drops the space the checkbox leaves behind at the start
// of the first text run.
func trimLeadingSpace(inlines []document.InlineNode) []document.InlineNode {
	if len(inlines) == 0 {
		return inlines
	}
	text, ok := inlines[0].(*document.Text)
	if !ok {
		return inlines
	}
	trimmed := strings.TrimLeft(text.Text, " \t")
	if trimmed == "" {
		return inlines[1:]
	}
	return append([]document.InlineNode{&document.Text{Text: trimmed}}, inlines[1:]...)
}
