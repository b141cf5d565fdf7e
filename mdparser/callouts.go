package mdparser

import (
	"regexp"
	"strings"

	"github.com/rgonek/extended-markdown/document"
)

// calloutMarkerPattern matches the [!type] marker opening a callout
// blockquote. The optional group, separated by whitespace, is the same-line
// title.
var calloutMarkerPattern = regexp.MustCompile(`^\[!([A-Za-z0-9_-]+)\](?:\s+(.*))?`)

// rewriteCallouts walks every block container and rewrites blockquotes that
// open with a callout marker or a known bold label. Table cells hold only
// inline content, so they are not visited.
func (s *state) rewriteCallouts(blocks []document.BlockNode) []document.BlockNode {
	out := make([]document.BlockNode, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, s.rewriteCalloutBlock(block))
	}
	return out
}

func (s *state) rewriteCalloutBlock(block document.BlockNode) document.BlockNode {
	switch typed := block.(type) {
	case *document.Blockquote:
		if callout, ok := s.detectCallout(typed); ok {
			return callout
		}
		return &document.Blockquote{Children: s.rewriteCallouts(typed.Children)}
	case *document.Callout:
		return &document.Callout{Type: typed.Type, Title: typed.Title, Children: s.rewriteCallouts(typed.Children)}
	case *document.BulletedList:
		return &document.BulletedList{Tight: typed.Tight, Items: s.rewriteCalloutItems(typed.Items)}
	case *document.NumberedList:
		return &document.NumberedList{Tight: typed.Tight, Start: typed.Start, Items: s.rewriteCalloutItems(typed.Items)}
	case *document.TaskList:
		items := make([]document.TaskItem, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, document.TaskItem{Checked: item.Checked, Blocks: s.rewriteCallouts(item.Blocks)})
		}
		return &document.TaskList{Tight: typed.Tight, Items: items}
	default:
		return block
	}
}

func (s *state) rewriteCalloutItems(items []document.ListItem) []document.ListItem {
	out := make([]document.ListItem, 0, len(items))
	for _, item := range items {
		out = append(out, document.ListItem{Blocks: s.rewriteCallouts(item.Blocks)})
	}
	return out
}

// detectCallout tries marker-style detection before label-style; the marker
// spelling is the canonical one and wins when both would match.
func (s *state) detectCallout(quote *document.Blockquote) (*document.Callout, bool) {
	detection := s.config.CalloutDetection
	if detection == CalloutDetectNone {
		return nil, false
	}

	if detection == CalloutDetectMarker || detection == CalloutDetectAll {
		if callout, ok := s.detectMarkerCallout(quote); ok {
			return callout, true
		}
	}
	if detection == CalloutDetectLabel || detection == CalloutDetectAll {
		if callout, ok := s.detectLabelCallout(quote); ok {
			return callout, true
		}
	}
	return nil, false
}

// detectMarkerCallout matches `[!type] title` at the very start of the
// first paragraph's first text run. The identifier is lower-cased into the
// callout type; the rest of that line, if present, becomes the title. Text
// after the marker with no separating whitespace survives as content.
func (s *state) detectMarkerCallout(quote *document.Blockquote) (*document.Callout, bool) {
	para, first, ok := leadingText(quote)
	if !ok {
		return nil, false
	}

	match := calloutMarkerPattern.FindStringSubmatchIndex(first.Text)
	if match == nil {
		return nil, false
	}

	calloutType := strings.ToLower(first.Text[match[2]:match[3]])
	title := ""
	if match[4] >= 0 {
		title = strings.TrimSpace(first.Text[match[4]:match[5]])
	}

	inlines := para.Inlines[1:]
	if rest := first.Text[match[1]:]; rest != "" {
		inlines = append([]document.InlineNode{&document.Text{Text: rest}}, inlines...)
	}

	return &document.Callout{
		Type:     calloutType,
		Title:    title,
		Children: s.rewriteCallouts(strippedChildren(quote, inlines)),
	}, true
}

// detectLabelCallout matches a leading strong whose sole text child is,
// trimmed and lower-cased, a known callout type name. Label style never
// yields a title.
func (s *state) detectLabelCallout(quote *document.Blockquote) (*document.Callout, bool) {
	para, _, _ := leadingParagraph(quote)
	if para == nil || len(para.Inlines) == 0 {
		return nil, false
	}
	strong, ok := para.Inlines[0].(*document.Strong)
	if !ok || len(strong.Children) != 1 {
		return nil, false
	}
	label, ok := strong.Children[0].(*document.Text)
	if !ok {
		return nil, false
	}

	name := strings.ToLower(strings.TrimSpace(label.Text))
	if _, known := document.LookupCallout(name); !known {
		return nil, false
	}

	return &document.Callout{
		Type:     name,
		Children: s.rewriteCallouts(strippedChildren(quote, para.Inlines[1:])),
	}, true
}

func leadingParagraph(quote *document.Blockquote) (*document.Paragraph, document.InlineNode, bool) {
	if len(quote.Children) == 0 {
		return nil, nil, false
	}
	para, ok := quote.Children[0].(*document.Paragraph)
	if !ok || len(para.Inlines) == 0 {
		return nil, nil, false
	}
	return para, para.Inlines[0], true
}

func leadingText(quote *document.Blockquote) (*document.Paragraph, *document.Text, bool) {
	para, first, ok := leadingParagraph(quote)
	if !ok {
		return nil, nil, false
	}
	text, ok := first.(*document.Text)
	if !ok {
		return nil, nil, false
	}
	return para, text, true
}

// strippedChildren rebuilds the quote's children with the marker already cut
// out of the first paragraph. Leading breaks and whitespace-only fragments
// left behind are dropped; an emptied paragraph disappears entirely.
func strippedChildren(quote *document.Blockquote, remaining []document.InlineNode) []document.BlockNode {
	children := make([]document.BlockNode, 0, len(quote.Children))
	if para := rebuildParagraph(remaining); para != nil {
		children = append(children, para)
	}
	return append(children, quote.Children[1:]...)
}

func rebuildParagraph(inlines []document.InlineNode) *document.Paragraph {
	start := 0
	for start < len(inlines) && isLeadingSpace(inlines[start]) {
		start++
	}
	if start == len(inlines) {
		return nil
	}
	return &document.Paragraph{Inlines: trimLeadingSpace(inlines[start:])}
}

func isLeadingSpace(n document.InlineNode) bool {
	switch typed := n.(type) {
	case *document.SoftBreak, *document.LineBreak:
		return true
	case *document.Text:
		return strings.TrimSpace(typed.Text) == ""
	default:
		return false
	}
}
