// Package mdwriter renders document trees back to extended markdown text.
//
// Every variant of the tree has one canonical spelling: callouts come out in
// marker style, editorial markup in its bracket syntax, highlights as
// ==text== and math as $expr$. Trees produced by mdparser round-trip:
// parsing the written text yields an equal tree.
package mdwriter

import (
	"fmt"
	"strings"

	"github.com/rgonek/extended-markdown/document"
	"gopkg.in/yaml.v3"
)

// Writer serializes document trees to extended markdown.
type Writer struct{}

// New creates a new Writer.
func New() *Writer {
	return &Writer{}
}

// Write renders blocks as extended markdown. It fails only on a node type
// outside the document variants, which cannot happen for trees built by
// mdparser.
func (w *Writer) Write(blocks []document.BlockNode) (string, error) {
	content, err := w.writeBlocks(blocks)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", nil
	}
	return strings.TrimRight(content, "\n") + "\n", nil
}

// WriteDocument renders a parsed document, re-emitting YAML front matter
// when the document carries any.
func (w *Writer) WriteDocument(doc *document.Document) (string, error) {
	body, err := w.Write(doc.Blocks)
	if err != nil {
		return "", err
	}
	if len(doc.Meta) == 0 {
		return body, nil
	}

	meta, err := yaml.Marshal(doc.Meta)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}
	return "---\n" + string(meta) + "---\n\n" + body, nil
}

// writeBlocks concatenates the rendered blocks; every block ends with a
// blank line, which the outermost caller trims.
func (w *Writer) writeBlocks(blocks []document.BlockNode) (string, error) {
	var sb strings.Builder
	for _, block := range blocks {
		content, err := w.writeBlock(block)
		if err != nil {
			return "", err
		}
		sb.WriteString(content)
	}
	return sb.String(), nil
}

func (w *Writer) writeBlock(block document.BlockNode) (string, error) {
	switch typed := block.(type) {
	case *document.Paragraph:
		return w.writeParagraph(typed)
	case *document.Heading:
		return w.writeHeading(typed)
	case *document.Blockquote:
		return w.writeBlockquote(typed)
	case *document.Callout:
		return w.writeCallout(typed)
	case *document.BulletedList:
		return w.writeBulletedList(typed)
	case *document.NumberedList:
		return w.writeNumberedList(typed)
	case *document.TaskList:
		return w.writeTaskList(typed)
	case *document.CodeBlock:
		return w.writeCodeBlock(typed)
	case *document.HTMLBlock:
		return w.writeHTMLBlock(typed)
	case *document.Table:
		return w.writeTable(typed)
	case *document.ThematicBreak:
		return "---\n\n", nil
	default:
		return "", fmt.Errorf("unknown block node %T", block)
	}
}
