package mdwriter

import (
	"fmt"
	"strings"

	"github.com/rgonek/extended-markdown/document"
)

func (w *Writer) writeParagraph(node *document.Paragraph) (string, error) {
	content, err := w.writeInlines(node.Inlines)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", nil
	}
	return content + "\n\n", nil
}

func (w *Writer) writeHeading(node *document.Heading) (string, error) {
	content, err := w.writeInlines(node.Inlines)
	if err != nil {
		return "", err
	}
	// Headings are a single line and cannot end with a hard break. Setext
	// sources may have spanned lines; those collapse to spaces.
	content = strings.ReplaceAll(content, "\\\n", " ")
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.TrimSuffix(content, "\\")
	if content == "" {
		return "", nil
	}

	level := node.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + content + "\n\n", nil
}

func (w *Writer) writeBlockquote(node *document.Blockquote) (string, error) {
	content, err := w.writeBlocks(node.Children)
	if err != nil {
		return "", err
	}
	quoted := quoteLines(content)
	if quoted == "" {
		return "", nil
	}
	return quoted + "\n\n", nil
}

// writeCallout renders a callout in marker style: `> [!type] Title` on the
// first line, the body quoted below it.
func (w *Writer) writeCallout(node *document.Callout) (string, error) {
	content, err := w.writeBlocks(node.Children)
	if err != nil {
		return "", err
	}

	marker := fmt.Sprintf("[!%s]", node.Type)
	if node.Title != "" {
		marker += " " + node.Title
	}

	quoted := quoteLines(content)
	if quoted == "" {
		return "> " + marker + "\n\n", nil
	}
	return "> " + marker + "\n" + quoted + "\n\n", nil
}

func (w *Writer) writeBulletedList(node *document.BulletedList) (string, error) {
	items := make([]string, 0, len(node.Items))
	for _, item := range node.Items {
		content, err := w.writeBlocks(item.Blocks)
		if err != nil {
			return "", err
		}
		items = append(items, indent(content, "- "))
	}
	return joinListItems(items, node.Tight), nil
}

func (w *Writer) writeNumberedList(node *document.NumberedList) (string, error) {
	items := make([]string, 0, len(node.Items))
	number := node.Start
	for _, item := range node.Items {
		content, err := w.writeBlocks(item.Blocks)
		if err != nil {
			return "", err
		}
		items = append(items, indent(content, fmt.Sprintf("%d. ", number)))
		number++
	}
	return joinListItems(items, node.Tight), nil
}

func (w *Writer) writeTaskList(node *document.TaskList) (string, error) {
	items := make([]string, 0, len(node.Items))
	for _, item := range node.Items {
		content, err := w.writeBlocks(item.Blocks)
		if err != nil {
			return "", err
		}
		marker := "- [ ] "
		if item.Checked {
			marker = "- [x] "
		}
		items = append(items, indent(content, marker))
	}
	return joinListItems(items, node.Tight), nil
}

func (w *Writer) writeCodeBlock(node *document.CodeBlock) (string, error) {
	fence := codeFence(node.Text)

	var sb strings.Builder
	sb.WriteString(fence)
	sb.WriteString(node.Info)
	sb.WriteString("\n")
	if body := strings.TrimRight(node.Text, "\n"); body != "" {
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	sb.WriteString(fence)
	sb.WriteString("\n\n")
	return sb.String(), nil
}

func (w *Writer) writeHTMLBlock(node *document.HTMLBlock) (string, error) {
	content := strings.TrimRight(node.Text, "\n")
	if content == "" {
		return "", nil
	}
	return content + "\n\n", nil
}

// quoteLines prefixes every line of content with the blockquote marker.
// Lines already quoted gain another level, nesting the quote.
func quoteLines(content string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	quoted := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case line == "":
			quoted = append(quoted, "> ")
		case strings.HasPrefix(line, ">"):
			quoted = append(quoted, ">"+line)
		default:
			quoted = append(quoted, "> "+line)
		}
	}
	return strings.Join(quoted, "\n")
}

// indent prefixes the first line of content with marker and continuation
// lines with matching spaces, keeping nested blocks inside the list item.
func indent(content, marker string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return strings.TrimRight(marker, " ")
	}

	lines := strings.Split(content, "\n")
	pad := strings.Repeat(" ", len(marker))

	indented := make([]string, 0, len(lines))
	for i, line := range lines {
		switch {
		case i == 0:
			indented = append(indented, marker+line)
		case line == "":
			indented = append(indented, "")
		default:
			indented = append(indented, pad+line)
		}
	}
	return strings.Join(indented, "\n")
}

func joinListItems(items []string, tight bool) string {
	separator := "\n"
	if !tight {
		separator = "\n\n"
	}
	return strings.Join(items, separator) + "\n\n"
}

// codeFence returns a backtick fence one longer than the longest backtick
// run in body, with the usual minimum of three.
func codeFence(body string) string {
	longest, run := 0, 0
	for _, r := range body {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		longest = 2
	}
	return strings.Repeat("`", longest+1)
}
