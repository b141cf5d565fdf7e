package mdwriter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rgonek/extended-markdown/document"
)

// Links whose label is their own destination came from an autolink or a bare
// URL; the bracket spelling would hand the label back to the URL recognizer
// on reparse. They keep their short spellings instead.
var (
	uriAutolinkPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]{1,31}:[^\x00-\x20<>]*$`)
	emailAutolinkPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_\x60{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

func (w *Writer) writeInlines(inlines []document.InlineNode) (string, error) {
	var sb strings.Builder
	for _, n := range inlines {
		content, err := w.writeInline(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(content)
	}
	return sb.String(), nil
}

func (w *Writer) writeInline(n document.InlineNode) (string, error) {
	switch typed := n.(type) {
	case *document.Text:
		return typed.Text, nil
	case *document.SoftBreak:
		return "\n", nil
	case *document.LineBreak:
		return "\\\n", nil
	case *document.Code:
		return codeSpan(typed.Text), nil
	case *document.HTML:
		return typed.Text, nil
	case *document.Math:
		return "$" + typed.Expression + "$", nil
	case *document.Emphasis:
		return w.writeWrapped("*", typed.Children, "*")
	case *document.Strong:
		return w.writeWrapped("**", typed.Children, "**")
	case *document.Strikethrough:
		return w.writeWrapped("~~", typed.Children, "~~")
	case *document.Highlight:
		return w.writeWrapped("==", typed.Children, "==")
	case *document.CriticAddition:
		return w.writeWrapped("{++", typed.Children, "++}")
	case *document.CriticDeletion:
		return w.writeWrapped("{--", typed.Children, "--}")
	case *document.CriticSubstitution:
		return w.writeSubstitution(typed)
	case *document.CriticComment:
		return w.writeWrapped("{>>", typed.Children, "<<}")
	case *document.CriticHighlight:
		return w.writeWrapped("{==", typed.Children, "==}")
	case *document.Link:
		if spelled, ok := autolinkSpelling(typed); ok {
			return spelled, nil
		}
		content, err := w.writeInlines(typed.Children)
		if err != nil {
			return "", err
		}
		return "[" + content + "](" + destinationWithTitle(typed.Destination, typed.Title) + ")", nil
	case *document.Image:
		alt, err := w.writeInlines(typed.Children)
		if err != nil {
			return "", err
		}
		return "![" + alt + "](" + destinationWithTitle(typed.Source, typed.Title) + ")", nil
	default:
		return "", fmt.Errorf("unknown inline node %T", n)
	}
}

func (w *Writer) writeWrapped(opening string, children []document.InlineNode, closing string) (string, error) {
	content, err := w.writeInlines(children)
	if err != nil {
		return "", err
	}
	return opening + content + closing, nil
}

func (w *Writer) writeSubstitution(node *document.CriticSubstitution) (string, error) {
	oldContent, err := w.writeInlines(node.Old)
	if err != nil {
		return "", err
	}
	newContent, err := w.writeInlines(node.New)
	if err != nil {
		return "", err
	}
	return "{~~" + oldContent + "~>" + newContent + "~~}", nil
}

func autolinkSpelling(link *document.Link) (string, bool) {
	if link.Title != "" || len(link.Children) != 1 {
		return "", false
	}
	text, ok := link.Children[0].(*document.Text)
	if !ok {
		return "", false
	}

	switch {
	case text.Text == link.Destination && uriAutolinkPattern.MatchString(text.Text):
		return "<" + text.Text + ">", true
	case link.Destination == "mailto:"+text.Text && emailAutolinkPattern.MatchString(text.Text):
		return "<" + text.Text + ">", true
	case link.Destination == "http://"+text.Text && strings.HasPrefix(text.Text, "www."):
		return text.Text, true
	}
	return "", false
}

func destinationWithTitle(destination, title string) string {
	out := writeDestination(destination)
	if title == "" {
		return out
	}
	escaped := strings.ReplaceAll(title, "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
	return out + " \"" + escaped + "\""
}

// writeDestination spells a destination bare when the bare form can carry
// it; whitespace and parentheses force the angle-bracket form.
func writeDestination(destination string) string {
	if destination != "" && strings.ContainsAny(destination, " \t\r\n()<>") {
		escaped := strings.ReplaceAll(destination, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "<", "\\<")
		escaped = strings.ReplaceAll(escaped, ">", "\\>")
		return "<" + escaped + ">"
	}
	return destination
}

// codeSpan wraps text in a backtick run longer than any run it contains,
// padding with spaces when the content touches the delimiter.
func codeSpan(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	delimiter := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		return delimiter + " " + text + " " + delimiter
	}
	return delimiter + text + delimiter
}
