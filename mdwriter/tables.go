package mdwriter

import (
	"strings"

	"github.com/rgonek/extended-markdown/document"
)

// writeTable renders a pipe table. The first row becomes the header row and
// the delimiter row carries the column alignments.
func (w *Writer) writeTable(node *document.Table) (string, error) {
	if len(node.Rows) == 0 {
		return "", nil
	}

	colCount := len(node.Alignments)
	for _, row := range node.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return "", nil
	}

	var sb strings.Builder

	if err := w.writeTableRow(&sb, node.Rows[0], colCount); err != nil {
		return "", err
	}

	sb.WriteString("|")
	for i := 0; i < colCount; i++ {
		sb.WriteString(" ")
		sb.WriteString(delimiterCell(columnAlignment(node.Alignments, i)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	for _, row := range node.Rows[1:] {
		if err := w.writeTableRow(&sb, row, colCount); err != nil {
			return "", err
		}
	}

	sb.WriteString("\n")
	return sb.String(), nil
}

func (w *Writer) writeTableRow(sb *strings.Builder, row document.TableRow, colCount int) error {
	sb.WriteString("|")
	for i := 0; i < colCount; i++ {
		sb.WriteString(" ")
		if i < len(row) {
			content, err := w.writeTableCell(row[i])
			if err != nil {
				return err
			}
			sb.WriteString(content)
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	return nil
}

// writeTableCell flattens cell content to a single line. Pipes are escaped
// here and only here; escaping earlier would double up.
func (w *Writer) writeTableCell(cell document.TableCell) (string, error) {
	content, err := w.writeInlines(cell)
	if err != nil {
		return "", err
	}
	content = strings.ReplaceAll(content, "\n", " ")
	return strings.ReplaceAll(content, "|", "\\|"), nil
}

func columnAlignment(alignments []document.Alignment, column int) document.Alignment {
	if column < len(alignments) {
		return alignments[column]
	}
	return document.AlignNone
}

func delimiterCell(alignment document.Alignment) string {
	switch alignment {
	case document.AlignLeft:
		return ":---"
	case document.AlignCenter:
		return ":---:"
	case document.AlignRight:
		return "---:"
	default:
		return "---"
	}
}
