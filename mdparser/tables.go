package mdparser

import (
	"github.com/rgonek/extended-markdown/document"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertTable(node *extast.Table) document.BlockNode {
	var alignments []document.Alignment
	rows := make([]document.TableRow, 0, node.ChildCount())

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *extast.TableHeader:
			alignments = s.headerAlignments(typed)
			rows = append(rows, s.convertTableRow(typed))
		case *extast.TableRow:
			rows = append(rows, s.convertTableRow(typed))
		}
	}

	return &document.Table{Alignments: alignments, Rows: rows}
}

// headerAlignments reads the column alignments off the header cells; the
// engine stamps the delimiter-row alignment onto every cell of the column.
func (s *state) headerAlignments(header *extast.TableHeader) []document.Alignment {
	alignments := make([]document.Alignment, 0, header.ChildCount())
	for cell := header.FirstChild(); cell != nil; cell = cell.NextSibling() {
		typed, ok := cell.(*extast.TableCell)
		if !ok {
			continue
		}
		alignments = append(alignments, convertAlignment(typed.Alignment))
	}
	return alignments
}

func convertAlignment(alignment extast.Alignment) document.Alignment {
	switch alignment {
	case extast.AlignLeft:
		return document.AlignLeft
	case extast.AlignCenter:
		return document.AlignCenter
	case extast.AlignRight:
		return document.AlignRight
	default:
		return document.AlignNone
	}
}

func (s *state) convertTableRow(row ast.Node) document.TableRow {
	cells := make(document.TableRow, 0, row.ChildCount())
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, document.TableCell(s.convertInlines(cell)))
	}
	return cells
}
