package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func upperText(inlines []InlineNode) []InlineNode {
	out := make([]InlineNode, 0, len(inlines))
	for _, n := range inlines {
		if text, ok := n.(*Text); ok {
			out = append(out, &Text{Text: strings.ToUpper(text.Text)})
			continue
		}
		out = append(out, MapChildSequences(n, upperText))
	}
	return out
}

func TestMapInlinesReachesEverySequence(t *testing.T) {
	blocks := []BlockNode{
		&Paragraph{Inlines: []InlineNode{&Text{Text: "para"}}},
		&Heading{Level: 2, Inlines: []InlineNode{&Text{Text: "head"}}},
		&Blockquote{Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{&Text{Text: "quoted"}}},
		}},
		&Callout{Type: "note", Title: "Title", Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{&Text{Text: "body"}}},
		}},
		&BulletedList{Tight: true, Items: []ListItem{
			{Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "item"}}}}},
		}},
		&NumberedList{Tight: true, Start: 3, Items: []ListItem{
			{Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "numbered"}}}}},
		}},
		&TaskList{Items: []TaskItem{
			{Checked: true, Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "task"}}}}},
		}},
		&Table{
			Alignments: []Alignment{AlignLeft},
			Rows: []TableRow{
				{TableCell{&Text{Text: "cell"}}},
			},
		},
		&CodeBlock{Info: "go", Text: "code"},
	}

	mapped := MapInlines(blocks, upperText)

	assert.Equal(t, []BlockNode{
		&Paragraph{Inlines: []InlineNode{&Text{Text: "PARA"}}},
		&Heading{Level: 2, Inlines: []InlineNode{&Text{Text: "HEAD"}}},
		&Blockquote{Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{&Text{Text: "QUOTED"}}},
		}},
		&Callout{Type: "note", Title: "Title", Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{&Text{Text: "BODY"}}},
		}},
		&BulletedList{Tight: true, Items: []ListItem{
			{Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "ITEM"}}}}},
		}},
		&NumberedList{Tight: true, Start: 3, Items: []ListItem{
			{Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "NUMBERED"}}}}},
		}},
		&TaskList{Items: []TaskItem{
			{Checked: true, Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "TASK"}}}}},
		}},
		&Table{
			Alignments: []Alignment{AlignLeft},
			Rows: []TableRow{
				{TableCell{&Text{Text: "CELL"}}},
			},
		},
		&CodeBlock{Info: "go", Text: "code"},
	}, mapped)

	// The input tree is rebuilt, not mutated.
	assert.Equal(t, &Paragraph{Inlines: []InlineNode{&Text{Text: "para"}}}, blocks[0])
}

func TestMapChildSequencesDescends(t *testing.T) {
	node := &Strong{Children: []InlineNode{
		&Text{Text: "bold "},
		&Emphasis{Children: []InlineNode{&Text{Text: "both"}}},
	}}

	mapped := MapChildSequences(node, upperText)

	assert.Equal(t, &Strong{Children: []InlineNode{
		&Text{Text: "BOLD "},
		&Emphasis{Children: []InlineNode{&Text{Text: "BOTH"}}},
	}}, mapped)
}

func TestMapChildSequencesSubstitutionHalves(t *testing.T) {
	node := &CriticSubstitution{
		Old: []InlineNode{&Text{Text: "old"}},
		New: []InlineNode{&Text{Text: "new"}},
	}

	mapped := MapChildSequences(node, upperText)

	assert.Equal(t, &CriticSubstitution{
		Old: []InlineNode{&Text{Text: "OLD"}},
		New: []InlineNode{&Text{Text: "NEW"}},
	}, mapped)
}

func TestMapChildSequencesLeavesLeavesAlone(t *testing.T) {
	leaf := &Code{Text: "x"}
	assert.Same(t, InlineNode(leaf), MapChildSequences(leaf, upperText))
}

func TestMapStringsTouchesOpaqueFieldsOnly(t *testing.T) {
	blocks := []BlockNode{
		&Callout{Type: "note", Title: "title", Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{
				&Text{Text: "text stays"},
				&Code{Text: "code"},
				&HTML{Text: "<b>"},
				&Math{Expression: "expr"},
				&Link{Destination: "dest", Title: "ltitle", Children: []InlineNode{&Text{Text: "label"}}},
				&Image{Source: "src", Title: "ititle", Children: []InlineNode{&Text{Text: "alt"}}},
				&Strong{Children: []InlineNode{&Code{Text: "nested"}}},
			}},
		}},
		&CodeBlock{Info: "info", Text: "body"},
		&HTMLBlock{Text: "<div>"},
	}

	mapped := MapStrings(blocks, strings.ToUpper)

	assert.Equal(t, []BlockNode{
		&Callout{Type: "note", Title: "TITLE", Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{
				&Text{Text: "text stays"},
				&Code{Text: "CODE"},
				&HTML{Text: "<B>"},
				&Math{Expression: "EXPR"},
				&Link{Destination: "DEST", Title: "LTITLE", Children: []InlineNode{&Text{Text: "label"}}},
				&Image{Source: "SRC", Title: "ITITLE", Children: []InlineNode{&Text{Text: "alt"}}},
				&Strong{Children: []InlineNode{&Code{Text: "NESTED"}}},
			}},
		}},
		&CodeBlock{Info: "INFO", Text: "BODY"},
		&HTMLBlock{Text: "<DIV>"},
	}, mapped)
}

func TestVisitStringsSeesEveryString(t *testing.T) {
	blocks := []BlockNode{
		&Callout{Type: "note", Title: "title", Children: []BlockNode{
			&Paragraph{Inlines: []InlineNode{
				&Text{Text: "text"},
				&Code{Text: "code"},
				&Math{Expression: "math"},
				&Link{Destination: "dest", Title: "ltitle", Children: []InlineNode{&Text{Text: "label"}}},
				&CriticSubstitution{
					Old: []InlineNode{&Text{Text: "old"}},
					New: []InlineNode{&Text{Text: "new"}},
				},
			}},
		}},
		&CodeBlock{Info: "info", Text: "body"},
		&Table{Rows: []TableRow{{TableCell{&Text{Text: "cell"}}}}},
	}

	var seen []string
	VisitStrings(blocks, func(s string) {
		if s != "" {
			seen = append(seen, s)
		}
	})

	assert.ElementsMatch(t, []string{
		"note", "title", "text", "code", "math", "dest", "ltitle", "label",
		"old", "new", "info", "body", "cell",
	}, seen)
}
