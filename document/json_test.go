package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalDocument(t *testing.T) {
	doc := &Document{
		Meta: map[string]interface{}{"title": "Test"},
		Blocks: []BlockNode{
			&Heading{Level: 1, Inlines: []InlineNode{&Text{Text: "Hello"}}},
			&Paragraph{Inlines: []InlineNode{
				&Text{Text: "with "},
				&Highlight{Children: []InlineNode{&Text{Text: "mark"}}},
			}},
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "document",
		"meta": {"title": "Test"},
		"content": [
			{"type": "heading", "level": 1, "content": [{"type": "text", "text": "Hello"}]},
			{"type": "paragraph", "content": [
				{"type": "text", "text": "with "},
				{"type": "highlight", "content": [{"type": "text", "text": "mark"}]}
			]}
		]
	}`, string(data))
}

func TestMarshalBlockVariants(t *testing.T) {
	cases := []struct {
		name string
		node BlockNode
		want string
	}{
		{
			"callout",
			&Callout{Type: "warning", Title: "Careful", Children: []BlockNode{
				&Paragraph{Inlines: []InlineNode{&Text{Text: "body"}}},
			}},
			`{"type": "callout", "calloutType": "warning", "title": "Careful",
			  "content": [{"type": "paragraph", "content": [{"type": "text", "text": "body"}]}]}`,
		},
		{
			"title-less callout omits the title",
			&Callout{Type: "note"},
			`{"type": "callout", "calloutType": "note"}`,
		},
		{
			"numbered list",
			&NumberedList{Tight: true, Start: 3, Items: []ListItem{
				{Blocks: []BlockNode{&Paragraph{Inlines: []InlineNode{&Text{Text: "x"}}}}},
			}},
			`{"type": "numberedList", "tight": true, "start": 3, "content": [
				{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "x"}]}]}
			]}`,
		},
		{
			"task list",
			&TaskList{Items: []TaskItem{{Checked: true}}},
			`{"type": "taskList", "tight": false, "content": [{"type": "taskItem", "checked": true}]}`,
		},
		{
			"code block",
			&CodeBlock{Info: "go", Text: "x := 1\n"},
			`{"type": "codeBlock", "info": "go", "text": "x := 1\n"}`,
		},
		{
			"table",
			&Table{
				Alignments: []Alignment{AlignLeft, AlignNone},
				Rows: []TableRow{
					{TableCell{&Text{Text: "a"}}, TableCell{&Text{Text: "b"}}},
				},
			},
			`{"type": "table", "alignments": ["left", "none"], "rows": [
				[[{"type": "text", "text": "a"}], [{"type": "text", "text": "b"}]]
			]}`,
		},
		{
			"thematic break",
			&ThematicBreak{},
			`{"type": "thematicBreak"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.node)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

func TestMarshalInlineVariants(t *testing.T) {
	cases := []struct {
		name string
		node InlineNode
		want string
	}{
		{"soft break", &SoftBreak{}, `{"type": "softBreak"}`},
		{"line break", &LineBreak{}, `{"type": "lineBreak"}`},
		{"code", &Code{Text: "x"}, `{"type": "code", "text": "x"}`},
		{"math", &Math{Expression: "a+b"}, `{"type": "math", "expression": "a+b"}`},
		{
			"substitution",
			&CriticSubstitution{
				Old: []InlineNode{&Text{Text: "old"}},
				New: []InlineNode{&Text{Text: "new"}},
			},
			`{"type": "criticSubstitution",
			  "old": [{"type": "text", "text": "old"}],
			  "new": [{"type": "text", "text": "new"}]}`,
		},
		{
			"comment",
			&CriticComment{Children: []InlineNode{&Text{Text: "hm"}}},
			`{"type": "criticComment", "content": [{"type": "text", "text": "hm"}]}`,
		},
		{
			"link with title",
			&Link{Destination: "https://x.test", Title: "t", Children: []InlineNode{&Text{Text: "label"}}},
			`{"type": "link", "destination": "https://x.test", "title": "t",
			  "content": [{"type": "text", "text": "label"}]}`,
		},
		{
			"image",
			&Image{Source: "pic.png", Children: []InlineNode{&Text{Text: "alt"}}},
			`{"type": "image", "source": "pic.png", "content": [{"type": "text", "text": "alt"}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.node)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}
