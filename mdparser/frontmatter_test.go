package mdparser

import (
	"testing"

	"github.com/rgonek/extended-markdown/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	parser, err := New(Config{})
	require.NoError(t, err)

	t.Run("metadata and body", func(t *testing.T) {
		result := parser.Parse("---\ntitle: Test\ntags:\n  - a\n  - b\n---\n\n# Body")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, map[string]interface{}{
			"title": "Test",
			"tags":  []interface{}{"a", "b"},
		}, result.Document.Meta)
		assert.Equal(t, []document.BlockNode{
			&document.Heading{Level: 1, Inlines: []document.InlineNode{&document.Text{Text: "Body"}}},
		}, result.Document.Blocks)
	})

	t.Run("dots closer", func(t *testing.T) {
		result := parser.Parse("---\ntitle: x\n...\nBody")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, map[string]interface{}{"title": "x"}, result.Document.Meta)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{&document.Text{Text: "Body"}}},
		}, result.Document.Blocks)
	})

	t.Run("empty block yields no metadata", func(t *testing.T) {
		result := parser.Parse("---\n---\nBody")

		assert.Empty(t, result.Warnings)
		assert.Nil(t, result.Document.Meta)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{&document.Text{Text: "Body"}}},
		}, result.Document.Blocks)
	})

	t.Run("metadata values are never shielded", func(t *testing.T) {
		result := parser.Parse("---\ntitle: ==x==\n---\nBody")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, map[string]interface{}{"title": "==x=="}, result.Document.Meta)
	})

	t.Run("unterminated block is content", func(t *testing.T) {
		result := parser.Parse("---\ntitle: x\nbody")

		assert.Empty(t, result.Warnings)
		assert.Nil(t, result.Document.Meta)
		assert.Equal(t, []document.BlockNode{
			&document.ThematicBreak{},
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "title: x"},
				&document.SoftBreak{},
				&document.Text{Text: "body"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("invalid YAML degrades to content", func(t *testing.T) {
		result := parser.Parse("---\nkey: [unclosed\n---\nBody text")

		require.Len(t, result.Warnings, 1)
		assert.Equal(t, WarningInvalidFrontMatter, result.Warnings[0].Type)
		assert.Nil(t, result.Document.Meta)
		// The whole source reparses as content; the closing fence reads as a
		// setext underline for the line above it.
		assert.Equal(t, []document.BlockNode{
			&document.ThematicBreak{},
			&document.Heading{Level: 2, Inlines: []document.InlineNode{&document.Text{Text: "key: [unclosed"}}},
			&document.Paragraph{Inlines: []document.InlineNode{&document.Text{Text: "Body text"}}},
		}, result.Document.Blocks)
	})
}

func TestParseFrontMatterDisabled(t *testing.T) {
	parser, err := New(Config{FrontMatter: FrontMatterNone})
	require.NoError(t, err)

	result := parser.Parse("---\ntitle: x\n---\nBody")

	assert.Empty(t, result.Warnings)
	assert.Nil(t, result.Document.Meta)
	assert.Equal(t, []document.BlockNode{
		&document.ThematicBreak{},
		&document.Heading{Level: 2, Inlines: []document.InlineNode{&document.Text{Text: "title: x"}}},
		&document.Paragraph{Inlines: []document.InlineNode{&document.Text{Text: "Body"}}},
	}, result.Document.Blocks)
}
