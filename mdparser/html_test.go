package mdparser

import (
	"testing"

	"github.com/rgonek/extended-markdown/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawHTMLVerbatim(t *testing.T) {
	parser, err := New(Config{})
	require.NoError(t, err)

	t.Run("inline tags pass through", func(t *testing.T) {
		result := parser.Parse("a <span>b</span> c")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "a "},
				&document.HTML{Text: "<span>"},
				&document.Text{Text: "b"},
				&document.HTML{Text: "</span>"},
				&document.Text{Text: " c"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("mark stays raw without inline detection", func(t *testing.T) {
		result := parser.Parse("a <mark>b</mark> c")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "a "},
				&document.HTML{Text: "<mark>"},
				&document.Text{Text: "b"},
				&document.HTML{Text: "</mark>"},
				&document.Text{Text: " c"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("comments pass through", func(t *testing.T) {
		result := parser.Parse("a <!-- c --> b")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "a "},
				&document.HTML{Text: "<!-- c -->"},
				&document.Text{Text: " b"},
			}},
		}, result.Document.Blocks)
	})
}

func TestParseHTMLTagDetection(t *testing.T) {
	parser, err := New(Config{HTMLTagDetection: HTMLTagDetectInline})
	require.NoError(t, err)

	t.Run("mark folds into highlight", func(t *testing.T) {
		result := parser.Parse("a <mark>b</mark> c")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "a "},
				&document.Highlight{Children: []document.InlineNode{&document.Text{Text: "b"}}},
				&document.Text{Text: " c"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("ins and del fold into editorial markup", func(t *testing.T) {
		result := parser.Parse("<ins>new</ins> and <del>old</del>")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.CriticAddition{Children: []document.InlineNode{&document.Text{Text: "new"}}},
				&document.Text{Text: " and "},
				&document.CriticDeletion{Children: []document.InlineNode{&document.Text{Text: "old"}}},
			}},
		}, result.Document.Blocks)
	})

	t.Run("attributes do not block folding", func(t *testing.T) {
		result := parser.Parse(`a <mark class="x">b</mark> c`)

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "a "},
				&document.Highlight{Children: []document.InlineNode{&document.Text{Text: "b"}}},
				&document.Text{Text: " c"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("unmapped tags stay raw", func(t *testing.T) {
		result := parser.Parse("<kbd>x</kbd>")

		assert.Empty(t, result.Warnings)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.HTML{Text: "<kbd>"},
				&document.Text{Text: "x"},
				&document.HTML{Text: "</kbd>"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("open tag without close degrades", func(t *testing.T) {
		result := parser.Parse("<mark>no close")

		require.Len(t, result.Warnings, 1)
		assert.Equal(t, WarningUnterminatedSpan, result.Warnings[0].Type)
		assert.Equal(t, "highlight", result.Warnings[0].NodeType)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "==no close"},
			}},
		}, result.Document.Blocks)
	})

	t.Run("close tag without open degrades", func(t *testing.T) {
		result := parser.Parse("a</del>b")

		require.Len(t, result.Warnings, 1)
		assert.Equal(t, WarningStraySentinel, result.Warnings[0].Type)
		assert.Equal(t, "criticDeletion", result.Warnings[0].NodeType)
		assert.Equal(t, []document.BlockNode{
			&document.Paragraph{Inlines: []document.InlineNode{
				&document.Text{Text: "a--}b"},
			}},
		}, result.Document.Blocks)
	})
}

func TestParseBreakTag(t *testing.T) {
	for _, config := range []Config{{}, {HTMLTagDetection: HTMLTagDetectInline}} {
		parser, err := New(config)
		require.NoError(t, err)

		for _, source := range []string{"a<br>b", "a<br/>b"} {
			result := parser.Parse(source)

			assert.Empty(t, result.Warnings)
			assert.Equal(t, []document.BlockNode{
				&document.Paragraph{Inlines: []document.InlineNode{
					&document.Text{Text: "a"},
					&document.LineBreak{},
					&document.Text{Text: "b"},
				}},
			}, result.Document.Blocks, "source %q", source)
		}
	}
}

func TestParseHTMLBlock(t *testing.T) {
	parser, err := New(Config{})
	require.NoError(t, err)

	// Block-level HTML is opaque: delimiters inside it stay literal.
	result := parser.Parse("<div>\n==shield== $x$\n</div>\n")

	assert.Empty(t, result.Warnings)
	assert.Equal(t, []document.BlockNode{
		&document.HTMLBlock{Text: "<div>\n==shield== $x$\n</div>\n"},
	}, result.Document.Blocks)
}
