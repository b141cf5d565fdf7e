package mdwriter

import (
	"testing"

	"github.com/rgonek/extended-markdown/mdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Parsing what the writer wrote must yield the tree the writer was given.
// Sources here are not always spelled canonically, so the text itself may
// change on the first write; the tree never does.
func TestWriteParseRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"plain paragraph", "Hello world."},
		{"highlight and math", "Hello ==world== and $x+y$."},
		{"math with markup", "Euler: $e^{i\\pi}+1=0$."},
		{"editorial markup", "{++add++} {--del--} {~~old~>new~~} {>>note<<} {==mark==}"},
		{"nested markup", "==a {++b++} c== and {++x ==y== z++}"},
		{"comment across lines", "{>>spans\nlines<<}"},
		{"code span", "`==x== $y$`"},
		{"marker callout", "> [!note] Custom Title\n> Body"},
		{"label callout", "> **Warning** Label style"},
		{"callout with list body", "> [!note] T\n>\n> - a\n> - b"},
		{"image dividers", "![alt|300x200](image.png)"},
		{"image divider in table", "| ![a|b](u.png) | c |\n| --- | --- |\n| x | y |"},
		{"task list", "- [ ] one\n- [x] two"},
		{"numbered list", "1. first\n2. second"},
		{"loose list", "- a\n\n- b"},
		{"nested blockquote", "> outer\n>\n> > inner"},
		{"heading and emphasis", "# H1\n\n**bold** *italic* ~~strike~~\n\n---"},
		{"hard and soft breaks", "a\\\nb\nc"},
		{"fenced code", "```go\nfmt.Println(\"hi\")\n```"},
		{"aligned table", "| A | B |\n| :-- | --: |\n| 1 | 2 |"},
		{"autolinks", "visit <https://example.com> or <dev@example.com>"},
		{"bare url", "see www.example.com now"},
		{"inline html", "a <span>b</span> c"},
		{"html block", "<div>\nblock\n</div>\n"},
		{"link and image", "[example](https://example.com \"T\") and ![a](u.png)"},
	}

	parser, err := mdparser.New(mdparser.Config{})
	require.NoError(t, err)
	writer := New()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first := parser.Parse(tc.source)
			require.Empty(t, first.Warnings, "source must parse clean")

			written, err := writer.Write(first.Document.Blocks)
			require.NoError(t, err)

			second := parser.Parse(written)
			require.Empty(t, second.Warnings, "written text must parse clean")
			assert.Equal(t, first.Document.Blocks, second.Document.Blocks)

			// The written spelling is canonical: writing again reproduces it.
			rewritten, err := writer.Write(second.Document.Blocks)
			require.NoError(t, err)
			assert.Equal(t, written, rewritten)
		})
	}
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	parser, err := mdparser.New(mdparser.Config{})
	require.NoError(t, err)
	writer := New()

	first := parser.Parse("---\ntitle: Test\ntags:\n  - a\n  - b\n---\n\n# Body\n\nWith ==markup==.")
	require.Empty(t, first.Warnings)

	written, err := writer.WriteDocument(first.Document)
	require.NoError(t, err)

	second := parser.Parse(written)
	require.Empty(t, second.Warnings)
	assert.Equal(t, first.Document.Meta, second.Document.Meta)
	assert.Equal(t, first.Document.Blocks, second.Document.Blocks)
}
