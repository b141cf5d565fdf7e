package document

// Document is the result of parsing one markdown source: the block tree plus
// any decoded YAML front matter (nil when the source had none).
type Document struct {
	Meta   map[string]interface{}
	Blocks []BlockNode
}

// BlockNode is a block-level node of the document tree. The variant set is
// closed: every implementation lives in this package, so traversals can rely
// on an exhaustive type switch.
type BlockNode interface {
	blockNode()
}

// InlineNode is an inline-level node of the document tree. Like BlockNode,
// the variant set is closed.
type InlineNode interface {
	inlineNode()
}

// Blockquote is a plain quoted block.
type Blockquote struct {
	Children []BlockNode
}

// Callout is a blockquote rewritten into a typed admonition. Type is lower
// case and not limited to the known catalogue; Title is empty when the
// marker carried none.
type Callout struct {
	Type     string
	Title    string
	Children []BlockNode
}

// ListItem holds the blocks of one bulleted or numbered list item.
type ListItem struct {
	Blocks []BlockNode
}

// BulletedList is an unordered list.
type BulletedList struct {
	Tight bool
	Items []ListItem
}

// NumberedList is an ordered list. Start is the number of the first item.
type NumberedList struct {
	Tight bool
	Start int
	Items []ListItem
}

// TaskItem is one checkbox entry of a task list.
type TaskItem struct {
	Checked bool
	Blocks  []BlockNode
}

// TaskList is a list whose items carry a checked state.
type TaskList struct {
	Tight bool
	Items []TaskItem
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Inlines []InlineNode
}

// Heading is a section heading with level 1 through 6.
type Heading struct {
	Level   int
	Inlines []InlineNode
}

// CodeBlock is a fenced or indented code block. Info is the fence info
// string ("" for none) and Text the verbatim body.
type CodeBlock struct {
	Info string
	Text string
}

// HTMLBlock is a block of raw HTML kept verbatim.
type HTMLBlock struct {
	Text string
}

// Alignment is a table column alignment.
type Alignment string

const (
	AlignNone   Alignment = "none"
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TableCell is the inline content of one table cell.
type TableCell []InlineNode

// TableRow is one row of table cells.
type TableRow []TableCell

// Table is a pipe table. The first row is the header row; Alignments holds
// one entry per column.
type Table struct {
	Alignments []Alignment
	Rows       []TableRow
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

func (*Blockquote) blockNode()    {}
func (*Callout) blockNode()       {}
func (*BulletedList) blockNode()  {}
func (*NumberedList) blockNode()  {}
func (*TaskList) blockNode()      {}
func (*Paragraph) blockNode()     {}
func (*Heading) blockNode()       {}
func (*CodeBlock) blockNode()     {}
func (*HTMLBlock) blockNode()     {}
func (*Table) blockNode()         {}
func (*ThematicBreak) blockNode() {}

// Text is a run of literal characters.
type Text struct {
	Text string
}

// SoftBreak is a soft line break (renders as whitespace).
type SoftBreak struct{}

// LineBreak is a hard line break.
type LineBreak struct{}

// Code is an inline code span. Text is verbatim.
type Code struct {
	Text string
}

// HTML is a raw inline HTML fragment kept verbatim.
type HTML struct {
	Text string
}

// Math is an inline math expression. Expression is the literal text between
// the dollar delimiters, never further parsed.
type Math struct {
	Expression string
}

// Emphasis is emphasized (usually italic) content.
type Emphasis struct {
	Children []InlineNode
}

// Strong is strongly emphasized (usually bold) content.
type Strong struct {
	Children []InlineNode
}

// Strikethrough is struck-through content.
type Strikethrough struct {
	Children []InlineNode
}

// Highlight is content marked with ==double equals==.
type Highlight struct {
	Children []InlineNode
}

// CriticAddition is editorial markup proposing an insertion.
type CriticAddition struct {
	Children []InlineNode
}

// CriticDeletion is editorial markup proposing a removal.
type CriticDeletion struct {
	Children []InlineNode
}

// CriticSubstitution is editorial markup proposing Old be replaced by New.
type CriticSubstitution struct {
	Old []InlineNode
	New []InlineNode
}

// CriticComment is an editorial remark that is not part of the prose.
type CriticComment struct {
	Children []InlineNode
}

// CriticHighlight is editorial markup calling attention to a span.
type CriticHighlight struct {
	Children []InlineNode
}

// Link is a hyperlink; Children hold the link text.
type Link struct {
	Destination string
	Title       string
	Children    []InlineNode
}

// Image is an inline image; Children hold the alt text.
type Image struct {
	Source   string
	Title    string
	Children []InlineNode
}

func (*Text) inlineNode()               {}
func (*SoftBreak) inlineNode()          {}
func (*LineBreak) inlineNode()          {}
func (*Code) inlineNode()               {}
func (*HTML) inlineNode()               {}
func (*Math) inlineNode()               {}
func (*Emphasis) inlineNode()           {}
func (*Strong) inlineNode()             {}
func (*Strikethrough) inlineNode()      {}
func (*Highlight) inlineNode()          {}
func (*CriticAddition) inlineNode()     {}
func (*CriticDeletion) inlineNode()     {}
func (*CriticSubstitution) inlineNode() {}
func (*CriticComment) inlineNode()      {}
func (*CriticHighlight) inlineNode()    {}
func (*Link) inlineNode()               {}
func (*Image) inlineNode()              {}
