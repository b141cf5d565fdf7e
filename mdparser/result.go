package mdparser

import "github.com/rgonek/extended-markdown/document"

// WarningType identifies a category of degradation during parsing.
type WarningType string

const (
	// WarningUnknownNode reports an engine node kind the converter does not
	// model; the node is kept as plain text.
	WarningUnknownNode WarningType = "unknown_node"
	// WarningUnterminatedSpan reports an extension span that never closed;
	// its open delimiter reappears as literal text.
	WarningUnterminatedSpan WarningType = "unterminated_span"
	// WarningStraySentinel reports a close or separator delimiter with no
	// matching open; it reappears as literal text.
	WarningStraySentinel WarningType = "stray_sentinel"
	// WarningForeignPrivateUse reports private-use code points that were in
	// the source before protection and were stripped.
	WarningForeignPrivateUse WarningType = "foreign_private_use"
	// WarningInvalidFrontMatter reports a front matter block that is not
	// valid YAML; it is kept as ordinary content.
	WarningInvalidFrontMatter WarningType = "invalid_front_matter"
)

// Warning describes one degradation encountered during parsing. Malformed
// extension syntax never fails a parse; it degrades and is reported here.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}

// Result bundles the parsed document with its warnings.
type Result struct {
	Document *document.Document `json:"document"`
	Warnings []Warning          `json:"warnings,omitempty"`
}
