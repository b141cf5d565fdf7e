package mdparser

import (
	"github.com/rgonek/extended-markdown/document"
	"github.com/rgonek/extended-markdown/shield"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Parser parses extended markdown into a document tree. Extension syntaxes
// are shielded with sentinels before the CommonMark engine runs and restored
// from the tree it produces, so the engine itself stays unmodified.
//
// A Parser may be shared across goroutines; every call allocates its own
// parsing state.
type Parser struct {
	config Config
	engine goldmark.Markdown
}

type state struct {
	config   Config
	source   []byte
	warnings []Warning
}

// New creates a Parser with the given config.
func New(config Config) (*Parser, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Parser{
		config: cfg,
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Prepare shields every extension delimiter in source with its sentinel.
// Parse applies it internally; it is exposed for callers that hand text to
// the engine themselves. Text without extension syntax passes through
// unchanged.
func (p *Parser) Prepare(source string) string {
	if p.config.Sanitize == SanitizeStrip {
		source = shield.StripPrivateUse(source)
	}
	return shield.Protect(source)
}

// Parse converts source into a document tree. Malformed extension syntax
// never fails the parse: it degrades to literal text and is reported in
// Result.Warnings.
func (p *Parser) Parse(source string) Result {
	s := &state{config: p.config}

	body := source
	var meta map[string]interface{}
	if p.config.FrontMatter == FrontMatterYAML {
		meta, body = s.extractFrontMatter(source)
	}

	if p.config.Sanitize == SanitizeStrip && shield.ContainsPrivateUse(body) {
		s.addWarning(WarningForeignPrivateUse, "document", "stripped private-use code points from source")
		body = shield.StripPrivateUse(body)
	}

	s.source = []byte(shield.Protect(body))
	root := p.engine.Parser().Parse(text.NewReader(s.source))
	blocks := s.finalize(s.convertBlocks(root))

	return Result{
		Document: &document.Document{Meta: meta, Blocks: blocks},
		Warnings: s.warnings,
	}
}

// Finalize rewrites callouts and restores every shielded extension span in
// blocks. Parse calls it internally; callers that built a tree from
// Prepare'd text themselves use it directly. Running it on already
// finalized blocks changes nothing.
func (p *Parser) Finalize(blocks []document.BlockNode) ([]document.BlockNode, []Warning) {
	s := &state{config: p.config}
	return s.finalize(blocks), s.warnings
}

func (s *state) finalize(blocks []document.BlockNode) []document.BlockNode {
	blocks = s.rewriteCallouts(blocks)
	// Code spans, fenced blocks, raw HTML, destinations, and titles carry
	// their shielded delimiters through the engine as opaque strings; those
	// turn back into literals before the inline passes run.
	blocks = document.MapStrings(blocks, shield.Unprotect)
	blocks = s.restoreImageDividers(blocks)
	blocks = s.restoreHighlights(blocks)
	blocks = s.restoreCritic(blocks)
	blocks = s.restoreMath(blocks)
	return blocks
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}
