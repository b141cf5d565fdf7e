package document

import "encoding/json"

// Every node marshals to a {"type": ...} object so whole trees can be
// dumped as JSON. Decoding is not supported; trees come from parsing.

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string                 `json:"type"`
		Meta    map[string]interface{} `json:"meta,omitempty"`
		Content []BlockNode            `json:"content,omitempty"`
	}{"document", d.Meta, d.Blocks})
}

func (n *Blockquote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string      `json:"type"`
		Content []BlockNode `json:"content,omitempty"`
	}{"blockquote", n.Children})
}

func (n *Callout) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string      `json:"type"`
		CalloutType string      `json:"calloutType"`
		Title       string      `json:"title,omitempty"`
		Content     []BlockNode `json:"content,omitempty"`
	}{"callout", n.Type, n.Title, n.Children})
}

func (it ListItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string      `json:"type"`
		Content []BlockNode `json:"content,omitempty"`
	}{"listItem", it.Blocks})
}

func (n *BulletedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Tight   bool       `json:"tight"`
		Content []ListItem `json:"content,omitempty"`
	}{"bulletedList", n.Tight, n.Items})
}

func (n *NumberedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Tight   bool       `json:"tight"`
		Start   int        `json:"start"`
		Content []ListItem `json:"content,omitempty"`
	}{"numberedList", n.Tight, n.Start, n.Items})
}

func (it TaskItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string      `json:"type"`
		Checked bool        `json:"checked"`
		Content []BlockNode `json:"content,omitempty"`
	}{"taskItem", it.Checked, it.Blocks})
}

func (n *TaskList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Tight   bool       `json:"tight"`
		Content []TaskItem `json:"content,omitempty"`
	}{"taskList", n.Tight, n.Items})
}

func (n *Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string       `json:"type"`
		Content []InlineNode `json:"content,omitempty"`
	}{"paragraph", n.Inlines})
}

func (n *Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string       `json:"type"`
		Level   int          `json:"level"`
		Content []InlineNode `json:"content,omitempty"`
	}{"heading", n.Level, n.Inlines})
}

func (n *CodeBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Info string `json:"info,omitempty"`
		Text string `json:"text"`
	}{"codeBlock", n.Info, n.Text})
}

func (n *HTMLBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"htmlBlock", n.Text})
}

func (n *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string      `json:"type"`
		Alignments []Alignment `json:"alignments"`
		Rows       []TableRow  `json:"rows,omitempty"`
	}{"table", n.Alignments, n.Rows})
}

func (n *ThematicBreak) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"thematicBreak"})
}

func (n *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"text", n.Text})
}

func (n *SoftBreak) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"softBreak"})
}

func (n *LineBreak) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"lineBreak"})
}

func (n *Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"code", n.Text})
}

func (n *HTML) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"html", n.Text})
}

func (n *Math) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string `json:"type"`
		Expression string `json:"expression"`
	}{"math", n.Expression})
}

func marshalInlineContainer(nodeType string, children []InlineNode) ([]byte, error) {
	return json.Marshal(struct {
		Type    string       `json:"type"`
		Content []InlineNode `json:"content,omitempty"`
	}{nodeType, children})
}

func (n *Emphasis) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("emphasis", n.Children)
}

func (n *Strong) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("strong", n.Children)
}

func (n *Strikethrough) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("strikethrough", n.Children)
}

func (n *Highlight) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("highlight", n.Children)
}

func (n *CriticAddition) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("criticAddition", n.Children)
}

func (n *CriticDeletion) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("criticDeletion", n.Children)
}

func (n *CriticSubstitution) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string       `json:"type"`
		Old  []InlineNode `json:"old,omitempty"`
		New  []InlineNode `json:"new,omitempty"`
	}{"criticSubstitution", n.Old, n.New})
}

func (n *CriticComment) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("criticComment", n.Children)
}

func (n *CriticHighlight) MarshalJSON() ([]byte, error) {
	return marshalInlineContainer("criticHighlight", n.Children)
}

func (n *Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Destination string       `json:"destination"`
		Title       string       `json:"title,omitempty"`
		Content     []InlineNode `json:"content,omitempty"`
	}{"link", n.Destination, n.Title, n.Children})
}

func (n *Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string       `json:"type"`
		Source  string       `json:"source"`
		Title   string       `json:"title,omitempty"`
		Content []InlineNode `json:"content,omitempty"`
	}{"image", n.Source, n.Title, n.Children})
}
