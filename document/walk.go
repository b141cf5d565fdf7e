package document

// MapInlines returns a copy of blocks with fn applied to every inline
// sequence they contain: paragraph and heading content and each table cell.
// fn receives whole sequences so it can regroup siblings; descending into
// inline containers is its own responsibility (see MapChildSequences).
func MapInlines(blocks []BlockNode, fn func([]InlineNode) []InlineNode) []BlockNode {
	out := make([]BlockNode, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, mapBlockInlines(b, fn))
	}
	return out
}

func mapBlockInlines(b BlockNode, fn func([]InlineNode) []InlineNode) BlockNode {
	switch typed := b.(type) {
	case *Blockquote:
		return &Blockquote{Children: MapInlines(typed.Children, fn)}
	case *Callout:
		return &Callout{Type: typed.Type, Title: typed.Title, Children: MapInlines(typed.Children, fn)}
	case *BulletedList:
		return &BulletedList{Tight: typed.Tight, Items: mapListItems(typed.Items, fn)}
	case *NumberedList:
		return &NumberedList{Tight: typed.Tight, Start: typed.Start, Items: mapListItems(typed.Items, fn)}
	case *TaskList:
		items := make([]TaskItem, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, TaskItem{Checked: item.Checked, Blocks: MapInlines(item.Blocks, fn)})
		}
		return &TaskList{Tight: typed.Tight, Items: items}
	case *Paragraph:
		return &Paragraph{Inlines: fn(typed.Inlines)}
	case *Heading:
		return &Heading{Level: typed.Level, Inlines: fn(typed.Inlines)}
	case *Table:
		rows := make([]TableRow, 0, len(typed.Rows))
		for _, row := range typed.Rows {
			cells := make(TableRow, 0, len(row))
			for _, cell := range row {
				cells = append(cells, TableCell(fn(cell)))
			}
			rows = append(rows, cells)
		}
		return &Table{Alignments: append([]Alignment(nil), typed.Alignments...), Rows: rows}
	default:
		return b
	}
}

func mapListItems(items []ListItem, fn func([]InlineNode) []InlineNode) []ListItem {
	out := make([]ListItem, 0, len(items))
	for _, item := range items {
		out = append(out, ListItem{Blocks: MapInlines(item.Blocks, fn)})
	}
	return out
}

// MapChildSequences applies fn to each child sequence of one inline
// container and returns the rebuilt node. Leaves come back unchanged.
func MapChildSequences(n InlineNode, fn func([]InlineNode) []InlineNode) InlineNode {
	switch typed := n.(type) {
	case *Emphasis:
		return &Emphasis{Children: fn(typed.Children)}
	case *Strong:
		return &Strong{Children: fn(typed.Children)}
	case *Strikethrough:
		return &Strikethrough{Children: fn(typed.Children)}
	case *Highlight:
		return &Highlight{Children: fn(typed.Children)}
	case *CriticAddition:
		return &CriticAddition{Children: fn(typed.Children)}
	case *CriticDeletion:
		return &CriticDeletion{Children: fn(typed.Children)}
	case *CriticSubstitution:
		return &CriticSubstitution{Old: fn(typed.Old), New: fn(typed.New)}
	case *CriticComment:
		return &CriticComment{Children: fn(typed.Children)}
	case *CriticHighlight:
		return &CriticHighlight{Children: fn(typed.Children)}
	case *Link:
		return &Link{Destination: typed.Destination, Title: typed.Title, Children: fn(typed.Children)}
	case *Image:
		return &Image{Source: typed.Source, Title: typed.Title, Children: fn(typed.Children)}
	default:
		return n
	}
}

// MapStrings returns a copy of blocks with fn applied to every string field
// the restoration passes treat as opaque: code and HTML bodies (block and
// inline), fence info strings, link and image destinations and titles,
// callout titles, and math expressions. Text runs are not included.
func MapStrings(blocks []BlockNode, fn func(string) string) []BlockNode {
	out := make([]BlockNode, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, mapBlockStrings(b, fn))
	}
	return out
}

func mapBlockStrings(b BlockNode, fn func(string) string) BlockNode {
	switch typed := b.(type) {
	case *Blockquote:
		return &Blockquote{Children: MapStrings(typed.Children, fn)}
	case *Callout:
		return &Callout{Type: typed.Type, Title: fn(typed.Title), Children: MapStrings(typed.Children, fn)}
	case *BulletedList:
		items := make([]ListItem, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, ListItem{Blocks: MapStrings(item.Blocks, fn)})
		}
		return &BulletedList{Tight: typed.Tight, Items: items}
	case *NumberedList:
		items := make([]ListItem, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, ListItem{Blocks: MapStrings(item.Blocks, fn)})
		}
		return &NumberedList{Tight: typed.Tight, Start: typed.Start, Items: items}
	case *TaskList:
		items := make([]TaskItem, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, TaskItem{Checked: item.Checked, Blocks: MapStrings(item.Blocks, fn)})
		}
		return &TaskList{Tight: typed.Tight, Items: items}
	case *Paragraph:
		return &Paragraph{Inlines: mapInlineStrings(typed.Inlines, fn)}
	case *Heading:
		return &Heading{Level: typed.Level, Inlines: mapInlineStrings(typed.Inlines, fn)}
	case *CodeBlock:
		return &CodeBlock{Info: fn(typed.Info), Text: fn(typed.Text)}
	case *HTMLBlock:
		return &HTMLBlock{Text: fn(typed.Text)}
	case *Table:
		rows := make([]TableRow, 0, len(typed.Rows))
		for _, row := range typed.Rows {
			cells := make(TableRow, 0, len(row))
			for _, cell := range row {
				cells = append(cells, TableCell(mapInlineStrings(cell, fn)))
			}
			rows = append(rows, cells)
		}
		return &Table{Alignments: append([]Alignment(nil), typed.Alignments...), Rows: rows}
	default:
		return b
	}
}

func mapInlineStrings(in []InlineNode, fn func(string) string) []InlineNode {
	out := make([]InlineNode, 0, len(in))
	for _, n := range in {
		switch typed := n.(type) {
		case *Code:
			out = append(out, &Code{Text: fn(typed.Text)})
		case *HTML:
			out = append(out, &HTML{Text: fn(typed.Text)})
		case *Math:
			out = append(out, &Math{Expression: fn(typed.Expression)})
		case *Link:
			out = append(out, &Link{Destination: fn(typed.Destination), Title: fn(typed.Title), Children: mapInlineStrings(typed.Children, fn)})
		case *Image:
			out = append(out, &Image{Source: fn(typed.Source), Title: fn(typed.Title), Children: mapInlineStrings(typed.Children, fn)})
		default:
			out = append(out, MapChildSequences(n, func(children []InlineNode) []InlineNode {
				return mapInlineStrings(children, fn)
			}))
		}
	}
	return out
}

// VisitStrings calls fn for every string carried by the tree: text runs,
// code and HTML bodies, destinations, titles, fence info strings, callout
// types and titles, and math expressions.
func VisitStrings(blocks []BlockNode, fn func(string)) {
	for _, b := range blocks {
		visitBlockStrings(b, fn)
	}
}

func visitBlockStrings(b BlockNode, fn func(string)) {
	switch typed := b.(type) {
	case *Blockquote:
		VisitStrings(typed.Children, fn)
	case *Callout:
		fn(typed.Type)
		fn(typed.Title)
		VisitStrings(typed.Children, fn)
	case *BulletedList:
		for _, item := range typed.Items {
			VisitStrings(item.Blocks, fn)
		}
	case *NumberedList:
		for _, item := range typed.Items {
			VisitStrings(item.Blocks, fn)
		}
	case *TaskList:
		for _, item := range typed.Items {
			VisitStrings(item.Blocks, fn)
		}
	case *Paragraph:
		visitInlineStrings(typed.Inlines, fn)
	case *Heading:
		visitInlineStrings(typed.Inlines, fn)
	case *CodeBlock:
		fn(typed.Info)
		fn(typed.Text)
	case *HTMLBlock:
		fn(typed.Text)
	case *Table:
		for _, row := range typed.Rows {
			for _, cell := range row {
				visitInlineStrings(cell, fn)
			}
		}
	}
}

func visitInlineStrings(in []InlineNode, fn func(string)) {
	for _, n := range in {
		switch typed := n.(type) {
		case *Text:
			fn(typed.Text)
		case *Code:
			fn(typed.Text)
		case *HTML:
			fn(typed.Text)
		case *Math:
			fn(typed.Expression)
		case *Emphasis:
			visitInlineStrings(typed.Children, fn)
		case *Strong:
			visitInlineStrings(typed.Children, fn)
		case *Strikethrough:
			visitInlineStrings(typed.Children, fn)
		case *Highlight:
			visitInlineStrings(typed.Children, fn)
		case *CriticAddition:
			visitInlineStrings(typed.Children, fn)
		case *CriticDeletion:
			visitInlineStrings(typed.Children, fn)
		case *CriticSubstitution:
			visitInlineStrings(typed.Old, fn)
			visitInlineStrings(typed.New, fn)
		case *CriticComment:
			visitInlineStrings(typed.Children, fn)
		case *CriticHighlight:
			visitInlineStrings(typed.Children, fn)
		case *Link:
			fn(typed.Destination)
			fn(typed.Title)
			visitInlineStrings(typed.Children, fn)
		case *Image:
			fn(typed.Source)
			fn(typed.Title)
			visitInlineStrings(typed.Children, fn)
		}
	}
}
