package adf

import "strings"

const fenceMarker = "```"

// builder accumulates block nodes while consuming input line by line.
// The current paragraph is the only carried state besides the fence
// buffer; flushing it is what closes a block.
type builder struct {
	doc *Document

	paragraph []*Node

	inFence   bool
	fenceLang string
	fenceBuf  []string
}

// FromText converts informal plain/markdown-ish text into an ADF
// document. It never fails: malformed markup degrades to literal text.
func FromText(text string) *Document {
	doc := NewDocument()
	if text == "" {
		return doc
	}

	b := &builder{doc: doc}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		b.consume(line, i == len(lines)-1)
	}
	b.finish()

	// Non-empty input that resolved to zero blocks (e.g. only blank
	// lines) still gets one empty paragraph; only the empty string maps
	// to an empty content sequence.
	if len(doc.Content) == 0 {
		doc.Content = append(doc.Content, &Node{Type: NodeParagraph})
	}
	return doc
}

func (b *builder) consume(line string, last bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, fenceMarker) {
		b.toggleFence(trimmed)
		return
	}

	if b.inFence {
		b.fenceBuf = append(b.fenceBuf, line)
		return
	}

	if trimmed == "" {
		b.flushParagraph()
		return
	}

	if level, rest, ok := headingLine(trimmed); ok {
		b.flushParagraph()
		b.doc.Content = append(b.doc.Content, &Node{
			Type:    NodeHeading,
			Attrs:   map[string]interface{}{"level": level},
			Content: parseInline(rest),
		})
		return
	}

	if rest, ok := bulletLine(trimmed); ok {
		b.flushParagraph()
		b.doc.Content = append(b.doc.Content, listNode(NodeBulletList, rest))
		return
	}

	if rest, ok := orderedLine(trimmed); ok {
		b.flushParagraph()
		b.doc.Content = append(b.doc.Content, listNode(NodeOrderedList, rest))
		return
	}

	// Ordinary text joins the open paragraph. A synthetic "\n" text
	// node separates it from the next line; the flush trims it when it
	// would trail.
	b.paragraph = append(b.paragraph, parseInline(line)...)
	if !last {
		b.paragraph = append(b.paragraph, newTextNode("\n"))
	}
}

func (b *builder) toggleFence(trimmed string) {
	if b.inFence {
		node := &Node{
			Type:  NodeCodeBlock,
			Attrs: map[string]interface{}{"language": b.fenceLang},
		}
		if len(b.fenceBuf) > 0 {
			node.Content = []*Node{newTextNode(strings.Join(b.fenceBuf, "\n"))}
		}
		b.doc.Content = append(b.doc.Content, node)
		b.inFence = false
		b.fenceBuf = nil
		return
	}

	b.flushParagraph()
	lang := strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
	if lang == "" {
		lang = "plain"
	}
	b.inFence = true
	b.fenceLang = lang
}

// flushParagraph closes the in-flight paragraph, trimming the trailing
// synthetic break first.
func (b *builder) flushParagraph() {
	if b.paragraph == nil {
		return
	}
	children := b.paragraph
	if n := len(children); n > 0 {
		if lastChild := children[n-1]; lastChild.Type == NodeText && lastChild.Text == "\n" && len(lastChild.Marks) == 0 {
			children = children[:n-1]
		}
	}
	b.doc.Content = append(b.doc.Content, &Node{Type: NodeParagraph, Content: children})
	b.paragraph = nil
}

// finish flushes trailing state at end of input. An unterminated fence
// still emits its code block with whatever was buffered.
func (b *builder) finish() {
	if b.inFence {
		b.toggleFence(fenceMarker)
		return
	}
	b.flushParagraph()
}

// headingLine matches 1-6 leading '#' characters, one space, then text.
func headingLine(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	rest := line[level+1:]
	if rest == "" {
		return 0, "", false
	}
	return level, rest, true
}

// bulletLine matches '-' or '*' followed by whitespace.
func bulletLine(line string) (string, bool) {
	if len(line) < 2 || (line[0] != '-' && line[0] != '*') {
		return "", false
	}
	if line[1] != ' ' && line[1] != '\t' {
		return "", false
	}
	return strings.TrimSpace(line[1:]), true
}

// orderedLine matches digits, '.', one space, text.
func orderedLine(line string) (string, bool) {
	dot := strings.IndexByte(line, '.')
	if dot <= 0 {
		return "", false
	}
	for i := 0; i < dot; i++ {
		if line[i] < '0' || line[i] > '9' {
			return "", false
		}
	}
	if dot+1 >= len(line) || line[dot+1] != ' ' {
		return "", false
	}
	rest := strings.TrimSpace(line[dot+1:])
	if rest == "" {
		return "", false
	}
	return rest, true
}

// listNode wraps one line's content as a single-item list. Consecutive
// list lines each produce their own list node rather than being grouped
// into one multi-item list; downstream consumers rely on this shape.
func listNode(kind, content string) *Node {
	return &Node{
		Type: kind,
		Content: []*Node{{
			Type: NodeListItem,
			Content: []*Node{{
				Type:    NodeParagraph,
				Content: parseInline(content),
			}},
		}},
	}
}
