package adf

// Node kinds produced by the converter. Anything else is passed
// through opaquely by the serializer.
const (
	NodeDoc         = "doc"
	NodeParagraph   = "paragraph"
	NodeHeading     = "heading"
	NodeBulletList  = "bulletList"
	NodeOrderedList = "orderedList"
	NodeListItem    = "listItem"
	NodeCodeBlock   = "codeBlock"
	NodeText        = "text"
	NodeMention     = "mention"
	NodeHardBreak   = "hardBreak"
)

// Mark kinds attachable to a text node.
const (
	MarkCode   = "code"
	MarkStrong = "strong"
	MarkEm     = "em"
	MarkLink   = "link"
)

// Document is the root of an ADF tree, the shape the Jira API expects
// for rich-text fields (issue description, comment body). Content is
// always serialized, even when empty.
type Document struct {
	Version int     `json:"version"`
	Type    string  `json:"type"`
	Content []*Node `json:"content"`
}

// Node represents an ADF node
type Node struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Marks   []*Mark                `json:"marks,omitempty"`
	Content []*Node                `json:"content,omitempty"`
}

// Mark represents formatting marks in ADF
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// NewDocument returns an empty version-1 document.
func NewDocument() *Document {
	return &Document{
		Version: 1,
		Type:    NodeDoc,
		Content: []*Node{},
	}
}

func newTextNode(text string, marks ...*Mark) *Node {
	n := &Node{Type: NodeText, Text: text}
	if len(marks) > 0 {
		n.Marks = marks
	}
	return n
}
