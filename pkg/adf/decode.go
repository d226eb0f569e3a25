package adf

import (
	"fmt"
	"strings"
)

// ToText renders an ADF document back into plain text, the inverse of
// FromText. It is total: a nil document, or one with no content,
// renders as the empty string, and unknown node kinds are treated as
// transparent containers.
func ToText(doc *Document) string {
	if doc == nil || len(doc.Content) == 0 {
		return ""
	}

	var result strings.Builder
	for i, node := range doc.Content {
		if i > 0 {
			result.WriteString("\n")
		}
		convertNode(node, &result)
	}
	return result.String()
}

// Convert renders a single ADF node to text.
func Convert(node *Node) string {
	if node == nil {
		return ""
	}

	var result strings.Builder
	convertNode(node, &result)
	return result.String()
}

func convertNode(node *Node, result *strings.Builder) {
	if node == nil {
		return
	}

	switch node.Type {
	case NodeDoc:
		convertChildren(node, result)
	case NodeParagraph:
		convertChildren(node, result)
		result.WriteString("\n")
	case NodeHeading:
		convertHeading(node, result)
	case NodeText:
		convertText(node, result)
	case NodeMention:
		convertMention(node, result)
	case NodeHardBreak:
		result.WriteString("\n")
	case NodeBulletList, NodeOrderedList:
		convertList(node, result)
	case NodeListItem:
		convertChildren(node, result)
	case NodeCodeBlock:
		convertCodeBlock(node, result)
	default:
		convertChildren(node, result)
	}
}

func convertHeading(node *Node, result *strings.Builder) {
	level := 1
	switch l := node.Attrs["level"].(type) {
	case float64:
		level = int(l)
	case int:
		level = l
	}
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	result.WriteString(strings.Repeat("#", level) + " ")
	convertChildren(node, result)
	result.WriteString("\n")
}

func convertText(node *Node, result *strings.Builder) {
	text := node.Text
	for _, mark := range node.Marks {
		switch mark.Type {
		case MarkCode:
			text = "`" + text + "`"
		case MarkStrong:
			text = "**" + text + "**"
		case MarkEm:
			text = "*" + text + "*"
		case MarkLink:
			if href, ok := mark.Attrs["href"].(string); ok {
				text = fmt.Sprintf("[%s](%s)", text, href)
			}
		}
	}
	result.WriteString(text)
}

func convertMention(node *Node, result *strings.Builder) {
	name, _ := node.Attrs["text"].(string)
	if name == "" {
		name, _ = node.Attrs["id"].(string)
	}
	result.WriteString("@" + name)
}

// convertList renders each item on its own bulleted line. Both list
// kinds share the same glyph and ordered lists are not renumbered.
func convertList(node *Node, result *strings.Builder) {
	for _, item := range node.Content {
		var itemText strings.Builder
		convertChildren(item, &itemText)
		result.WriteString("• " + strings.TrimSpace(itemText.String()) + "\n")
	}
}

func convertCodeBlock(node *Node, result *strings.Builder) {
	language, _ := node.Attrs["language"].(string)
	result.WriteString(fenceMarker + language + "\n")
	convertChildren(node, result)
	result.WriteString("\n" + fenceMarker + "\n")
}

func convertChildren(node *Node, result *strings.Builder) {
	for _, child := range node.Content {
		convertNode(child, result)
	}
}
