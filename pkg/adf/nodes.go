package adf

// NewMention builds a mention node for an Atlassian account. The
// display name is what the serializer renders; the id is what the API
// resolves.
func NewMention(accountID, displayName string) *Node {
	return &Node{
		Type: NodeMention,
		Attrs: map[string]interface{}{
			"id":       accountID,
			"text":     displayName,
			"userType": "DEFAULT",
		},
	}
}

// NewLinkMark builds a link mark to attach to a text node. The title
// attr is omitted when empty.
func NewLinkMark(href, title string) *Mark {
	attrs := map[string]interface{}{"href": href}
	if title != "" {
		attrs["title"] = title
	}
	return &Mark{Type: MarkLink, Attrs: attrs}
}
