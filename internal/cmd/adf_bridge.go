package cmd

import (
	"github.com/ctreminiom/go-atlassian/pkg/infra/models"

	"github.com/athapong/jira-cli/pkg/adf"
)

// toCommentNode converts a converter document into the request body
// shape the go-atlassian models expect. The tree is copied verbatim;
// no markup policy lives here.
func toCommentNode(doc *adf.Document) *models.CommentNodeScheme {
	if doc == nil {
		return nil
	}

	body := &models.CommentNodeScheme{
		Version: doc.Version,
		Type:    doc.Type,
	}
	for _, child := range doc.Content {
		body.Content = append(body.Content, nodeToScheme(child))
	}
	return body
}

func nodeToScheme(node *adf.Node) *models.CommentNodeScheme {
	if node == nil {
		return nil
	}

	scheme := &models.CommentNodeScheme{
		Type:  node.Type,
		Text:  node.Text,
		Attrs: node.Attrs,
	}
	for _, mark := range node.Marks {
		scheme.Marks = append(scheme.Marks, &models.MarkScheme{
			Type:  mark.Type,
			Attrs: mark.Attrs,
		})
	}
	for _, child := range node.Content {
		scheme.Content = append(scheme.Content, nodeToScheme(child))
	}
	return scheme
}

// fromCommentNode converts a rich-text field received from the API
// back into a converter document, ready for the serializer.
func fromCommentNode(body *models.CommentNodeScheme) *adf.Document {
	if body == nil {
		return nil
	}

	doc := adf.NewDocument()
	if body.Version != 0 {
		doc.Version = body.Version
	}
	for _, child := range body.Content {
		doc.Content = append(doc.Content, schemeToNode(child))
	}
	return doc
}

func schemeToNode(scheme *models.CommentNodeScheme) *adf.Node {
	if scheme == nil {
		return nil
	}

	node := &adf.Node{
		Type:  scheme.Type,
		Text:  scheme.Text,
		Attrs: scheme.Attrs,
	}
	for _, mark := range scheme.Marks {
		node.Marks = append(node.Marks, &adf.Mark{
			Type:  mark.Type,
			Attrs: mark.Attrs,
		})
	}
	for _, child := range scheme.Content {
		node.Content = append(node.Content, schemeToNode(child))
	}
	return node
}
