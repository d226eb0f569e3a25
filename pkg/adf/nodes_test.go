package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMention(t *testing.T) {
	node := NewMention("5b10ac8d", "Jane Doe")

	assert.Equal(t, NodeMention, node.Type)
	assert.Equal(t, map[string]interface{}{
		"id":       "5b10ac8d",
		"text":     "Jane Doe",
		"userType": "DEFAULT",
	}, node.Attrs)
	assert.Empty(t, node.Content)
}

func TestNewLinkMark(t *testing.T) {
	mark := NewLinkMark("https://example.com", "Example")
	assert.Equal(t, MarkLink, mark.Type)
	assert.Equal(t, "https://example.com", mark.Attrs["href"])
	assert.Equal(t, "Example", mark.Attrs["title"])

	bare := NewLinkMark("https://example.com", "")
	_, hasTitle := bare.Attrs["title"]
	assert.False(t, hasTitle)
}
