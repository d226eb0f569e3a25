package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athapong/jira-cli/pkg/adf"
)

func TestToCommentNodeMatchesWireFormat(t *testing.T) {
	doc := adf.FromText("# Title\n\nSee `go doc` for **details**")

	body := toCommentNode(doc)
	require.NotNil(t, body)

	data, err := json.Marshal(body)
	require.NoError(t, err)

	want, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(data))
}

func TestFromCommentNodeRoundTrip(t *testing.T) {
	doc := adf.FromText("line one\nline two\n\n- bullet\n\n```sh\nls\n```")

	got := fromCommentNode(toCommentNode(doc))
	require.NotNil(t, got)
	assert.Equal(t, adf.ToText(doc), adf.ToText(got))
}

func TestBridgeNilSafety(t *testing.T) {
	assert.Nil(t, toCommentNode(nil))
	assert.Nil(t, fromCommentNode(nil))
	assert.Equal(t, "", adf.ToText(fromCommentNode(nil)))
}
