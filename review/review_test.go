package review

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraev/ai-review/llm"
)

func TestParsePreservesCommentOrder(t *testing.T) {
	raw := `{
		"comments": [
			{"category": "Issue", "location": "main.go", "line_excerpt": "a := b", "body": "first"},
			{"category": "Nitpick", "location": "util.go", "line_excerpt": "x++", "body": "second"},
			{"category": "Idea", "location": "api.go", "line_excerpt": "return nil", "body": "third"}
		]
	}`

	rev, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, rev.Comments, 3)

	assert.Equal(t, "first", rev.Comments[0].Body)
	assert.Equal(t, "second", rev.Comments[1].Body)
	assert.Equal(t, "third", rev.Comments[2].Body)
	assert.Equal(t, Issue, rev.Comments[0].Category)
	assert.Equal(t, Nitpick, rev.Comments[1].Category)
	assert.Equal(t, Idea, rev.Comments[2].Category)
}

func TestParseEmptyComments(t *testing.T) {
	rev, err := Parse(`{"comments": []}`)
	require.NoError(t, err)
	assert.Empty(t, rev.Comments)
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse(`not json at all`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseRejectsMissingCommentFields(t *testing.T) {
	// All four comment fields are required by the declared schema; a
	// missing one must not decode to a zero value (a comment without a
	// category would otherwise pass as Nitpick).
	cases := map[string]string{
		"category":     `{"comments": [{"location": "a.go", "line_excerpt": "x", "body": "y"}]}`,
		"location":     `{"comments": [{"category": "Issue", "line_excerpt": "x", "body": "y"}]}`,
		"line_excerpt": `{"comments": [{"category": "Issue", "location": "a.go", "body": "y"}]}`,
		"body":         `{"comments": [{"category": "Issue", "location": "a.go", "line_excerpt": "x"}]}`,
	}

	for field, raw := range cases {
		_, err := Parse(raw)
		require.Error(t, err, "missing %q accepted", field)
		assert.ErrorIs(t, err, ErrMalformedResponse, "missing %q", field)
		assert.ErrorContains(t, err, field)
	}
}

func TestParseRejectsNullCommentField(t *testing.T) {
	_, err := Parse(`{"comments": [{"category": null, "location": "a.go", "line_excerpt": "x", "body": "y"}]}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseRejectsMissingComments(t *testing.T) {
	for _, raw := range []string{`{}`, `{"comments": null}`} {
		_, err := Parse(raw)
		require.Error(t, err, "payload %s accepted", raw)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	}
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	raw := `{"comments": [{"category": "Bikeshed", "location": "a.go", "line_excerpt": "x", "body": "y"}]}`

	_, err := Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, name := range CategoryNames() {
		var c Category
		require.NoError(t, json.Unmarshal([]byte(`"`+name+`"`), &c))
		assert.Equal(t, name, c.String())

		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `"`+name+`"`, string(data))
	}
}

func TestSchemaConstrainsCategories(t *testing.T) {
	def := Schema()

	comments, ok := def.Properties["comments"]
	require.True(t, ok)
	require.NotNil(t, comments.Items)

	category, ok := comments.Items.Properties["category"]
	require.True(t, ok)
	assert.Equal(t, CategoryNames(), category.Enum)
	assert.ElementsMatch(t,
		[]string{"category", "location", "line_excerpt", "body"},
		comments.Items.Required)
}

// fakeLLM is a canned chat boundary for Requester tests.
type fakeLLM struct {
	resp     llm.Response
	lastReq  llm.Request
	cost     float64
	costSeen bool
}

func (f *fakeLLM) Prompt(req llm.Request) llm.Response {
	f.lastReq = req
	return f.resp
}

func (f *fakeLLM) Cost() (float64, bool) {
	return f.cost, f.costSeen
}

func TestRequesterSendsChangesAndInstructions(t *testing.T) {
	client := &fakeLLM{
		resp: llm.Response{Content: `{"comments": []}`},
	}
	requester := NewRequester(client)

	_, err := requester.Request("some diff", "review carefully")
	require.NoError(t, err)

	assert.Equal(t, "review carefully", client.lastReq.SystemPrompt)
	assert.Equal(t, "some diff", client.lastReq.UserPrompt)
	require.NotNil(t, client.lastReq.Schema)
	assert.Equal(t, "code_review", client.lastReq.Schema.Name)
}

func TestRequesterTransportErrorIsNotMalformed(t *testing.T) {
	client := &fakeLLM{
		resp: llm.Response{Error: errors.New("connection refused")},
	}
	requester := NewRequester(client)

	_, err := requester.Request("some diff", "instructions")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestRequesterMalformedPayload(t *testing.T) {
	client := &fakeLLM{
		resp: llm.Response{Content: `{"comments": "nope"}`},
	}
	requester := NewRequester(client)

	_, err := requester.Request("some diff", "instructions")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRequesterCostDelegation(t *testing.T) {
	client := &fakeLLM{cost: 3.30, costSeen: true}
	requester := NewRequester(client)

	cost, ok := requester.Cost()
	assert.True(t, ok)
	assert.InDelta(t, 3.30, cost, 0.0001)
}
