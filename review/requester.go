package review

import (
	"fmt"

	"github.com/kraev/ai-review/llm"
)

// Requester turns a change set and an instruction string into a single
// structured review request against the chat boundary.
type Requester struct {
	client llm.LLM
}

// NewRequester creates a Requester on top of an LLM client.
func NewRequester(client llm.LLM) *Requester {
	return &Requester{
		client: client,
	}
}

// Request sends instructions as the system directive and changes as the
// sole user content, constrained to the review schema. Transport errors
// and malformed payloads both abort the invocation; no partial result is
// ever returned.
func (r *Requester) Request(changes, instructions string) (*Review, error) {
	resp := r.client.Prompt(llm.Request{
		SystemPrompt: instructions,
		UserPrompt:   changes,
		Schema: &llm.Schema{
			Name: "code_review",
			Def:  Schema(),
		},
	})
	if resp.Error != nil {
		return nil, fmt.Errorf("review request failed: %w", resp.Error)
	}

	return Parse(resp.Content)
}

// Cost reports the accumulated cost of the underlying client's usage.
// False means no usage data is available; callers display zero.
func (r *Requester) Cost() (float64, bool) {
	return r.client.Cost()
}
