package review

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// ErrMalformedResponse means the chat boundary was reachable but its
// payload could not be decoded against the declared review schema. Kept
// distinct from transport failures so the two are told apart in logs and
// tests.
var ErrMalformedResponse = errors.New("malformed review response")

// Category classifies a single review comment. The set is closed: the
// response schema constrains the model to these values and decoding
// rejects anything else.
type Category int

const (
	Nitpick Category = iota
	LeftoverDebug
	UnnecessaryComment
	StyleIssue
	Question
	Issue
	Suggestion
	Idea
)

var categoryNames = [...]string{
	Nitpick:            "Nitpick",
	LeftoverDebug:      "LeftoverDebug",
	UnnecessaryComment: "UnnecessaryComment",
	StyleIssue:         "StyleIssue",
	Question:           "Question",
	Issue:              "Issue",
	Suggestion:         "Suggestion",
	Idea:               "Idea",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalJSON implements json.Marshaler
func (c Category) MarshalJSON() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("unknown comment category: %d", int(c))
	}
	return json.Marshal(categoryNames[c])
}

// UnmarshalJSON implements json.Unmarshaler, rejecting names outside the
// closed category set.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, candidate := range categoryNames {
		if candidate == name {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown comment category: %q", name)
}

// CategoryNames returns the closed list of category names, in declaration
// order, for use in the response schema.
func CategoryNames() []string {
	return categoryNames[:]
}

// Comment is one remark produced by the reviewer, tied to a location in
// the change set and the quoted source line.
type Comment struct {
	Category Category `json:"category"`
	Location string   `json:"location"`
	Line     string   `json:"line_excerpt"`
	Body     string   `json:"body"`
}

// UnmarshalJSON implements json.Unmarshaler. Every field is required and
// non-nullable in the declared schema; a comment missing any of them is
// rejected instead of decoding to zero values.
func (c *Comment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Category *Category `json:"category"`
		Location *string   `json:"location"`
		Line     *string   `json:"line_excerpt"`
		Body     *string   `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Category == nil:
		return errors.New(`comment is missing required field "category"`)
	case raw.Location == nil:
		return errors.New(`comment is missing required field "location"`)
	case raw.Line == nil:
		return errors.New(`comment is missing required field "line_excerpt"`)
	case raw.Body == nil:
		return errors.New(`comment is missing required field "body"`)
	}

	c.Category = *raw.Category
	c.Location = *raw.Location
	c.Line = *raw.Line
	c.Body = *raw.Body
	return nil
}

// Review is the structured result of one review request. Comment order
// is the model's emission order and is preserved end to end.
type Review struct {
	Comments []Comment `json:"comments"`
}

// Schema returns the strict structured-output declaration for a Review.
func Schema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"comments": {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"category": {
							Type: jsonschema.String,
							Enum: CategoryNames(),
						},
						"location": {
							Type:        jsonschema.String,
							Description: "File or section the comment refers to",
						},
						"line_excerpt": {
							Type:        jsonschema.String,
							Description: "The line of code being commented on",
						},
						"body": {
							Type:        jsonschema.String,
							Description: "The review comment itself",
						},
					},
					Required:             []string{"category", "location", "line_excerpt", "body"},
					AdditionalProperties: false,
				},
			},
		},
		Required:             []string{"comments"},
		AdditionalProperties: false,
	}
}

// Parse decodes a chat-boundary payload into a Review. Any decode
// failure, including an out-of-set category or an absent required field,
// reports ErrMalformedResponse.
func Parse(raw string) (*Review, error) {
	var payload struct {
		Comments *[]Comment `json:"comments"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Comments == nil {
		return nil, fmt.Errorf(`%w: missing required field "comments"`, ErrMalformedResponse)
	}
	return &Review{Comments: *payload.Comments}, nil
}
