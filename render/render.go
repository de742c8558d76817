package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kraev/ai-review/review"
)

// categoryColors is the fixed display palette, one 256-color entry per
// comment category. Total over the closed category set; not configurable.
var categoryColors = map[review.Category]*color.Color{
	review.Nitpick:            ansi256(208), // Orange
	review.LeftoverDebug:      ansi256(9),   // Bright Red
	review.UnnecessaryComment: ansi256(8),   // Gray
	review.StyleIssue:         ansi256(226), // Yellow
	review.Question:           ansi256(39),  // Blue
	review.Issue:              ansi256(196), // Red
	review.Suggestion:         ansi256(34),  // Green
	review.Idea:               ansi256(141), // Purple
}

func ansi256(code int) *color.Color {
	return color.New(38, 5, color.Attribute(code))
}

func colorFor(cat review.Category) *color.Color {
	if c, ok := categoryColors[cat]; ok {
		return c
	}
	return color.New()
}

// Renderer prints a review as a human-scannable terminal report.
type Renderer struct {
	out io.Writer
}

// New creates a Renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
	}
}

// Render writes the report: a cost header followed by one block per
// comment, in received order. No filtering, sorting or truncation; the
// output is a faithful projection of the review.
func (r *Renderer) Render(rev *review.Review, cost float64) {
	fmt.Fprintf(r.out, "Code Review Results [$%.2f]\n", cost)
	fmt.Fprintln(r.out, "===================")
	fmt.Fprintln(r.out)

	for _, comment := range rev.Comments {
		c := colorFor(comment.Category)
		tag := comment.Category.String()

		c.Fprintf(r.out, "[%s] in: %s", tag, comment.Location)
		fmt.Fprintln(r.out)

		// Indent by the tag width so the excerpt lines up under the text
		// that follows the bracketed tag.
		indent := strings.Repeat(" ", len(tag)+1)
		fmt.Fprintf(r.out, "%sline: %s\n", indent, strings.TrimSpace(comment.Line))

		c.Fprint(r.out, comment.Body)
		fmt.Fprint(r.out, "\n\n")
	}
}
