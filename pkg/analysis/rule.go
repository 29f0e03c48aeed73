package analysis

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/qiwenlab/proofgate/pkg/model"
)

// Info describes one registered rule for listings and attribution.
type Info struct {
	ID            string
	Category      string
	Severity      model.Severity
	BlocksPublish bool
	Summary       string
}

// Rule is one deterministic check. Evaluate must be pure and stateless,
// must tolerate empty or malformed input, and returns zero issues when
// the rule does not apply. Each rule owns exactly one rule ID.
type Rule interface {
	Info() Info
	Evaluate(rc *Context) []model.Issue
}

// Context is the per-run view handed to every rule. The HTML tree is
// parsed once by the engine so structural rules share it instead of
// re-parsing per rule.
type Context struct {
	Input *model.AnalysisInput
	Text  string
	Runes []rune
	Doc   *html.Node
}

func newContext(input *model.AnalysisInput) *Context {
	rc := &Context{Input: input}
	if input == nil {
		return rc
	}
	rc.Text = input.Text
	rc.Runes = []rune(input.Text)
	if input.HTML != "" {
		// html.Parse is tolerant and only fails on reader errors,
		// which cannot happen with strings.Reader.
		if doc, err := html.Parse(strings.NewReader(input.HTML)); err == nil {
			rc.Doc = doc
		}
	}
	return rc
}
