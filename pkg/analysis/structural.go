package analysis

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/qiwenlab/proofgate/pkg/model"
)

// ForbiddenHeadingRule flags <h1> inside article body HTML. The CMS
// renders the title as the page's only h1, so a second one is a hard
// publishing requirement violation.
type ForbiddenHeadingRule struct{}

func (r *ForbiddenHeadingRule) Info() Info {
	return Info{
		ID:            "D5-001",
		Category:      "D",
		Severity:      model.SeverityError,
		BlocksPublish: true,
		Summary:       "h1 heading inside article body",
	}
}

func (r *ForbiddenHeadingRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	for _, h := range findHeadings(rc.Doc) {
		if h.level != 1 {
			continue
		}
		issues = append(issues, model.Issue{
			RuleID:        "D5-001",
			Category:      "D",
			Severity:      model.SeverityError,
			Message:       "article body must not contain an <h1>; start sections at <h2>",
			BlocksPublish: true,
			Evidence:      "<h1>" + h.text + "</h1>",
		})
	}
	return issues
}

// DeepHeadingRule flags headings deeper than h4; the site stylesheet
// only styles h2 through h4.
type DeepHeadingRule struct{}

func (r *DeepHeadingRule) Info() Info {
	return Info{
		ID:       "D5-002",
		Category: "D",
		Severity: model.SeverityWarning,
		Summary:  "heading deeper than h4",
	}
}

func (r *DeepHeadingRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	for _, h := range findHeadings(rc.Doc) {
		if h.level < 5 {
			continue
		}
		issues = append(issues, model.Issue{
			RuleID:   "D5-002",
			Category: "D",
			Severity: model.SeverityWarning,
			Message:  "headings deeper than <h4> are not styled; flatten the outline",
			Evidence: "<" + h.tag + ">" + h.text + "</" + h.tag + ">",
		})
	}
	return issues
}

type heading struct {
	tag   string
	level int
	text  string
}

// findHeadings walks the shared parsed tree once per calling rule; the
// tree itself is parsed a single time by the engine.
func findHeadings(doc *html.Node) []heading {
	if doc == nil {
		return nil
	}
	var out []heading
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && len(n.Data) == 2 && n.Data[0] == 'h' &&
			n.Data[1] >= '1' && n.Data[1] <= '6' {
			out = append(out, heading{
				tag:   n.Data,
				level: int(n.Data[1] - '0'),
				text:  truncate(nodeText(n), 60),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
