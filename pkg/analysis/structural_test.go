package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiwenlab/proofgate/pkg/model"
)

func htmlContext(markup string) *Context {
	return newContext(&model.AnalysisInput{HTML: markup})
}

func TestForbiddenHeadingRule_H1Blocks(t *testing.T) {
	rule := &ForbiddenHeadingRule{}
	issues := rule.Evaluate(htmlContext("<h1>大标题</h1><p>正文</p>"))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, "D5-001", issue.RuleID)
	assert.True(t, issue.BlocksPublish)
	assert.Equal(t, model.SeverityError, issue.Severity)
	assert.Contains(t, issue.Evidence, "大标题")
}

func TestForbiddenHeadingRule_H2Allowed(t *testing.T) {
	rule := &ForbiddenHeadingRule{}
	assert.Empty(t, rule.Evaluate(htmlContext("<h2>小节</h2><p>正文</p>")))
}

func TestForbiddenHeadingRule_NoHTML(t *testing.T) {
	rule := &ForbiddenHeadingRule{}
	assert.Empty(t, rule.Evaluate(textContext("纯文本没有结构。")))
}

func TestDeepHeadingRule_H5AndH6Flagged(t *testing.T) {
	rule := &DeepHeadingRule{}
	issues := rule.Evaluate(htmlContext("<h5>五级</h5><h6>六级</h6><h4>四级</h4>"))
	assert.Len(t, issues, 2)
	for _, i := range issues {
		assert.Equal(t, "D5-002", i.RuleID)
		assert.False(t, i.BlocksPublish)
	}
}

func TestFindHeadings_NestedMarkup(t *testing.T) {
	rc := htmlContext("<div><h2>带<em>强调</em>的标题</h2></div>")
	hs := findHeadings(rc.Doc)
	require.Len(t, hs, 1)
	assert.Equal(t, "h2", hs[0].tag)
	assert.Equal(t, "带强调的标题", hs[0].text)
}
