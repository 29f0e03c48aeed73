package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiwenlab/proofgate/pkg/model"
)

func textContext(text string) *Context {
	return newContext(&model.AnalysisInput{Text: text})
}

func TestHalfwidthCommaRule_GroupingSeparatorExcluded(t *testing.T) {
	rule := &HalfwidthCommaRule{}
	issues := rule.Evaluate(textContext("价格是 1,000 美元。"))
	assert.Empty(t, issues)
}

func TestHalfwidthCommaRule_FiresInCJKText(t *testing.T) {
	rule := &HalfwidthCommaRule{}
	issues := rule.Evaluate(textContext("这是测试,应该检测到。"))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, "P1-001", issue.RuleID)
	assert.Equal(t, model.SeverityWarning, issue.Severity)
	assert.Equal(t, "，", issue.Suggestion)
	assert.True(t, issue.CanAutoFix)
	require.NotNil(t, issue.Location)
	assert.Equal(t, 4, issue.Location.Offset)
	assert.Contains(t, issue.Evidence, ",")
}

func TestHalfwidthCommaRule_DigitThenCJKStillFires(t *testing.T) {
	rule := &HalfwidthCommaRule{}
	issues := rule.Evaluate(textContext("到了2023,我们继续。"))
	assert.Len(t, issues, 1)
}

func TestHalfwidthCommaRule_PureLatinIgnored(t *testing.T) {
	rule := &HalfwidthCommaRule{}
	issues := rule.Evaluate(textContext("one, two, three"))
	assert.Empty(t, issues)
}

func TestHalfwidthCommaRule_EmptyInput(t *testing.T) {
	rule := &HalfwidthCommaRule{}
	assert.Empty(t, rule.Evaluate(textContext("")))
	assert.Empty(t, rule.Evaluate(newContext(nil)))
}

func TestHalfwidthPeriodRule_FiresAfterCJK(t *testing.T) {
	rule := &HalfwidthPeriodRule{}
	issues := rule.Evaluate(textContext("这一段结束了.下一段开始。"))

	require.Len(t, issues, 1)
	assert.Equal(t, "P1-002", issues[0].RuleID)
	assert.Equal(t, "。", issues[0].Suggestion)
}

func TestHalfwidthPeriodRule_DecimalAndDomainExcluded(t *testing.T) {
	rule := &HalfwidthPeriodRule{}
	assert.Empty(t, rule.Evaluate(textContext("圆周率约为3.14159。")))
	assert.Empty(t, rule.Evaluate(textContext("请访问 example.com 查看。")))
}

func TestHalfwidthPeriodRule_SentenceEnd(t *testing.T) {
	rule := &HalfwidthPeriodRule{}
	issues := rule.Evaluate(textContext("全文结束."))
	assert.Len(t, issues, 1)
}
