package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiwenlab/proofgate/pkg/model"
)

func TestAccountHomographRule_FiresOnAccountCompound(t *testing.T) {
	rule := &AccountHomographRule{}
	issues := rule.Evaluate(textContext("请登录您的帐号进行操作。"))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, "T2-001", issue.RuleID)
	assert.Equal(t, model.SeverityError, issue.Severity)
	assert.Equal(t, "账", issue.Suggestion)
	assert.True(t, issue.CanAutoFix)
}

func TestAccountHomographRule_TentCompoundsExcluded(t *testing.T) {
	rule := &AccountHomographRule{}
	assert.Empty(t, rule.Evaluate(textContext("露营时搭好帐篷。")))
	assert.Empty(t, rule.Evaluate(textContext("床边挂着蚊帐。")))
	assert.Empty(t, rule.Evaluate(textContext("士兵们返回营帐休息。")))
}

func TestAccountHomographRule_MinimalVariantFires(t *testing.T) {
	// Same sentence shape as the tent case, but a financial compound.
	rule := &AccountHomographRule{}
	issues := rule.Evaluate(textContext("露营前请先结帐。"))
	assert.Len(t, issues, 1)
}

func TestAccountHomographRule_MultipleOccurrences(t *testing.T) {
	rule := &AccountHomographRule{}
	issues := rule.Evaluate(textContext("帐号和帐户都要核对，但帐篷不用。"))
	assert.Len(t, issues, 2)
}

func TestQitaVariantRule_Fires(t *testing.T) {
	rule := &QitaVariantRule{}
	issues := rule.Evaluate(textContext("其它内容暂不讨论。"))

	require.Len(t, issues, 1)
	assert.Equal(t, "T2-002", issues[0].RuleID)
	assert.Equal(t, "其他", issues[0].Suggestion)
	assert.Equal(t, 0, issues[0].Location.Offset)
	assert.Equal(t, 2, issues[0].Location.Length)
}

func TestQitaVariantRule_StandardFormIgnored(t *testing.T) {
	rule := &QitaVariantRule{}
	assert.Empty(t, rule.Evaluate(textContext("其他内容暂不讨论。")))
}
