package analysis

import (
	"github.com/qiwenlab/proofgate/pkg/model"
)

// AccountHomographRule flags 帐 where the financial 账 is meant.
// 帐 is correct in curtain/tent compounds, so those suppress the match
// entirely rather than firing at a lower severity.
type AccountHomographRule struct{}

// Compounds in which 帐 is the correct character. The first set keys on
// the rune following 帐, the second on the rune preceding it.
var (
	legitAfterZhang  = map[rune]bool{'篷': true, '幕': true, '子': true}
	legitBeforeZhang = map[rune]bool{'蚊': true, '营': true, '幔': true}
)

func (r *AccountHomographRule) Info() Info {
	return Info{
		ID:       "T2-001",
		Category: "T",
		Severity: model.SeverityError,
		Summary:  "帐 used where the financial 账 is required",
	}
}

func (r *AccountHomographRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	runes := rc.Runes
	for i, ch := range runes {
		if ch != '帐' {
			continue
		}
		if i+1 < len(runes) && legitAfterZhang[runes[i+1]] {
			continue
		}
		if i > 0 && legitBeforeZhang[runes[i-1]] {
			continue
		}
		issues = append(issues, model.Issue{
			RuleID:     "T2-001",
			Category:   "T",
			Severity:   model.SeverityError,
			Message:    "帐 should be 账 in financial terms (帐号→账号, 结帐→结账)",
			Suggestion: "账",
			CanAutoFix: true,
			Location:   &model.Location{Offset: i, Length: 1},
			Evidence:   snippet(runes, i, i+1),
		})
	}
	return issues
}

// QitaVariantRule flags 其它 in favor of the standard 其他.
type QitaVariantRule struct{}

func (r *QitaVariantRule) Info() Info {
	return Info{
		ID:       "T2-002",
		Category: "T",
		Severity: model.SeverityWarning,
		Summary:  "其它 should be written 其他",
	}
}

func (r *QitaVariantRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	runes := rc.Runes
	target := []rune("其它")
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] != target[0] || runes[i+1] != target[1] {
			continue
		}
		issues = append(issues, model.Issue{
			RuleID:     "T2-002",
			Category:   "T",
			Severity:   model.SeverityWarning,
			Message:    "其它 is a nonstandard variant; use 其他",
			Suggestion: "其他",
			CanAutoFix: true,
			Location:   &model.Location{Offset: i, Length: 2},
			Evidence:   snippet(runes, i, i+2),
		})
	}
	return issues
}
