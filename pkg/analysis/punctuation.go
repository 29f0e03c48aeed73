package analysis

import (
	"github.com/qiwenlab/proofgate/pkg/model"
)

// HalfwidthCommaRule flags a halfwidth comma adjacent to CJK text.
// A comma with digits on both sides is a numeric grouping separator and
// never fires.
type HalfwidthCommaRule struct{}

func (r *HalfwidthCommaRule) Info() Info {
	return Info{
		ID:       "P1-001",
		Category: "P",
		Severity: model.SeverityWarning,
		Summary:  "halfwidth comma in CJK text (numeric grouping excluded)",
	}
}

func (r *HalfwidthCommaRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	runes := rc.Runes
	for i, ch := range runes {
		if ch != ',' {
			continue
		}
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		// Grouping separator: digits on both sides.
		if isASCIIDigit(prev) && isASCIIDigit(next) {
			continue
		}
		if !isHan(prev) && !isHan(next) {
			continue
		}
		issues = append(issues, model.Issue{
			RuleID:     "P1-001",
			Category:   "P",
			Severity:   model.SeverityWarning,
			Message:    "halfwidth comma used in CJK text; use the fullwidth comma",
			Suggestion: "，",
			CanAutoFix: true,
			Location:   &model.Location{Offset: i, Length: 1},
			Evidence:   snippet(runes, i, i+1),
		})
	}
	return issues
}

// HalfwidthPeriodRule flags a halfwidth period ending a CJK clause.
// Periods inside numbers, domains, or Latin abbreviations do not fire.
type HalfwidthPeriodRule struct{}

func (r *HalfwidthPeriodRule) Info() Info {
	return Info{
		ID:       "P1-002",
		Category: "P",
		Severity: model.SeverityWarning,
		Summary:  "halfwidth period after CJK text",
	}
}

func (r *HalfwidthPeriodRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	runes := rc.Runes
	for i, ch := range runes {
		if ch != '.' {
			continue
		}
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if !isHan(prev) {
			continue
		}
		// Keep decimal points and inline Latin fragments intact.
		if isASCIIDigit(next) || isASCIILetter(next) {
			continue
		}
		issues = append(issues, model.Issue{
			RuleID:     "P1-002",
			Category:   "P",
			Severity:   model.SeverityWarning,
			Message:    "halfwidth period used in CJK text; use the fullwidth period",
			Suggestion: "。",
			CanAutoFix: true,
			Location:   &model.Location{Offset: i, Length: 1},
			Evidence:   snippet(runes, i, i+1),
		})
	}
	return issues
}
