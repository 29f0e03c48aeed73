package analysis

import (
	"fmt"

	"golang.org/x/text/width"

	"github.com/qiwenlab/proofgate/pkg/config"
	"github.com/qiwenlab/proofgate/pkg/model"
)

// FullwidthDigitRule flags runs of fullwidth digits (０-９) in body
// text. The suggestion folds them to their halfwidth forms.
type FullwidthDigitRule struct{}

func isFullwidthDigit(r rune) bool {
	return r >= '０' && r <= '９'
}

func (r *FullwidthDigitRule) Info() Info {
	return Info{
		ID:       "N4-001",
		Category: "N",
		Severity: model.SeverityWarning,
		Summary:  "fullwidth digits instead of halfwidth digits",
	}
}

func (r *FullwidthDigitRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	runes := rc.Runes
	for i := 0; i < len(runes); {
		if !isFullwidthDigit(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && isFullwidthDigit(runes[i]) {
			i++
		}
		run := string(runes[start:i])
		issues = append(issues, model.Issue{
			RuleID:     "N4-001",
			Category:   "N",
			Severity:   model.SeverityWarning,
			Message:    fmt.Sprintf("fullwidth digits %q; use halfwidth digits", run),
			Suggestion: width.Narrow.String(run),
			CanAutoFix: true,
			Location:   &model.Location{Offset: start, Length: i - start},
			Evidence:   snippet(runes, start, i),
		})
	}
	return issues
}

// DigitGroupingRule flags large numbers written without thousands
// separators. Four-digit numbers inside the configured calendar-year
// window, or immediately followed by 年, are legitimate and never fire.
type DigitGroupingRule struct {
	cfg config.NumericConfig
}

func NewDigitGroupingRule(cfg config.NumericConfig) *DigitGroupingRule {
	return &DigitGroupingRule{cfg: cfg}
}

func (r *DigitGroupingRule) Info() Info {
	return Info{
		ID:       "N4-002",
		Category: "N",
		Severity: model.SeverityWarning,
		Summary:  "large number missing thousands separators (calendar years excluded)",
	}
}

func (r *DigitGroupingRule) Evaluate(rc *Context) []model.Issue {
	minDigits := r.cfg.MinGroupingDigits
	if minDigits <= 0 {
		minDigits = 4
	}

	var issues []model.Issue
	runes := rc.Runes
	for i := 0; i < len(runes); {
		if !isASCIIDigit(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && isASCIIDigit(runes[i]) {
			i++
		}
		end := i

		// Fractional digits after a decimal point are not groupable,
		// and a run already preceded by a grouped head ("1,234567")
		// is a malformed-grouping problem this rule does not own.
		if start > 0 && (runes[start-1] == '.' || runes[start-1] == ',') {
			continue
		}

		n := end - start
		if n < minDigits {
			continue
		}
		if n == 4 && r.isYear(runes, start, end) {
			continue
		}

		run := string(runes[start:end])
		issues = append(issues, model.Issue{
			RuleID:     "N4-002",
			Category:   "N",
			Severity:   model.SeverityWarning,
			Message:    fmt.Sprintf("number %s should use thousands separators", run),
			Suggestion: groupDigits(run),
			CanAutoFix: true,
			Location:   &model.Location{Offset: start, Length: n},
			Evidence:   snippet(runes, start, end),
		})
	}
	return issues
}

func (r *DigitGroupingRule) isYear(runes []rune, start, end int) bool {
	if end < len(runes) && runes[end] == '年' {
		return true
	}
	v := 0
	for _, d := range runes[start:end] {
		v = v*10 + int(d-'0')
	}
	return v >= r.cfg.YearMin && v <= r.cfg.YearMax
}
