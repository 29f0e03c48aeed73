package analysis

import (
	"unicode"

	"github.com/qiwenlab/proofgate/pkg/model"
)

// SlangRule flags informal register from a fixed term list. The correct
// replacement depends on context, so it never auto-fixes.
type SlangRule struct {
	terms []string
}

var defaultSlang = []string{
	"yyds",
	"绝绝子",
	"栓Q",
	"狗带",
	"咋整",
	"啥玩意",
}

func NewSlangRule(extra []string) *SlangRule {
	terms := make([]string, 0, len(defaultSlang)+len(extra))
	terms = append(terms, defaultSlang...)
	terms = append(terms, extra...)
	return &SlangRule{terms: terms}
}

func (r *SlangRule) Info() Info {
	return Info{
		ID:       "S3-001",
		Category: "S",
		Severity: model.SeverityInfo,
		Summary:  "informal or slang term unsuitable for the publication register",
	}
}

// Evaluate matches case-insensitively in rune space. Simple case mapping
// is rune-to-rune but not byte-length-preserving, so byte offsets in a
// ToLower'd string do not line up with the original text; rune indices do.
func (r *SlangRule) Evaluate(rc *Context) []model.Issue {
	var issues []model.Issue
	haystack := lowerRunes(rc.Runes)
	for _, term := range r.terms {
		needle := lowerRunes([]rune(term))
		if len(needle) == 0 {
			continue
		}
		from := 0
		for {
			idx := indexRunes(haystack[from:], needle)
			if idx < 0 {
				break
			}
			off := from + idx
			issues = append(issues, model.Issue{
				RuleID:   "S3-001",
				Category: "S",
				Severity: model.SeverityInfo,
				Message:  "informal term \"" + term + "\" does not fit the publication register",
				Location: &model.Location{Offset: off, Length: len(needle)},
				Evidence: snippet(rc.Runes, off, off+len(needle)),
			})
			from = off + len(needle)
		}
	}
	return issues
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, ch := range rs {
		out[i] = unicode.ToLower(ch)
	}
	return out
}

func indexRunes(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, ch := range needle {
			if haystack[i+j] != ch {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
