package analysis

import (
	"github.com/qiwenlab/proofgate/pkg/config"
	"github.com/qiwenlab/proofgate/pkg/model"
)

// Merger reconciles AI-sourced and script-sourced issues that describe
// the same finding into one attributed record.
type Merger struct {
	prefixLen int
}

func NewMerger(cfg config.MergeConfig) *Merger {
	n := cfg.EvidencePrefixLen
	if n <= 0 {
		n = 64
	}
	return &Merger{prefixLen: n}
}

// dedupKey identifies "the same finding" across sources: the rule ID
// plus a fixed-length rune prefix of the evidence snippet. The prefix
// is also what downstream decision recording keys on, so it must be
// stable across repeated runs.
func (m *Merger) dedupKey(i model.Issue) string {
	ev := []rune(i.Evidence)
	if len(ev) > m.prefixLen {
		ev = ev[:m.prefixLen]
	}
	return i.RuleID + "|" + string(ev)
}

// Merge deduplicates the two issue sets. Colliding pairs produce one
// record based on the script side: deterministic rules encode the
// authoritative severity, category, location, and blocking policy for
// their own rule ID. Confidence takes the max of the pair, the script
// suggestion wins when non-empty, and attribution joins both sides with
// the AI side first. Non-colliding issues pass through unchanged.
func (m *Merger) Merge(aiIssues, scriptIssues []model.Issue) []model.Issue {
	type slot struct {
		issue    model.Issue
		consumed bool
	}

	byKey := make(map[string]*slot, len(scriptIssues))
	scriptSlots := make([]*slot, 0, len(scriptIssues))
	for _, s := range scriptIssues {
		sl := &slot{issue: s}
		scriptSlots = append(scriptSlots, sl)
		if _, dup := byKey[m.dedupKey(s)]; !dup {
			byKey[m.dedupKey(s)] = sl
		}
	}

	var aiOnly []model.Issue
	for _, a := range aiIssues {
		sl, ok := byKey[m.dedupKey(a)]
		if !ok || sl.consumed {
			aiOnly = append(aiOnly, a)
			continue
		}
		sl.issue = mergePair(a, sl.issue)
		sl.consumed = true
	}

	merged := make([]model.Issue, 0, len(scriptSlots)+len(aiOnly))
	for _, sl := range scriptSlots {
		merged = append(merged, sl.issue)
	}
	merged = append(merged, aiOnly...)
	return merged
}

func mergePair(ai, script model.Issue) model.Issue {
	out := script
	if ai.Confidence > out.Confidence {
		out.Confidence = ai.Confidence
	}
	if out.Suggestion == "" {
		out.Suggestion = ai.Suggestion
	}
	out.Source = model.SourceMerged
	out.AttributedBy = ai.AttributedBy + "," + script.AttributedBy
	return out
}
