package analysis

import "github.com/qiwenlab/proofgate/pkg/model"

// Summarize aggregates one merged issue set into counts by severity and
// by provenance. AITotal counts everything the AI contributed to (ai or
// merged); ScriptTotal counts everything the rules contributed to.
func Summarize(issues []model.Issue) model.Statistics {
	stats := model.Statistics{
		BySeverity: map[model.Severity]int{
			model.SeverityInfo:     0,
			model.SeverityWarning:  0,
			model.SeverityError:    0,
			model.SeverityCritical: 0,
		},
	}
	for _, i := range issues {
		stats.Total++
		stats.BySeverity[i.Severity]++
		switch i.Source {
		case model.SourceAI:
			stats.AIOnly++
		case model.SourceScript:
			stats.ScriptOnly++
		case model.SourceMerged:
			stats.Merged++
		}
	}
	stats.AITotal = stats.AIOnly + stats.Merged
	stats.ScriptTotal = stats.ScriptOnly + stats.Merged
	return stats
}

// Gate decides whether the article may publish. It is a pure function
// of the issue set: publication is blocked exactly when at least one
// issue carries blocks_publish, and the returned list is exactly that
// subset so callers can render the reasons without re-scanning.
func Gate(issues []model.Issue) (bool, []model.Issue) {
	blocking := []model.Issue{}
	for _, i := range issues {
		if i.BlocksPublish {
			blocking = append(blocking, i)
		}
	}
	return len(blocking) == 0, blocking
}
