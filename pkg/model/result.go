package model

import "time"

// Statistics summarizes one merged issue set. The source breakdown is
// internally consistent: AITotal = AIOnly + Merged and
// ScriptTotal = ScriptOnly + Merged.
type Statistics struct {
	Total       int              `json:"total"`
	BySeverity  map[Severity]int `json:"by_severity"`
	AITotal     int              `json:"ai_total"`
	ScriptTotal int              `json:"script_total"`
	AIOnly      int              `json:"ai_only"`
	ScriptOnly  int              `json:"script_only"`
	Merged      int              `json:"merged"`
}

// AnalysisResult is the stable contract returned to the caller: the
// merged issue list, aggregate statistics, and the publish-gate verdict.
type AnalysisResult struct {
	SchemaVersion  string     `json:"schemaVersion"`
	RunID          string     `json:"run_id"`
	EngineVersion  string     `json:"engine_version"`
	Issues         []Issue    `json:"issues"`
	Stats          Statistics `json:"stats"`
	CanPublish     bool       `json:"can_publish"`
	BlockingIssues []Issue    `json:"blocking_issues"`
	Degraded       bool       `json:"degraded"`
	DegradedReason string     `json:"degraded_reason,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

func NewResult(runID, engineVersion string) *AnalysisResult {
	return &AnalysisResult{
		SchemaVersion:  SchemaVersion,
		RunID:          runID,
		EngineVersion:  engineVersion,
		Issues:         []Issue{},
		BlockingIssues: []Issue{},
		CanPublish:     true,
		Timestamp:      time.Now().UTC(),
	}
}
