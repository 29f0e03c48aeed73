package model

import "fmt"

const SchemaVersion = "v1"

// Severity orders issues by ascending impact.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

var severityOrder = map[Severity]int{
	SeverityInfo:     0,
	SeverityWarning:  1,
	SeverityError:    2,
	SeverityCritical: 3,
}

// Rank returns the ordinal position of s in the severity ladder,
// or -1 for an unknown severity.
func (s Severity) Rank() int {
	if r, ok := severityOrder[s]; ok {
		return r
	}
	return -1
}

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	_, ok := severityOrder[s]
	return ok
}

// Source tags which evaluator produced an issue. Issues start as
// SourceAI or SourceScript; only the merger rewrites one to SourceMerged.
type Source string

const (
	SourceAI     Source = "ai"
	SourceScript Source = "script"
	SourceMerged Source = "merged"
)

// Location is a character-offset position within the article text.
// Document-level issues (image metadata, heading structure) carry none.
type Location struct {
	Offset int `json:"offset"`
	Length int `json:"length,omitempty"`
}

// Issue is one finding produced by the deterministic engine or the AI
// analyzer, describing a single problem in the article.
type Issue struct {
	RuleID        string    `json:"rule_id"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Severity      Severity  `json:"severity"`
	Message       string    `json:"message"`
	Suggestion    string    `json:"suggestion,omitempty"`
	Confidence    float64   `json:"confidence"`
	CanAutoFix    bool      `json:"can_auto_fix"`
	BlocksPublish bool      `json:"blocks_publish"`
	Source        Source    `json:"source"`
	AttributedBy  string    `json:"attributed_by"`
	Location      *Location `json:"location,omitempty"`
	Evidence      string    `json:"evidence,omitempty"`
}

// Validate checks the structural invariants every issue must hold
// regardless of which evaluator produced it.
func (i Issue) Validate() error {
	if i.RuleID == "" {
		return fmt.Errorf("issue has empty rule_id")
	}
	if !i.Severity.Valid() {
		return fmt.Errorf("issue %s: unknown severity %q", i.RuleID, i.Severity)
	}
	if i.Confidence < 0 || i.Confidence > 1 {
		return fmt.Errorf("issue %s: confidence %v outside [0,1]", i.RuleID, i.Confidence)
	}
	if i.BlocksPublish && i.Severity.Rank() < SeverityError.Rank() {
		return fmt.Errorf("issue %s: blocks_publish requires severity error or critical, got %q", i.RuleID, i.Severity)
	}
	switch i.Source {
	case SourceAI, SourceScript, SourceMerged:
	default:
		return fmt.Errorf("issue %s: unknown source %q", i.RuleID, i.Source)
	}
	return nil
}
