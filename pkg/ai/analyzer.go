// Package ai adapts the free-form text-analysis collaborator into the
// issue shape the rest of the pipeline understands. The collaborator's
// response is untrusted, partially structured data: it is validated
// entry by entry against an explicit schema rather than taken whole.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable signals a whole-response failure: the collaborator was
// unreachable, timed out, or returned an unparseable top-level payload.
// The orchestrator reacts by degrading to script-only analysis.
var ErrUnavailable = errors.New("ai analyzer unavailable")

// ReviewRequest is the content handed to the collaborator.
type ReviewRequest struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
	HTML  string `json:"html,omitempty"`
}

// Collaborator is the opaque external text-analysis model. It returns
// the raw response body; the Adapter owns all parsing and validation.
type Collaborator interface {
	Model() string
	Review(ctx context.Context, req ReviewRequest) ([]byte, error)
}

// reviewPayload is the expected top-level response shape.
type reviewPayload struct {
	Issues []reviewIssue `json:"issues"`
}

// reviewIssue mirrors one issue entry as the collaborator reports it.
// Confidence is a pointer so a missing score is distinguishable from a
// reported zero; entries without one are malformed and dropped.
type reviewIssue struct {
	RuleID        string   `json:"rule_id"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Severity      string   `json:"severity"`
	Message       string   `json:"message"`
	Suggestion    string   `json:"suggestion"`
	Confidence    *float64 `json:"confidence"`
	CanAutoFix    bool     `json:"can_auto_fix"`
	BlocksPublish bool     `json:"blocks_publish"`
	Evidence      string   `json:"evidence"`
	Offset        *int     `json:"offset"`
	Length        int      `json:"length"`
}
