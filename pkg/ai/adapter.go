package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/qiwenlab/proofgate/pkg/model"
)

// Adapter translates the collaborator's JSON response into model.Issue
// values with source "ai" and the model name as attribution.
type Adapter struct {
	client Collaborator
	logger *zap.Logger
}

func NewAdapter(client Collaborator, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{client: client, logger: logger}
}

func (a *Adapter) Model() string {
	return a.client.Model()
}

// Analyze invokes the collaborator and maps its issue entries 1:1 into
// the internal shape. Malformed individual entries are dropped with a
// warning; an unusable whole response returns ErrUnavailable so the
// orchestrator can proceed script-only.
func (a *Adapter) Analyze(ctx context.Context, input *model.AnalysisInput) ([]model.Issue, error) {
	if input.Empty() {
		return []model.Issue{}, nil
	}

	req := ReviewRequest{Text: input.Text, HTML: input.HTML}
	if input.Meta != nil {
		req.Title = input.Meta.Title
	}

	raw, err := a.client.Review(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var payload reviewPayload
	if err := json.Unmarshal(cleanJSON(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %v", ErrUnavailable, err)
	}

	issues := make([]model.Issue, 0, len(payload.Issues))
	for idx, entry := range payload.Issues {
		issue, err := a.normalize(entry)
		if err != nil {
			a.logger.Warn("dropping malformed ai issue entry",
				zap.Int("index", idx),
				zap.String("rule_id", entry.RuleID),
				zap.Error(err))
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func (a *Adapter) normalize(entry reviewIssue) (model.Issue, error) {
	if entry.RuleID == "" {
		return model.Issue{}, fmt.Errorf("missing rule_id")
	}
	if entry.Message == "" {
		return model.Issue{}, fmt.Errorf("missing message")
	}
	if entry.Confidence == nil {
		return model.Issue{}, fmt.Errorf("missing confidence")
	}

	severity := model.Severity(strings.ToLower(entry.Severity))
	if !severity.Valid() {
		return model.Issue{}, fmt.Errorf("unknown severity %q", entry.Severity)
	}

	issue := model.Issue{
		RuleID:        entry.RuleID,
		Category:      entry.Category,
		Subcategory:   entry.Subcategory,
		Severity:      severity,
		Message:       entry.Message,
		Suggestion:    entry.Suggestion,
		Confidence:    *entry.Confidence,
		CanAutoFix:    entry.CanAutoFix,
		BlocksPublish: entry.BlocksPublish,
		Source:        model.SourceAI,
		AttributedBy:  a.client.Model(),
		Evidence:      entry.Evidence,
	}
	if entry.Category == "" && len(entry.RuleID) > 0 {
		issue.Category = entry.RuleID[:1]
	}
	if entry.Offset != nil {
		issue.Location = &model.Location{Offset: *entry.Offset, Length: entry.Length}
	}
	if err := issue.Validate(); err != nil {
		return model.Issue{}, err
	}
	return issue, nil
}

// cleanJSON strips markdown code fences and surrounding whitespace from
// model responses. Models often wrap JSON in ```json ... ``` blocks.
func cleanJSON(data []byte) []byte {
	s := bytes.TrimSpace(data)
	if len(s) == 0 {
		return s
	}
	if bytes.HasPrefix(s, []byte("```")) {
		if idx := bytes.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		}
		if bytes.HasSuffix(s, []byte("```")) {
			s = s[:len(s)-3]
		}
		s = bytes.TrimSpace(s)
	}
	return s
}
