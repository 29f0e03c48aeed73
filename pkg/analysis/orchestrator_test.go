package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/qiwenlab/proofgate/pkg/config"
	"github.com/qiwenlab/proofgate/pkg/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeAnalyzer scripts the AI side of a run.
type fakeAnalyzer struct {
	issues []model.Issue
	err    error
	delay  time.Duration
}

func (f *fakeAnalyzer) Model() string { return "fake-model" }

func (f *fakeAnalyzer) Analyze(ctx context.Context, input *model.AnalysisInput) ([]model.Issue, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.issues, f.err
}

func newTestOrchestrator(analyzer Analyzer, aiTimeout time.Duration) *Orchestrator {
	cfg := config.Default()
	return NewOrchestrator(DefaultEngine(cfg, nil), analyzer, NewMerger(cfg.Merge), aiTimeout, nil)
}

func TestOrchestrator_MergedRun(t *testing.T) {
	ai := &fakeAnalyzer{issues: []model.Issue{{
		RuleID:       "P1-001",
		Category:     "P",
		Severity:     model.SeverityWarning,
		Message:      "半角逗号",
		Confidence:   0.8,
		Source:       model.SourceAI,
		AttributedBy: "fake-model",
		Evidence:     "这是测试,应该检测到。",
	}}}
	o := newTestOrchestrator(ai, time.Second)

	res := o.Analyze(context.Background(), &model.AnalysisInput{Text: "这是测试,应该检测到。"})

	assert.False(t, res.Degraded)
	assert.Equal(t, model.SchemaVersion, res.SchemaVersion)
	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, model.SourceMerged, res.Issues[0].Source)
	assert.Equal(t, 1, res.Stats.Merged)
	assert.Equal(t, res.Stats.AIOnly+res.Stats.Merged, res.Stats.AITotal)
	assert.True(t, res.CanPublish)
}

func TestOrchestrator_NilAnalyzerDegrades(t *testing.T) {
	o := newTestOrchestrator(nil, time.Second)
	res := o.Analyze(context.Background(), &model.AnalysisInput{Text: "这是测试,应该检测到。"})

	assert.True(t, res.Degraded)
	assert.Contains(t, res.DegradedReason, "not configured")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, model.SourceScript, res.Issues[0].Source)
}

func TestOrchestrator_AIErrorDegradesToScriptOnly(t *testing.T) {
	ai := &fakeAnalyzer{err: context.Canceled}
	o := newTestOrchestrator(ai, time.Second)
	res := o.Analyze(context.Background(), &model.AnalysisInput{Text: "结帐时间到了。"})

	assert.True(t, res.Degraded)
	assert.Contains(t, res.DegradedReason, "unavailable")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "T2-001", res.Issues[0].RuleID)
	assert.Equal(t, 0, res.Stats.AITotal)
}

func TestOrchestrator_AITimeoutDegrades(t *testing.T) {
	ai := &fakeAnalyzer{delay: 500 * time.Millisecond}
	o := newTestOrchestrator(ai, 20*time.Millisecond)
	res := o.Analyze(context.Background(), &model.AnalysisInput{Text: "这是测试,应该检测到。"})

	assert.True(t, res.Degraded)
	assert.Contains(t, res.DegradedReason, "timed out")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, model.SourceScript, res.Issues[0].Source)
}

func TestOrchestrator_AIIssuesDiscardedOnError(t *testing.T) {
	// Partial output from a failed call must not leak into the result.
	ai := &fakeAnalyzer{
		issues: []model.Issue{{RuleID: "P1-001", Source: model.SourceAI}},
		err:    context.Canceled,
	}
	o := newTestOrchestrator(ai, time.Second)
	res := o.Analyze(context.Background(), &model.AnalysisInput{Text: "这是一段规范的正文。"})

	assert.True(t, res.Degraded)
	assert.Empty(t, res.Issues)
	assert.True(t, res.CanPublish)
}

func TestOrchestrator_BlockingIssueGatesPublish(t *testing.T) {
	o := newTestOrchestrator(nil, time.Second)
	res := o.Analyze(context.Background(), &model.AnalysisInput{
		Text: "正文内容。",
		HTML: "<h1>不允许的标题</h1>",
	})

	assert.False(t, res.CanPublish)
	require.Len(t, res.BlockingIssues, 1)
	assert.Equal(t, "D5-001", res.BlockingIssues[0].RuleID)
}
