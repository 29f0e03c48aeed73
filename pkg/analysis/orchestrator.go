package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/qiwenlab/proofgate/pkg/model"
)

// Analyzer is the AI side of the pipeline. ai.Adapter satisfies it.
type Analyzer interface {
	Model() string
	Analyze(ctx context.Context, input *model.AnalysisInput) ([]model.Issue, error)
}

// Orchestrator sequences one full analysis run: deterministic rules and
// the AI analyzer in parallel, then merge, statistics, and the publish
// gate. Every run returns a well-formed result; AI failure only flags
// degraded mode.
type Orchestrator struct {
	engine    *Engine
	analyzer  Analyzer
	merger    *Merger
	aiTimeout time.Duration
	logger    *zap.Logger
}

// NewOrchestrator wires the pipeline. analyzer may be nil, in which case
// every run is script-only degraded mode.
func NewOrchestrator(engine *Engine, analyzer Analyzer, merger *Merger, aiTimeout time.Duration, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if aiTimeout <= 0 {
		aiTimeout = 30 * time.Second
	}
	return &Orchestrator{
		engine:    engine,
		analyzer:  analyzer,
		merger:    merger,
		aiTimeout: aiTimeout,
		logger:    logger,
	}
}

// Analyze runs one article through the whole pipeline. The two
// evaluators share only the read-only input, so they run concurrently;
// the merge never starts before both have finished or the AI side has
// definitively failed.
func (o *Orchestrator) Analyze(ctx context.Context, input *model.AnalysisInput) *model.AnalysisResult {
	res := model.NewResult(uuid.NewString(), o.engine.Version())

	var (
		scriptIssues []model.Issue
		aiIssues     []model.Issue
		aiErr        error
	)

	var g errgroup.Group
	g.Go(func() error {
		scriptIssues = o.engine.Run(input)
		return nil
	})
	g.Go(func() error {
		if o.analyzer == nil {
			return nil
		}
		aiCtx, cancel := context.WithTimeout(ctx, o.aiTimeout)
		defer cancel()
		aiIssues, aiErr = o.analyzer.Analyze(aiCtx, input)
		return nil
	})
	// Both goroutines always return nil: AI failure is degraded mode,
	// never a run failure.
	_ = g.Wait()

	switch {
	case o.analyzer == nil:
		res.Degraded = true
		res.DegradedReason = "ai analyzer not configured; script-only analysis"
	case aiErr != nil:
		res.Degraded = true
		if errors.Is(aiErr, context.DeadlineExceeded) {
			res.DegradedReason = "ai analysis timed out; script-only analysis"
		} else {
			res.DegradedReason = "ai analysis unavailable; script-only analysis"
		}
		aiIssues = nil
		o.logger.Warn("degrading to script-only analysis", zap.Error(aiErr))
	}

	res.Issues = o.merger.Merge(aiIssues, scriptIssues)
	res.Stats = Summarize(res.Issues)
	res.CanPublish, res.BlockingIssues = Gate(res.Issues)
	return res
}
