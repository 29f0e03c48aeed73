package analysis

import (
	"go.uber.org/zap"

	"github.com/qiwenlab/proofgate/pkg/config"
	"github.com/qiwenlab/proofgate/pkg/model"
)

// Engine holds the ordered, versioned registry of deterministic rules
// and runs them all against one article.
type Engine struct {
	version string
	rules   []Rule
	logger  *zap.Logger
}

// NewEngine builds an engine with an explicit version identifier. The
// version ends up in every script issue's attributed_by field, so tests
// can assert on a known value.
func NewEngine(version string, logger *zap.Logger, rules ...Rule) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{version: version, rules: rules, logger: logger}
}

// DefaultEngine registers the full proofreading rule set.
func DefaultEngine(cfg config.Config, logger *zap.Logger) *Engine {
	return NewEngine(cfg.EngineVersion, logger,
		&HalfwidthCommaRule{},
		&HalfwidthPeriodRule{},
		&AccountHomographRule{},
		&QitaVariantRule{},
		NewSlangRule(cfg.Rules.ExtraSlang),
		&FullwidthDigitRule{},
		NewDigitGroupingRule(cfg.Rules.Numeric),
		&ForbiddenHeadingRule{},
		&DeepHeadingRule{},
		NewImageAspectRule(cfg.Rules.Image),
		NewImageFormatRule(cfg.Rules.Image),
		&ImageLicenseRule{},
	)
}

func (e *Engine) Version() string { return e.version }

func (e *Engine) Rules() []Rule { return e.rules }

// Register appends a rule to the end of the registry.
func (e *Engine) Register(r Rule) {
	e.rules = append(e.rules, r)
}

// Run evaluates every registered rule against the input and concatenates
// the results in registration order. A failing rule is isolated: its
// panic is logged and the remaining rules still run. Clean or empty
// content yields an empty, non-nil slice.
func (e *Engine) Run(input *model.AnalysisInput) []model.Issue {
	issues := []model.Issue{}
	if input.Empty() {
		return issues
	}

	rc := newContext(input)
	for _, r := range e.rules {
		for _, issue := range e.evaluate(r, rc) {
			issue.Source = model.SourceScript
			issue.AttributedBy = e.version
			if issue.Confidence == 0 {
				issue.Confidence = 1.0
			}
			if err := issue.Validate(); err != nil {
				e.logger.Warn("dropping invalid rule issue",
					zap.String("rule_id", r.Info().ID),
					zap.Error(err))
				continue
			}
			issues = append(issues, issue)
		}
	}
	return issues
}

func (e *Engine) evaluate(r Rule, rc *Context) (out []model.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("rule panicked, skipping",
				zap.String("rule_id", r.Info().ID),
				zap.Any("panic", rec))
			out = nil
		}
	}()
	return r.Evaluate(rc)
}
