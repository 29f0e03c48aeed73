package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/qiwenlab/proofgate/pkg/model"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

type Renderer interface {
	Render(w io.Writer, result *model.AnalysisResult) error
}

func New(f Format) Renderer {
	switch f {
	case FormatJSON:
		return &jsonRenderer{}
	default:
		return &tableRenderer{}
	}
}

type jsonRenderer struct{}

func (r *jsonRenderer) Render(w io.Writer, result *model.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

type tableRenderer struct{}

func (r *tableRenderer) Render(w io.Writer, result *model.AnalysisResult) error {
	verdict := "YES"
	if !result.CanPublish {
		verdict = "NO"
	}
	fmt.Fprintf(w, "Run %s (engine %s)\n", result.RunID, result.EngineVersion)
	if result.Degraded {
		fmt.Fprintf(w, "Degraded: %s\n", result.DegradedReason)
	}
	fmt.Fprintf(w, "Issues: %d total (%d critical, %d error, %d warning, %d info)\n",
		result.Stats.Total,
		result.Stats.BySeverity[model.SeverityCritical],
		result.Stats.BySeverity[model.SeverityError],
		result.Stats.BySeverity[model.SeverityWarning],
		result.Stats.BySeverity[model.SeverityInfo],
	)
	fmt.Fprintf(w, "Sources: %d script-only, %d ai-only, %d merged\n",
		result.Stats.ScriptOnly, result.Stats.AIOnly, result.Stats.Merged)
	fmt.Fprintf(w, "Can publish: %s\n\n", verdict)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SEVERITY\tRULE\tSOURCE\tCONFIDENCE\tMESSAGE\n")
	for _, i := range result.Issues {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f%%\t%s\n",
			strings.ToUpper(string(i.Severity)),
			i.RuleID,
			i.Source,
			i.Confidence*100,
			i.Message,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.BlockingIssues) > 0 {
		fmt.Fprintf(w, "\nPublishing blocked by:\n")
		for _, i := range result.BlockingIssues {
			fmt.Fprintf(w, "  [%s] %s: %s\n", i.Severity, i.RuleID, i.Message)
			if i.Evidence != "" {
				fmt.Fprintf(w, "         evidence: %s\n", i.Evidence)
			}
		}
	}
	return nil
}
