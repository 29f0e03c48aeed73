package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qiwenlab/proofgate/pkg/ai"
	"github.com/qiwenlab/proofgate/pkg/analysis"
	"github.com/qiwenlab/proofgate/pkg/article"
	"github.com/qiwenlab/proofgate/pkg/config"
	"github.com/qiwenlab/proofgate/pkg/logging"
	"github.com/qiwenlab/proofgate/pkg/render"
)

// errPublishBlocked signals the analyze command's non-zero exit for a
// blocked article without bypassing deferred cleanup.
var errPublishBlocked = errors.New("publishing blocked")

func main() {
	root := &cobra.Command{
		Use:   "proofgate",
		Short: "Proofread articles and gate publishing",
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newRulesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		configPath string
		metaPath   string
		format     string
		outPath    string
		useAI      bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <article.md|article.html>",
		Short: "Run the proofreading analysis on one article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			logger := logging.New(debug)
			defer logger.Sync() //nolint:errcheck

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			input, err := article.Load(args[0], metaPath)
			if err != nil {
				return err
			}

			engine := analysis.DefaultEngine(cfg, logger)

			var analyzer analysis.Analyzer
			if useAI || cfg.AI.Enabled {
				apiKey := os.Getenv("GEMINI_API_KEY")
				if apiKey == "" {
					fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; running script-only")
				} else {
					reviewer, err := ai.NewGeminiReviewer(ctx, apiKey, cfg.AI.Model)
					if err != nil {
						return err
					}
					analyzer = ai.NewAdapter(reviewer, logger)
				}
			}

			orch := analysis.NewOrchestrator(engine, analyzer,
				analysis.NewMerger(cfg.Merge), cfg.AI.Timeout(), logger)

			fmt.Fprintf(os.Stderr, "Analyzing %s...\n", args[0])
			result := orch.Analyze(ctx, input)

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := render.New(render.Format(format)).Render(out, result); err != nil {
				return fmt.Errorf("render result: %w", err)
			}

			if !result.CanPublish {
				// Exit non-zero via main so the deferred logger sync and
				// output close still run. The renderer already reported
				// the verdict, so suppress cobra's error line.
				cmd.SilenceErrors = true
				return errPublishBlocked
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to proofgate.yaml")
	cmd.Flags().StringVar(&metaPath, "meta", "", "path to the article metadata sidecar (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVar(&useAI, "ai", false, "also run the AI analyzer (needs GEMINI_API_KEY)")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose logging")

	return cmd
}

func newRulesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered deterministic rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			engine := analysis.DefaultEngine(cfg, nil)

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ID\tCATEGORY\tSEVERITY\tBLOCKS\tSUMMARY\n")
			for _, r := range engine.Rules() {
				info := r.Info()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
					info.ID, info.Category, info.Severity, info.BlocksPublish, info.Summary)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to proofgate.yaml")
	return cmd
}
