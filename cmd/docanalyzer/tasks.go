package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivendra/docanalyzer/internal/config"
	"github.com/shivendra/docanalyzer/internal/llm"
	"github.com/shivendra/docanalyzer/internal/prompt"
	"github.com/shivendra/docanalyzer/internal/task"
	"github.com/shivendra/docanalyzer/internal/vector"
)

type runFlags struct {
	configPath  string
	provider    string
	model       string
	temperature float64
	pipeline    string
	topK        int
	out         string
	verbose     bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&f.provider, "provider", "", "completion provider: openai|gemini|anthropic|static")
	cmd.Flags().StringVar(&f.model, "model", "", "model identifier (default gpt-4o-mini)")
	cmd.Flags().Float64Var(&f.temperature, "temperature", 0, "sampling temperature (default per task)")
	cmd.Flags().StringVar(&f.pipeline, "pipeline", "", "prompt strategy: direct|retrieval")
	cmd.Flags().IntVar(&f.topK, "top-k", 0, "retrieval pipeline: number of chunks to embed")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the result to this file")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
}

// setup runs the startup phase: load config, apply flag overrides, build
// the provider client and prompt strategy. A missing credential fails here,
// before any document is touched.
func setup(cmd *cobra.Command, f *runFlags) (*task.Runner, *config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.provider != "" {
		cfg.Provider = f.provider
	}
	if f.model != "" {
		cfg.Model = f.model
	}
	if f.pipeline != "" {
		cfg.Pipeline = f.pipeline
	}
	if f.topK > 0 {
		cfg.TopK = f.topK
	}
	// Credentials are checked against the provider actually selected,
	// flags included, not the config-file default.
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	key, err := cfg.Credential()
	if err != nil {
		return nil, nil, err
	}
	client, err := llm.New(cmd.Context(), cfg.Provider, key)
	if err != nil {
		return nil, nil, err
	}

	var builder prompt.Builder = prompt.Direct{}
	if cfg.Pipeline == config.PipelineRetrieval {
		embKey, err := cfg.EmbeddingCredential()
		if err != nil {
			return nil, nil, err
		}
		builder = &prompt.Retrieval{
			Embedder:     vector.NewOpenAIEmbedder(embKey, ""),
			TopK:         cfg.TopK,
			ChunkSize:    cfg.ChunkSize,
			ChunkOverlap: cfg.ChunkOverlap,
		}
	}

	return task.NewRunner(client, builder, cfg.Model, cfg.Logger), cfg, nil
}

func (f *runFlags) options(cmd *cobra.Command, cfg *config.Config) task.Options {
	opts := task.Options{Model: f.model}
	if cmd.Flags().Changed("temperature") {
		t := f.temperature
		opts.Temperature = &t
	} else if cfg.Temperature != nil {
		opts.Temperature = cfg.Temperature
	}
	return opts
}

// emit prints the result and, with --out, writes the verbatim export
// artifact next to it.
func emit(cmd *cobra.Command, f *runFlags, res task.Result) error {
	if len(res.Blocks) > 0 {
		for i, q := range res.Blocks {
			fmt.Fprintf(cmd.OutOrStdout(), "Q%d: %s\n\n", i+1, q)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	}
	if f.out != "" {
		if err := os.WriteFile(f.out, []byte(res.Export()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.out, err)
		}
	}
	return nil
}

func taskCmd(use, short string, kind prompt.Kind) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := setup(cmd, &f)
			if err != nil {
				return err
			}
			res := runner.Run(cmd.Context(), task.Request{
				Kind:    kind,
				Path:    args[0],
				Options: f.options(cmd, cfg),
			})
			return emit(cmd, &f, res)
		},
	}
	addRunFlags(cmd, &f)
	return cmd
}

func summaryCmd() *cobra.Command {
	return taskCmd("summary", "Summarize a document in bullet points", prompt.Summary)
}

func insightsCmd() *cobra.Command {
	return taskCmd("insights", "Derive insights, patterns, and anomalies from a document", prompt.Insights)
}

func mcqCmd() *cobra.Command {
	var f runFlags
	var count int
	cmd := &cobra.Command{
		Use:   "mcq <file>",
		Short: "Generate multiple-choice questions from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := setup(cmd, &f)
			if err != nil {
				return err
			}
			res := runner.Run(cmd.Context(), task.Request{
				Kind:    prompt.MCQ,
				Path:    args[0],
				Count:   count,
				Options: f.options(cmd, cfg),
			})
			return emit(cmd, &f, res)
		},
	}
	addRunFlags(cmd, &f)
	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of questions to generate")
	return cmd
}

func askCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "ask <file> <question>",
		Short: "Answer a question about a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := setup(cmd, &f)
			if err != nil {
				return err
			}
			res := runner.Run(cmd.Context(), task.Request{
				Kind:     prompt.Answer,
				Path:     args[0],
				Question: args[1],
				Options:  f.options(cmd, cfg),
			})
			return emit(cmd, &f, res)
		},
	}
	addRunFlags(cmd, &f)
	return cmd
}

func indexCmd() *cobra.Command {
	var f runFlags
	var chunkSize int
	cmd := &cobra.Command{
		Use:   "index <file>",
		Short: "Report how many chunks a rebuilt retrieval index would hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := setup(cmd, &f)
			if err != nil {
				return err
			}
			if chunkSize <= 0 {
				chunkSize = cfg.ChunkSize
			}
			fmt.Fprintln(cmd.OutOrStdout(), runner.IndexSummary(args[0], chunkSize))
			return nil
		},
	}
	addRunFlags(cmd, &f)
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "chunk size in characters (default 1024)")
	return cmd
}
