package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"multilanguage-agent/config"
	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/repository/memory"
	"multilanguage-agent/internal/conversation/usecase"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/persona"
	"multilanguage-agent/pkg/llmprovider"
	"multilanguage-agent/pkg/log"
)

type rootOptions struct {
	plain   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the English and German assistants from the terminal",
		Long: `A terminal client for the multi-language chat agent.

Messages are routed by language: English goes to the English assistant,
German to the German assistant, anything else gets a short notice.

Examples:
  chat repl
  chat repl --strategy team
  chat detect "Wie geht es dir?"`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "disable colors and markdown rendering")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stdout at debug level")

	rootCmd.AddCommand(newREPLCmd(opts), newDetectCmd(opts))
	return rootCmd
}

func (o *rootOptions) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true})
}

// buildIdentifier loads config and builds the language identifier only.
func buildIdentifier(ctx context.Context, l log.Logger) (*config.Config, *langid.Identifier, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	detector, err := langid.NewDetectorFromConfig(ctx, cfg.Language, cfg.GoogleTranslate)
	if err != nil {
		l.Warnf(ctx, "primary detector unavailable, using keywords only: %v", err)
	}
	id, err := langid.New(l, detector, langid.PolicyFromConfig(cfg.Language))
	if err != nil {
		return nil, nil, fmt.Errorf("language identifier: %w", err)
	}
	return cfg, id, nil
}

// buildUseCase wires the full conversation stack for a single local session.
func buildUseCase(ctx context.Context, l log.Logger, strategy string) (conversation.UseCase, error) {
	cfg, id, err := buildIdentifier(ctx, l)
	if err != nil {
		return nil, err
	}

	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}

	personas, err := persona.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("personas: %w", err)
	}

	if strategy == "" {
		strategy = cfg.Dispatch.Strategy
	}
	d, err := dispatcher.New(strategy, l, personas, manager, dispatcher.Options{
		Temperature: cfg.Dispatch.Temperature,
		MaxTokens:   cfg.Dispatch.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return usecase.New(l, memory.New(l, 1, 0), id, d), nil
}
