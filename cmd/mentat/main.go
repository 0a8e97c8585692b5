package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webteam-ai/mentat/agent"
	"github.com/webteam-ai/mentat/config"
	"github.com/webteam-ai/mentat/llm"
	"github.com/webteam-ai/mentat/repl"
	"github.com/webteam-ai/mentat/toolkit"
)

const systemPrompt = "You are an expert web developer."

var (
	flagModel   string
	flagRootDir string
	flagTrace   bool
)

var rootCmd = &cobra.Command{
	Use:   "mentat",
	Short: "Web-development agent REPL",
	Long: `mentat is an interactive REPL that routes prompts to three
tool-equipped agents:

  sql   check SQL syntax and suggest improvements
  knex  translate basic SELECT statements to Knex.js CoffeeScript
  code  review code snippets for style and logic issues

A prompt runs every agent whose keyword it mentions.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagModel, "model", "", "model to use (default from config)")
	rootCmd.Flags().StringVar(&flagRootDir, "root-dir", "", "snippet workspace root (default from config)")
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "enable request trace logging")
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagRootDir != "" {
		cfg.RootDir = flagRootDir
	}
	if flagTrace {
		cfg.TraceEnabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.TraceEnabled {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()
	}

	adapter, err := llm.NewGollmAdapter(cfg.Provider, cfg.OpenAIAPIKey, llm.WithModel(cfg.Model))
	if err != nil {
		return fmt.Errorf("creating provider adapter: %w", err)
	}

	clientOpts := []llm.ClientOption{llm.WithProvider(cfg.Provider, adapter)}
	if cfg.TraceEnabled {
		clientOpts = append(clientOpts, llm.WithMiddleware(llm.TraceMiddleware(logger, cfg.TraceProject)))
	}
	client := llm.NewClient(clientOpts...)
	defer client.Close()

	ws := agent.NewWorkspace(cfg.RootDir)

	agentCfg := agent.DefaultConfig()
	agentCfg.MaxToolRounds = cfg.MaxToolRounds

	codeAgent := agent.New("code", cfg.Model, systemPrompt, client, ws, &agentCfg)
	toolkit.RegisterCodeTools(codeAgent.Registry())
	toolkit.RegisterSnippetTools(codeAgent.Registry())

	knexAgent := agent.New("knex", cfg.Model, systemPrompt, client, ws, &agentCfg)
	toolkit.RegisterKnexTool(knexAgent.Registry())

	sqlAgent := agent.New("sql", cfg.Model, systemPrompt, client, ws, &agentCfg)
	toolkit.RegisterSQLTools(sqlAgent.Registry())

	defer codeAgent.Close()
	defer knexAgent.Close()
	defer sqlAgent.Close()

	entries := []repl.Entry{
		{Keyword: "code", Agent: codeAgent},
		{Keyword: "knex", Agent: knexAgent},
		{Keyword: "sql", Agent: sqlAgent},
	}

	r := repl.New(os.Stdin, os.Stdout, entries, repl.WithLogger(logger))
	err = r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
