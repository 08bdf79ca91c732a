// Package cmd provides the root command and CLI setup for codeclimate-clippy.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/codeclimate-community/codeclimate-clippy/internal/adapter"
	"github.com/codeclimate-community/codeclimate-clippy/internal/domain"
	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

var configAdapter adapter.EngineConfigAdapter
var linterAdapter adapter.LinterRunnerAdapter
var issueWriter adapter.IssueWriterAdapter
var workflow domain.Workflow

// logOutput receives the logs when the engine config names no log file.
var logOutput io.Writer = os.Stderr

func init() {
	configAdapter = adapter.NewLocalEngineConfigAdapter(afero.NewOsFs(), adapter.DefaultEngineConfigPath)
	linterAdapter = adapter.NewLocalLinterRunnerAdapter()
	issueWriter = adapter.NewStreamIssueWriterAdapter(os.Stdout)
	workflow = domain.NewWorkflow(linterAdapter, domain.NewRecordStreamer(), issueWriter)
}

const rootLongDescription = `codeclimate-clippy is a Code Climate engine for Rust. It runs
"cargo clippy --message-format json -q" in the current directory and writes
every diagnostic under the configured include paths to stdout as a Code
Climate issue, each JSON document terminated by a NUL byte.

The engine configuration is read from ` + adapter.DefaultEngineConfigPath + `. Sources are expected
under ` + m.MountPrefix + `.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "codeclimate-clippy",
		Short:        "Code Climate engine for Rust clippy",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalysis(cmd.Context())
		},
	}
}

// runAnalysis loads the engine configuration, sets up logging and translates
// the linter output.
func runAnalysis(ctx context.Context) error {
	configureLogger(m.EngineConfig{}, logOutput)

	cfg, err := configAdapter.Load(ctx)
	if err != nil {
		return fmt.Errorf("load engine config: %w", err)
	}

	logCloser := configureLogger(cfg, logOutput)
	defer func() { _ = logCloser.Close() }()

	return workflow.Analyze(ctx, domain.AnalyzeArgs{
		IncludePaths:  cfg.IncludePaths,
		SkipMalformed: cfg.SkipMalformed,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
