// Package commands implements the CLI commands for the assemble build plan evaluator.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/assemble/internal/app"
	"go.trai.ch/assemble/internal/build"
	"go.trai.ch/assemble/internal/core/domain"
)

// CLI represents the command line interface for assemble.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions) func(context.Context) error
	Plan(ctx context.Context, opts app.PlanOptions) error
	Check(ctx context.Context, opts app.CheckOptions) error
	Match(ctx context.Context, opts app.MatchOptions) error
	Classify(ctx context.Context, opts app.ClassifyOptions) error
	ChunkName(ctx context.Context, opts app.ChunkNameOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "assemble",
		Short:         "Evaluate deterministic build plans for web assets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write log output as JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a line for every finished telemetry span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		trace, _ := cmd.Flags().GetBool("trace")
		c.shutdown = c.app.ConfigureLogging(app.LogOptions{JSON: jsonLogs, Quiet: quiet, Trace: trace})
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newMatchCmd())
	rootCmd.AddCommand(c.newClassifyCmd())
	rootCmd.AddCommand(c.newChunkNameCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		err = errors.Join(err, c.shutdown(context.WithoutCancel(ctx)))
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "", "Build mode: development or production (default $"+domain.ModeEnvVar+")")
}

// modeFrom returns the --mode flag, falling back to the mode environment variable.
func modeFrom(cmd *cobra.Command) string {
	mode, _ := cmd.Flags().GetString("mode")
	if mode == "" {
		mode = os.Getenv(domain.ModeEnvVar)
	}
	return mode
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(domain.FormatAuto), "Output format: auto, yaml, json, or text")
}
