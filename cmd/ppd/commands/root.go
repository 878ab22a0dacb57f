// Package commands implements the CLI commands for ppd.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ppd/internal/app"
	"go.trai.ch/ppd/internal/build"
)

// CLI represents the command line interface for ppd.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, file string, opts app.RunOptions) error
	Setup(ctx context.Context, opts app.SetupOptions) error
	History(ctx context.Context) error
	Journal(ctx context.Context, limit int) error
}

// JSONLogger is implemented by loggers that can switch to JSON output.
type JSONLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log JSONLogger) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "ppd [file]",
		Short: "Open power system case files with the right application",
		Long: "ppd decides whether PSLF or PSSE should open a case file, using the\n" +
			"remembered choice, the file signature and finally a live open-probe.\n" +
			"Run without arguments to configure the application locations.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if jsonLog, _ := cmd.Flags().GetBool("json-log"); jsonLog && log != nil {
				log.SetJSON(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.app.Setup(cmd.Context(), app.SetupOptions{})
			}

			with, _ := cmd.Flags().GetString("with")
			manual, _ := cmd.Flags().GetBool("manual")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Run(cmd.Context(), args[0], app.RunOptions{
				With:       with,
				Manual:     manual,
				OutputMode: outputMode,
			})
		},
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

	rootCmd.Flags().StringP("with", "w", "", "Skip detection and open with primary, secondary or a program path")
	rootCmd.Flags().BoolP("manual", "m", false, "Never open automatically, always ask")
	rootCmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	rootCmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newSetupCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newJournalCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
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
