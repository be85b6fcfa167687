// Package commands implements the CLI commands for lambdazip.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lambdazip/internal/app"
	"go.trai.ch/lambdazip/internal/build"
	"go.trai.ch/lambdazip/internal/core/domain"
)

// CLI represents the command line interface for lambdazip.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, in io.Reader, out io.Writer, opts app.RunOptions) error
	Package(ctx context.Context, req domain.Request, opts app.RunOptions) (domain.Result, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "lambdazip",
		Short: "Build deterministic deployment archives for serverless functions",
		Long: `Reads a JSON request from stdin, packages the code file, its extra files and
its installed dependencies into a reproducible zip, and writes the archive path
and its base64 SHA-256 digest as JSON to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), runOptions(cmd))
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

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the settings file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log installer output and packaging steps")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")
	return app.RunOptions{
		ConfigPath: configPath,
		Verbose:    verbose,
		JSONLogs:   jsonLogs,
	}
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

// SetInput sets the stream requests are read from. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
