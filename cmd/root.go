package cmd

import (
	"os"

	"toai/pkg/clipboard"
	"toai/pkg/combine"
	"toai/pkg/config"
	"toai/pkg/logging"
	"toai/pkg/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "to-ai"

// NewRootCmd builds the to-ai command. Sinks left nil are filled with the
// command's stdout and the system clipboard.
func NewRootCmd(sinks combine.Sinks) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Dump project files to a simple AI-readable format",
		Long: `to-ai walks a project directory and concatenates its text files into one
document: a "# path" header per file followed by the content in a fenced block.

Common dependency, build, VCS and binary paths are ignored by default. The
document is copied to the clipboard unless --output or --stdout is given.`,
		Version:       version.Get().Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logging.Setup(debug, appName, version.Get().Version)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runDump(cmd, sinks)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.SetGlobalNormalizationFunc(config.NormalizeAliases)
	cmd.MarkFlagsMutuallyExclusive(config.KeyOutput, config.KeyStdout)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// runDump loads the arguments and performs one dump.
func runDump(cmd *cobra.Command, sinks combine.Sinks) error {
	logger := logging.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	configPath, err := cmd.Flags().GetString(config.KeyConfig)
	if err != nil {
		return err
	}

	args, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return err
	}

	if sinks.Stdout == nil {
		sinks.Stdout = cmd.OutOrStdout()
	}
	if sinks.Clipboard == nil {
		sinks.Clipboard = clipboard.New(logger)
	}

	result, err := combine.RunCombine(args, sinks, logger)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if len(result.Skipped) > 0 {
		color.New(color.FgYellow).Fprintf(stderr, "Skipped %d unreadable file(s)\n", len(result.Skipped))
	}
	if result.Destination == combine.DestinationClipboard {
		color.New(color.FgGreen).Fprintln(stderr, "Copied to clipboard!")
	}
	return nil
}

// Execute runs the root command against the process streams.
func Execute() error {
	return NewRootCmd(combine.Sinks{Stdout: os.Stdout}).Execute()
}
