package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otdb/otdb-terminal/internal/cli"
	"github.com/otdb/otdb-terminal/pkg/files"
	"github.com/otdb/otdb-terminal/pkg/models"
)

// NewRootCommand creates the otdb command tree.
func NewRootCommand(version string) *cobra.Command {
	var (
		quiet   bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "otdb",
		Short: "Terminal client for the osu! tournament database",
		Long:  `otdb fills in osu! tournament database forms (mappools, tournaments) from the terminal, with validated fields and live search against the otdb API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.Configure(quiet, noColor, cmd.ErrOrStderr())
			if format, _ := cmd.Flags().GetString("output"); format != "" {
				return cli.ValidateOutputFormat(format)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json or yaml (default from settings)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols and colors in messages")

	rootCmd.AddCommand(
		NewInitCommand(),
		NewVersionCommand(version),
		NewFormCommand(),
		NewCheckCommand(),
		NewSearchCommand(),
	)
	return rootCmd
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize an otdb project",
		Long:  `Creates the .otdb folder with default settings and example forms in the current directory`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}

			cli.Infof("Initializing otdb project in %s...", cwd)
			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			cli.Successf("Created .otdb folder structure")
			cli.Infof("Run 'otdb form mappool' to fill in the example mappool form.")
			return nil
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of otdb",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "otdb version %s\n", version)
		},
	}
}

// outputFormat returns the --output flag, falling back to the settings.
func outputFormat(cmd *cobra.Command, settings *models.Settings) string {
	if f := cmd.Flag("output"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	if settings != nil && settings.Output.Format != "" {
		return settings.Output.Format
	}
	return string(cli.FormatText)
}
