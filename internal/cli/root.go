// Package cli implements the tabnav command-line interface.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/tabnav/internal/app"
	"github.com/five82/tabnav/internal/nav"
	"github.com/five82/tabnav/internal/screens"
)

// Version is the tabnav release version.
const Version = "0.1.0"

// Runner starts the interactive UI. app.Run in production.
type Runner func(ctx context.Context, opts app.Options) error

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configPath string
	prefsPath  string
	startRoute string
	logLevel   string
}

// NewRootCmd creates the top-level "tabnav" command. Running it without a
// subcommand starts the UI through run.
func NewRootCmd(run Runner) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "tabnav",
		Short: "A tab bar and back stack navigator for the terminal",
		Long: "tabnav shows three top-level tabs with independent back stacks.\n" +
			"Switching tabs saves the current tab's history and restores the\n" +
			"target tab's history where it was left.",
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateLevel(flags.logLevel); err != nil {
				return err
			}
			return run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				StartRoute: flags.startRoute,
				LogLevel:   flags.logLevel,
			})
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default: ~/.config/tabnav/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default: ~/.config/tabnav/prefs.toml)")
	root.Flags().StringVar(&flags.startRoute, "start", "", `initial route, e.g. "profile?name=Ada"`)
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newRoutesCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with ctx and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCmd(app.Run)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "tabnav: %v\n", err)
		return 1
	}
	return 0
}

func validateLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("invalid --log-level %q", level)
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the destinations in the navigation graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := screens.NewGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range graph.Destinations() {
				marker := " "
				if d.ID == graph.Start().ID {
					marker = "*"
				} else if d.TopLevel {
					marker = "+"
				}
				fmt.Fprintf(out, "%s %-8s %s", marker, d.ID, d.Label)
				if d.HasArgs() {
					fmt.Fprintf(out, "  (%s)", describeArgs(d.Args))
				}
				if len(d.Children) > 0 {
					fmt.Fprintf(out, "  -> %s", strings.Join(d.Children, ", "))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func describeArgs(schema nav.ArgSchema) string {
	parts := make([]string, 0, len(schema))
	for _, f := range schema {
		s := f.Name + ": " + f.Kind.String()
		switch {
		case f.Required:
			s += " required"
		case f.Default != nil:
			s += fmt.Sprintf(" = %v", f.Default)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tabnav version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tabnav v%s\n", Version)
			return nil
		},
	}
}
