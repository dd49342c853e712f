package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uddict/dictation-app/cli/internal/cmd"
	"github.com/uddict/dictation-app/cli/internal/ui"
)

func main() {
	env := cmd.NewEnv()
	root := newRootCmd(env)
	err := root.Execute()
	env.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd(env *cmd.Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "notes",
		Short: "Notes - dictated clinical notes",
		Long:  "Notes CLI: review and edit dictated clinical records, save snapshots, and generate documents.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return env.RunApp(ui.ProgressVariant, nil, false)
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return env.Setup()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&env.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(cmd.NoteCmd(env, ui.ProgressVariant))
	root.AddCommand(cmd.NoteCmd(env, ui.SOAPVariant))
	root.AddCommand(cmd.ExportCmd(env))
	root.AddCommand(cmd.SavedCmd(env))
	root.AddCommand(cmd.HealthCmd(env))
	return root
}
