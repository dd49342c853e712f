package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uddict/dictation-app/cli/internal/record"
	"github.com/uddict/dictation-app/cli/internal/ui"
)

// NoteCmd returns the command that opens a record under variant, e.g.
// `notes progress visit.yaml`.
func NoteCmd(env *Env, variant ui.Variant) *cobra.Command {
	return &cobra.Command{
		Use:   variant.Name + " [file]",
		Short: fmt.Sprintf("Open a record as %s", variant.Title),
		Long: fmt.Sprintf("Open a YAML or JSON record as %s. Use - to read standard input. "+
			"Without a record, or with an empty one, the saved notes list is shown instead.", variant.Title),
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var rec *record.Branch
			if len(args) == 1 {
				var err error
				rec, err = env.readRecord(args[0])
				if err != nil {
					return err
				}
			}
			return env.RunApp(variant, rec, true)
		},
	}
}
