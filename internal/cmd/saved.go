package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uddict/dictation-app/cli/internal/export"
	"github.com/uddict/dictation-app/cli/internal/ui"
)

const savedTimeLayout = "2006-01-02 15:04"

// SavedCmd returns the `notes saved` command group.
func SavedCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved notes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return listSaved(c, env)
		},
	}
	cmd.AddCommand(savedListCmd(env))
	cmd.AddCommand(savedAddCmd(env))
	cmd.AddCommand(savedShowCmd(env))
	cmd.AddCommand(savedOpenCmd(env))
	cmd.AddCommand(savedRemoveCmd(env))
	return cmd
}

func savedListCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return listSaved(c, env)
		},
	}
}

func listSaved(c *cobra.Command, env *Env) error {
	notes, err := env.OpenStore()
	if err != nil {
		return err
	}
	defer notes.Close()

	items, err := notes.List(c.Context())
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	out := env.out()
	if len(items) == 0 {
		fmt.Fprintln(out, "no saved notes")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(out, "  %s  %s  %s\n", it.ID, it.SavedAt.Local().Format(savedTimeLayout), it.Title)
	}
	return nil
}

func savedAddCmd(env *Env) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Save a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rec, err := env.readRecord(args[0])
			if err != nil {
				return err
			}
			notes, err := env.OpenStore()
			if err != nil {
				return err
			}
			defer notes.Close()

			note, err := notes.Save(c.Context(), title, rec)
			if err != nil {
				return fmt.Errorf("save note: %w", err)
			}
			fmt.Fprintf(env.out(), "saved %s\n", note.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", ui.ProgressVariant.Title, "note title")
	return cmd
}

func savedShowCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved note as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			notes, err := env.OpenStore()
			if err != nil {
				return err
			}
			defer notes.Close()

			note, err := notes.Load(c.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("load note: %w", err)
			}
			fmt.Fprint(env.out(), export.Markdown(export.Document{Title: note.Title, Record: note.Record}))
			return nil
		},
	}
}

func savedOpenCmd(env *Env) *cobra.Command {
	var variantName string
	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Open a saved note",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			variant, ok := ui.VariantByName(variantName)
			if !ok {
				return fmt.Errorf("unknown variant %q (want progress or soap)", variantName)
			}
			notes, err := env.OpenStore()
			if err != nil {
				return err
			}
			note, err := notes.Load(c.Context(), strings.TrimSpace(args[0]))
			notes.Close()
			if err != nil {
				return fmt.Errorf("load note: %w", err)
			}
			return env.RunApp(variant, note.Record, true)
		},
	}
	cmd.Flags().StringVar(&variantName, "variant", "progress", "progress or soap")
	return cmd
}

func savedRemoveCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a saved note",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			notes, err := env.OpenStore()
			if err != nil {
				return err
			}
			defer notes.Close()

			id := strings.TrimSpace(args[0])
			if err := notes.Delete(c.Context(), id); err != nil {
				return fmt.Errorf("delete note: %w", err)
			}
			fmt.Fprintf(env.out(), "deleted %s\n", id)
			return nil
		},
	}
}
