package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uddict/dictation-app/cli/internal/ui"
)

// ExportCmd returns the `notes export` command.
func ExportCmd(env *Env) *cobra.Command {
	var (
		title       string
		variantName string
		format      string
		outDir      string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Generate a document from a record",
		Long: "Generate a document from a YAML or JSON record. Files are written to --out " +
			"unless document_url is configured, in which case the document service renders it.",
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			variant, ok := ui.VariantByName(variantName)
			if !ok {
				return fmt.Errorf("unknown variant %q (want progress or soap)", variantName)
			}
			if strings.TrimSpace(title) == "" {
				title = variant.Title
			}

			rec, err := env.readRecord(args[0])
			if err != nil {
				return err
			}
			if rec.Len() == 0 {
				return fmt.Errorf("nothing to export: %s is empty", args[0])
			}

			bridge, err := env.NewBridge(outDir, format)
			if err != nil {
				return err
			}
			res, err := bridge.Export(c.Context(), rec, title)
			if err != nil {
				return err
			}
			env.logger().Info("document exported", zap.String("location", res.Location), zap.String("format", res.Format))
			fmt.Fprintf(env.out(), "exported %s (%s)\n", res.Location, res.Format)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "document title (default: the variant title)")
	cmd.Flags().StringVar(&variantName, "variant", "progress", "progress or soap")
	cmd.Flags().StringVarP(&format, "format", "f", "", "svg, png, md or json (default from config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	return cmd
}
