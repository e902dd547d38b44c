package cli

import (
	"fmt"

	"github.com/abdidvp/modkraft/internal/adapters/outbound/tui"
	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPlanCmd() *cobra.Command {
	var (
		format string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Analyze one file and print its split plan",
		Long:  "Analyze a single file and print its verdict and, when it needs refactoring, the proposed file layout and migration steps. The yaml and json formats are meant for tools that apply the plan.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fk := domain.FileKind(kind)
			if kind != "" && !fk.Valid() {
				return fmt.Errorf("unknown file kind %q (valid: model, admin, view, unknown)", kind)
			}

			fr, err := newScanService().CheckFile(args[0], fk)
			if err != nil {
				return fmt.Errorf("plan failed: %w", err)
			}

			switch format {
			case "json":
				return renderJSON(cmd, fr)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(fr); err != nil {
					return err
				}
				return enc.Close()
			case "text":
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(fr.Path, fr.Verdict, fr.Plan))
				return nil
			default:
				return fmt.Errorf("unknown format %q (valid: text, yaml, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml, json)")
	cmd.Flags().StringVar(&kind, "kind", "", "Override the file kind inferred from the path (model, admin, view, unknown)")

	return cmd
}
