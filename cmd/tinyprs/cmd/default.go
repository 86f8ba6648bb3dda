package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/tinyprs/pkg/convert"
	"github.com/ssargent/tinyprs/pkg/preset"
)

// defaultCmd represents the default command
var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Write the firmware default preset",
	Long: `Write the firmware default preset as a .prs record or a document.

Without --output the document is printed. The output extension selects
the form: .prs for a record, .json, .yaml or .yml for a document.

Examples:
  tinyprs default
  tinyprs default --output default.prs`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		conv, err := container.Converter()
		if err != nil {
			return err
		}
		p := preset.Default()

		if output == "" {
			doc, err := conv.Render(p)
			if err != nil {
				return err
			}
			_, _ = cmd.OutOrStdout().Write(doc)
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}

		var data []byte
		switch ext := strings.ToLower(filepath.Ext(output)); ext {
		case ".prs":
			data, err = container.Codec().Encode(p)
		case ".json", ".yaml", ".yml":
			var format convert.Format
			format, err = convert.ParseFormat(ext[1:])
			if err == nil {
				data, err = conv.RenderAs(p, format)
			}
		default:
			err = fmt.Errorf("%w: %s", convert.ErrUnsupportedExtension, output)
		}
		if err != nil {
			return err
		}

		if err := convert.WriteFileAtomic(output, data, 0644); err != nil {
			return err
		}
		cmd.Printf("Wrote default preset to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultCmd)
	defaultCmd.Flags().StringP("output", "o", "", "Output file (.prs, .json, .yaml or .yml)")
}
