package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/tinyprs/pkg/convert"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <path>...",
	Short: "Convert presets to documents and back",
	Long: `Convert tinySA presets by file extension.

A .prs file is decoded and its document printed, or written next to the
preset with --write. A .json, .yaml or .yml document is merged into the
default preset and written to <path>.prs.

Examples:
  tinyprs convert scan.prs
  tinyprs convert --write --format yaml scan.prs
  tinyprs convert scan.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := container.Config()
		if v, _ := cmd.Flags().GetString("format"); v != "" {
			cfg.Output.Format = v
		}
		if cmd.Flags().Changed("write") {
			cfg.Output.WriteDocument, _ = cmd.Flags().GetBool("write")
		}
		if cmd.Flags().Changed("strict") {
			cfg.Codec.StrictEnums, _ = cmd.Flags().GetBool("strict")
		}

		conv, err := container.Converter()
		if err != nil {
			return err
		}

		failed := 0
		for _, path := range args {
			res, err := conv.ConvertFile(cmd.Context(), path)
			if err != nil {
				cmd.PrintErrf("%s: %v\n", path, err)
				failed++
				continue
			}
			switch {
			case res.Direction == convert.Export && res.Output == "":
				out := cmd.OutOrStdout()
				_, _ = out.Write(res.Document)
				if n := len(res.Document); n > 0 && res.Document[n-1] != '\n' {
					fmt.Fprintln(out)
				}
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, res.Output)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d conversions failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolP("write", "w", false, "Write exported documents next to the preset instead of printing them")
	convertCmd.Flags().StringP("format", "f", "", "Document format for exports (json or yaml)")
	convertCmd.Flags().Bool("strict", false, "Reject enumeration values the firmware does not define")
}
