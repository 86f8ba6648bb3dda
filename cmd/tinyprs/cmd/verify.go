package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <path.prs>...",
	Short: "Verify preset checksums",
	Long: `Compare the stored checksum of each preset with the checksum of its contents.

Example:
  tinyprs verify *.prs`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := container.Codec()
		out := cmd.OutOrStdout()

		failed := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				cmd.PrintErrf("%s: %v\n", path, err)
				failed++
				continue
			}
			v, err := c.Verify(data)
			if err != nil {
				cmd.PrintErrf("%s: %v\n", path, err)
				failed++
				continue
			}
			if !v.OK() {
				fmt.Fprintf(out, "%s: checksum mismatch, calculated 0x%08X vs. stored 0x%08X\n", path, v.Computed, v.Stored)
				failed++
				continue
			}
			fmt.Fprintf(out, "%s: OK, checksum 0x%08X\n", path, v.Stored)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d presets failed verification", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
