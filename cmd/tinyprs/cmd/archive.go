package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/tinyprs/pkg/convert"
	"github.com/ssargent/tinyprs/pkg/storage"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the preset archive",
	Long: `Store, list, fetch and delete presets in the local archive.

The archive lives in archive.data_dir of the configuration.`,
}

// archivePutCmd represents the archive put command
var archivePutCmd = &cobra.Command{
	Use:   "put <path>...",
	Short: "Archive presets",
	Long: `Validate presets and store them in the archive.

A .prs file is stored as is. A .json, .yaml or .yml document is merged into
the default preset and the encoded result is stored.

Examples:
  tinyprs archive put scan.prs
  tinyprs archive put scan.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := container.Converter()
		if err != nil {
			return err
		}

		return withArchive(func(a *storage.Archive) error {
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				var entry storage.Entry
				ext := strings.ToLower(filepath.Ext(path))
				if ext == ".prs" {
					entry, err = a.Put(data)
				} else {
					entry, err = putDocument(a, conv, data, ext)
				}
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.ID, path)
			}
			return nil
		})
	},
}

func putDocument(a *storage.Archive, conv *convert.Converter, doc []byte, ext string) (storage.Entry, error) {
	format, err := convert.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		return storage.Entry{}, fmt.Errorf("%w: %s", convert.ErrUnsupportedExtension, ext)
	}
	p, rep, err := conv.ImportPreset(doc, format)
	if err != nil {
		return storage.Entry{}, err
	}
	for _, key := range rep.Ignored {
		container.Logger().Warn("ignored document key", zap.String("key", key))
	}
	return a.PutPreset(p)
}

// archiveGetCmd represents the archive get command
var archiveGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch an archived preset",
	Long: `Fetch an archived preset. Without --output its document is printed;
with --output the extension selects a .prs record or a document.

Examples:
  tinyprs archive get 2Bd1wKwk0NqZ1Q3fWrAbdwSrX8Y
  tinyprs archive get 2Bd1wKwk0NqZ1Q3fWrAbdwSrX8Y --output scan.prs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		conv, err := container.Converter()
		if err != nil {
			return err
		}

		return withArchive(func(a *storage.Archive) error {
			data, err := a.Get(args[0])
			if err != nil {
				return err
			}

			ext := strings.ToLower(filepath.Ext(output))
			if output != "" && ext == ".prs" {
				return convert.WriteFileAtomic(output, data, 0644)
			}

			format := convert.FormatJSON
			if output == "" {
				format, err = convert.ParseFormat(container.Config().Output.Format)
			} else {
				format, err = convert.ParseFormat(strings.TrimPrefix(ext, "."))
			}
			if err != nil {
				return err
			}
			doc, _, err := conv.ExportBytesAs(data, format)
			if err != nil {
				return err
			}
			if output != "" {
				return convert.WriteFileAtomic(output, doc, 0644)
			}
			_, _ = cmd.OutOrStdout().Write(doc)
			if n := len(doc); n > 0 && doc[n-1] != '\n' {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		})
	},
}

// archiveListCmd represents the archive list command
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(func(a *storage.Archive) error {
			entries, err := a.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tNAME\tSIZE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", e.ID, e.Created.Format(time.RFC3339), e.Name, e.Size)
			}
			return tw.Flush()
		})
	},
}

// archiveDeleteCmd represents the archive delete command
var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an archived preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(func(a *storage.Archive) error {
			if err := a.Delete(args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archivePutCmd, archiveGetCmd, archiveListCmd, archiveDeleteCmd)
	archiveGetCmd.Flags().StringP("output", "o", "", "Output file (.prs, .json, .yaml or .yml)")
}

func withArchive(fn func(*storage.Archive) error) error {
	a, err := container.OpenArchive()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
