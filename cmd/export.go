package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <planId>",
	Short: "Export a plan's tasks as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := a.progressService.ExportCSV(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return writeExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), exportOut, data)
	},
}

// writeExport sends data to stdout, or to path when one is given.
func writeExport(stdout, stderr io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(stderr, "wrote %s\n", path)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file to write (defaults to stdout)")
	rootCmd.AddCommand(exportCmd)
}
