package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenManCmd documents rootCmd and every subcommand as section 1 man pages.
func NewGenManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "genman [output-dir]",
		Short: "Write shaderpaper man pages",
		Long: `Writes one man page per command (shaderpaper, shaderpaper-switch,
shaderpaper-status and so on) into output-dir, creating it
if needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Clean(args[0])
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			header := &doc.GenManHeader{
				Title:   "SHADERPAPER",
				Section: "1",
				Source:  "shaderpaper",
			}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return err
			}
			log.Infof("man pages written to %s", dir)
			return nil
		},
	}
}
