package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/kdl"
)

var (
	formatWrite   bool
	formatCompact bool

	formatCmd = &cobra.Command{
		Use:   "format <files...>",
		Short: "rewrite KDL files to canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFormat,
	}
)

func init() {
	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "write the result back to each file instead of printing it")
	formatCmd.Flags().BoolVar(&formatCompact, "compact", false, "render the single-line compact form instead of the canonical multi-line form")
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts := parseOptions()
	if cfg, err := loadConfig(); err == nil && cfg.Compact && !cmd.Flags().Changed("compact") {
		formatCompact = true
	}
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := kdl.ParseWithOptions(string(src), opts)
		if err != nil {
			return fmt.Errorf("%s:\n%w", path, err)
		}
		var out string
		if formatCompact {
			out = kdl.RenderCompact(doc)
		} else {
			out = kdl.Render(doc)
		}
		if formatWrite {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			continue
		}
		fmt.Print(out)
	}
	return nil
}
