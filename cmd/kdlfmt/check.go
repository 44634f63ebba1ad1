package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vippsas/kdl"
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "report parse errors and non-canonical formatting without modifying files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := parseOptions()
	var failed bool
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := kdl.ParseWithOptions(string(src), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: parse failed:\n%s\n", path, err)
			failed = true
			continue
		}
		if kdl.Render(doc) != string(src) {
			fmt.Fprintf(os.Stderr, "%s: not in canonical form (run `kdlfmt format -w`)\n", path)
			failed = true
		}
	}
	if failed {
		return errors.New("one or more files failed the check")
	}
	return nil
}
