// Command kdlfmt is a small Cobra CLI built on top of the public kdl
// package: "format" rewrites files to canonical form, "check" reports
// whether they already are canonical. It lives outside the kdl package
// itself, as a separate consumer of the library rather than folded into
// it.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vippsas/kdl"
)

var (
	rootCmd = &cobra.Command{
		Use:          "kdlfmt",
		Short:        "kdlfmt",
		SilenceUsage: true,
		Long:         `kdlfmt formats and validates KDL 2.0 documents.`,
	}

	verbose    bool
	configPath string
	log        = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable trace-level logging of the parser's grammar productions")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".kdlfmt.yaml", "path to a kdlfmt config file")
	return rootCmd.Execute()
}

// parseOptions builds the kdl.Options for this run; the trace logger is
// only attached when --verbose was passed, so TraceLog stays a true nil
// interface (not a nil *logrus.Logger boxed in one) otherwise.
func parseOptions() kdl.Options {
	opts := kdl.Options{}
	if cfg, err := loadConfig(); err == nil {
		opts.MaxDiagnostics = cfg.MaxDiagnostics
	}
	if verbose {
		log.SetLevel(logrus.TraceLevel)
		opts.TraceLog = log
	}
	return opts
}

func init() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
}
