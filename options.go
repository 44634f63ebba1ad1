package kdl

import "github.com/vippsas/kdl/internal/scanner"

// Options configures a parse.
type Options struct {
	// MaxDiagnostics caps how many diagnostics are kept in a ParseError;
	// 0 means unlimited. Recovery still runs over the whole document
	// either way, this only trims what is reported.
	MaxDiagnostics int

	// TraceLog, when set, receives Trace-level spans for each node and
	// for parse start/finish. A *logrus.Logger or *logrus.Entry satisfies
	// this (logrus.FieldLogger itself has no Tracef method).
	TraceLog scanner.TraceLogger
}
