package cli

import (
	"errors"
	"time"

	"github.com/zeit/xopt/pkg/xopt"
)

// Sentinel errors signaling a requested exit rather than a parse failure.
var (
	ErrShowHelp    = errors.New("show help")
	ErrShowVersion = errors.New("show version")
)

// Args represents parsed command-line arguments.
type Args struct {
	// Output flags
	Verbose bool
	Quiet   bool

	// Run flags
	Output  string
	Repeat  int
	Timeout time.Duration

	// Mode flags
	ShowHelp    bool
	ShowVersion bool

	// Files holds the positional arguments.
	Files []string
}

// table is the demo's option table.
func table() []xopt.Option {
	return []xopt.Option{
		{Short: 'v', Long: "verbose", Field: "Verbose", Help: "Enable verbose output"},
		{Short: 'q', Long: "quiet", Field: "Quiet", Help: "Suppress informational output"},
		{Short: 'o', Long: "output", Field: "Output", HasArg: true, Help: "Write results to a file"},
		{Short: 'n', Long: "repeat", Field: "Repeat", HasArg: true, Help: "Repeat the run N times"},
		{Short: 't', Long: "timeout", Field: "Timeout", HasArg: true, Help: "Per-run timeout (e.g. 30s)"},
		{Short: 'h', Long: "help", Field: "ShowHelp", Help: "Show this help message"},
		{Long: "version", Field: "ShowVersion", Help: "Show version information"},
	}
}

// newContext builds the parse context used by Parse and Usage. The demo
// always parses in strict mode: unknown flags are errors, not no-ops.
func newContext() *xopt.Context {
	return xopt.New("xopt-demo", table(), xopt.Strict)
}

// Parse parses command-line arguments into an Args struct. osArgs is the
// full vector including the program name. ErrShowHelp and ErrShowVersion
// are returned when the matching flags are present; any other error is a
// parse failure to report to the user.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{}

	extras, err := newContext().Parse(osArgs, args)
	if err != nil {
		return nil, err
	}

	if args.ShowHelp {
		return nil, ErrShowHelp
	}
	if args.ShowVersion {
		return nil, ErrShowVersion
	}

	args.Files = extras
	return args, nil
}

// Usage returns the demo's usage message.
func Usage() string {
	return newContext().Usage()
}
