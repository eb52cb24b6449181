// Package cli provides command-line argument parsing for xopt-demo.
//
// This package declares the demo's option table and converts the raw
// argument vector into a structured Args type via pkg/xopt, the same role
// a hand-rolled flag switch would otherwise play.
//
// Supported flags include:
//   - -v, --verbose: Enable verbose output
//   - -q, --quiet: Suppress informational output
//   - -o, --output: Write results to a file
//   - -n, --repeat: Repeat the run N times
//   - -t, --timeout: Per-run timeout
//   - --version: Show version information
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if err != nil {
//	    if errors.Is(err, cli.ErrShowHelp) {
//	        fmt.Print(cli.Usage())
//	        os.Exit(0)
//	    }
//	    log.Fatal(err)
//	}
//
//	if args.Verbose {
//	    // Chatty mode
//	}
package cli
