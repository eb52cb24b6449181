// Command xopt-demo exercises the xopt parsing library end to end: it
// declares an option table, parses os.Args against it, and reports what
// was recognized and what was left over.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zeit/xopt/internal/cli"
	"github.com/zeit/xopt/internal/ui"
)

const version = "1.0.0"

func main() {
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			fmt.Print(cli.Usage())
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("xopt-demo %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("xopt-demo --help"))
		os.Exit(1)
	}

	report(args)
}

func report(args *cli.Args) {
	if args.Verbose && !args.Quiet {
		ui.DimMsg("parsed %d positional argument(s)", len(args.Files))
	}
	if !args.Quiet {
		ui.Info("verbose: %v", args.Verbose)
		if args.Output != "" {
			ui.Info("output: %s", args.Output)
		}
		if args.Repeat > 0 {
			ui.Info("repeat: %d", args.Repeat)
		}
		if args.Timeout > 0 {
			ui.Info("timeout: %s", args.Timeout)
		}
	}

	if len(args.Files) == 0 {
		if !args.Quiet {
			ui.Warn("no input files")
		}
		return
	}

	for _, file := range args.Files {
		fmt.Println(file)
	}
	if !args.Quiet {
		ui.Success("%d file(s)", len(args.Files))
	}
}
