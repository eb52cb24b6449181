// Package xopt provides table-driven command-line option parsing.
//
// Callers declare a fixed table of options, each naming a short character
// and/or a long name, whether it takes a value, and the destination struct
// field it binds to. A Context wraps the table together with a display name
// and a set of behavior flags; Parse then walks an argument vector,
// dispatches recognized options into the destination struct, and returns
// the leftover positional arguments ("extras") in encounter order.
//
// Supported behavior flags:
//   - KeepFirst: parse argv[0] instead of skipping it
//   - StrictOrdering: options must precede positional arguments
//   - NoCondense: forbid combined short options such as -vo
//   - SloppyShorts: treat -ovalue as option -o with inline value "value"
//   - Strict: unknown options are errors instead of silent no-ops
//
// Example usage:
//
//	type Args struct {
//	    Verbose bool
//	    Output  string
//	}
//
//	table := []xopt.Option{
//	    {Short: 'v', Long: "verbose", Field: "Verbose", Help: "Enable verbose output"},
//	    {Short: 'o', Long: "output", Field: "Output", HasArg: true, Help: "Output file"},
//	}
//
//	ctx := xopt.New("mytool", table, xopt.Strict)
//	var args Args
//	extras, err := ctx.Parse(os.Args, &args)
//	if err != nil {
//	    log.Fatal(err)
//	}
package xopt
