// Package ui provides terminal output formatting for xopt-demo.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//
// All output goes to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection.
//
// Example usage:
//
//	ui.Info("Parsing %d arguments", len(os.Args))
//	ui.Success("Parsed successfully")
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
