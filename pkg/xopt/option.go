package xopt

// Option describes one recognized command-line option and its binding to a
// destination struct field. At least one of Short or Long should be set;
// entries missing both are unreachable but tolerated (the table is never
// validated up front, bad entries surface during lookup or assignment).
type Option struct {
	// Short is the single-character form, e.g. 'v' for -v. Zero if none.
	Short rune
	// Long is the full name, e.g. "verbose" for --verbose. Empty if none.
	Long string
	// Field names the destination struct field this option sets.
	Field string
	// HasArg reports whether the option requires a value.
	HasArg bool
	// Help is the description shown by WriteUsage.
	Help string
}

// lookupShort returns the first table entry whose short character matches c,
// or nil if no entry matches.
func lookupShort(options []Option, c rune) *Option {
	for i := range options {
		if options[i].Short != 0 && options[i].Short == c {
			return &options[i]
		}
	}
	return nil
}

// lookupLong returns the first table entry whose long name matches name,
// or nil if no entry matches.
func lookupLong(options []Option, name string) *Option {
	for i := range options {
		if options[i].Long != "" && options[i].Long == name {
			return &options[i]
		}
	}
	return nil
}
