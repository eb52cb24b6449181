package xopt

import (
	"strings"
	"unicode/utf8"
)

// Flags configure parsing behavior. Combine with bitwise OR.
type Flags uint

const (
	// KeepFirst includes the argument at index 0 in parsing instead of
	// skipping it as the program name.
	KeepFirst Flags = 1 << iota
	// StrictOrdering rejects any option token that appears after at least
	// one positional argument has been captured.
	StrictOrdering
	// NoCondense rejects short-form tokens with more than one character
	// after the dash, unless SloppyShorts is also set.
	NoCondense
	// SloppyShorts interprets a multi-character short token as "first
	// character = option, rest = inline value" instead of expanding each
	// character as a separate option.
	SloppyShorts
	// Strict treats an unknown option as a hard failure instead of a
	// silent skip.
	Strict
)

// extrasInit is the starting capacity of the extras list.
const extrasInit = 10

// Context holds an option table, a display name, and behavior flags. It
// carries no per-parse state: one Context may be reused across any number
// of Parse calls.
type Context struct {
	name    string
	options []Option
	flags   Flags
}

// New creates a parse context. The option table is read, never modified,
// and never validated up front; malformed entries surface lazily when an
// argument resolves to them.
func New(name string, options []Option, flags Flags) *Context {
	return &Context{name: name, options: options, flags: flags}
}

// Name returns the display name the context was created with.
func (c *Context) Name() string {
	return c.name
}

// dashRun counts the leading dashes of a token, capped at 2. Zero means a
// positional argument, one a short option, two a long option.
func dashRun(arg string) int {
	n := 0
	for n < 2 && n < len(arg) && arg[n] == '-' {
		n++
	}
	return n
}

// Parse walks the argument vector, applies every recognized option to dst
// (which must be a pointer to a struct), and returns the positional
// arguments in encounter order. Exactly one of the results is set: on
// error the extras slice is nil, partial results are never returned.
//
// Unless KeepFirst is set, args[0] is skipped. A bare "--" ends option
// processing; everything after it is forwarded to the extras untouched.
func (c *Context) Parse(args []string, dst any) ([]string, error) {
	extras := make([]string, 0, extrasInit)

	i := 0
	if c.flags&KeepFirst == 0 {
		i = 1
	}

	for ; i < len(args); i++ {
		arg := args[i]
		run := dashRun(arg)
		content := arg[run:]

		switch run {
		case 0:
			extras = append(extras, arg)
			continue
		case 1:
			if err := c.parseShort(args, &i, content, dst); err != nil {
				return nil, err
			}
		case 2:
			if content == "" {
				return append(extras, args[i+1:]...), nil
			}
			if err := c.parseLong(args, &i, content, dst); err != nil {
				return nil, err
			}
		}

		// The token was an option. Under StrictOrdering no option may
		// follow a captured positional.
		if c.flags&StrictOrdering != 0 && len(extras) > 0 {
			return nil, &OrderingError{Token: arg}
		}
	}

	return extras, nil
}

// parseShort handles the content after a single dash. It may consume the
// following token from args as an option value, advancing *i past it.
func (c *Context) parseShort(args []string, i *int, content string, dst any) error {
	switch {
	case utf8.RuneCountInString(content) > 1 && c.flags&NoCondense != 0 && c.flags&SloppyShorts == 0:
		return &CombineError{Token: args[*i]}

	case utf8.RuneCountInString(content) > 1 && c.flags&SloppyShorts != 0:
		first, size := utf8.DecodeRuneInString(content)
		opt := lookupShort(c.options, first)
		if opt == nil {
			if c.flags&Strict != 0 {
				return &UnknownOptionError{Option: "-" + string(first)}
			}
			return nil
		}
		// The remainder is taken as the value whether or not the option
		// requires one; the assignment layer judges its validity.
		return assign(dst, opt, content[size:], true)

	default:
		runes := []rune(content)
		for k, ch := range runes {
			opt := lookupShort(c.options, ch)
			if opt == nil {
				if c.flags&Strict != 0 {
					return &UnknownOptionError{Option: "-" + string(ch)}
				}
				// Non-strict: the unknown character and the rest of this
				// token are dropped without error.
				return nil
			}

			if !opt.HasArg {
				if err := assign(dst, opt, "", false); err != nil {
					return err
				}
				continue
			}

			// A value-requiring option must be the last character of a
			// combined run so its value can follow.
			if k != len(runes)-1 {
				return &CombinedValueError{Option: opt.name()}
			}
			if *i+1 >= len(args) {
				return &MissingValueError{Option: opt.name()}
			}
			// The next token is consumed whole, even if it looks like
			// another option.
			*i++
			if err := assign(dst, opt, args[*i], true); err != nil {
				return err
			}
		}
		return nil
	}
}

// parseLong handles the content after a double dash, symmetric with the
// short form: an inline value after "=" is used when present, otherwise a
// value-requiring option consumes the following token.
func (c *Context) parseLong(args []string, i *int, content string, dst any) error {
	name := content
	inline := ""
	hasInline := false
	if idx := strings.Index(content, "="); idx >= 0 {
		name = content[:idx]
		inline = content[idx+1:]
		hasInline = true
	}

	opt := lookupLong(c.options, name)
	if opt == nil {
		if c.flags&Strict != 0 {
			return &UnknownOptionError{Option: "--" + name}
		}
		return nil
	}

	if hasInline {
		return assign(dst, opt, inline, true)
	}
	if opt.HasArg {
		if *i+1 >= len(args) {
			return &MissingValueError{Option: "--" + name}
		}
		*i++
		return assign(dst, opt, args[*i], true)
	}
	return assign(dst, opt, "", false)
}
