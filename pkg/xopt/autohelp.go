package xopt

import (
	"fmt"
	"io"
	"strings"
)

// Usage renders a usage message from the context's name and option table.
func (c *Context) Usage() string {
	var b strings.Builder

	b.WriteString("USAGE:\n")
	fmt.Fprintf(&b, "    %s [OPTIONS] [ARGS...]\n", c.name)

	if len(c.options) > 0 {
		b.WriteString("\nOPTIONS:\n")
		for i := range c.options {
			opt := &c.options[i]

			var flagStr string
			switch {
			case opt.Short != 0 && opt.Long != "":
				flagStr = fmt.Sprintf("    -%s, --%s", string(opt.Short), opt.Long)
			case opt.Short != 0:
				flagStr = fmt.Sprintf("    -%s", string(opt.Short))
			case opt.Long != "":
				flagStr = fmt.Sprintf("    --%s", opt.Long)
			default:
				continue
			}
			if opt.HasArg {
				flagStr += " <value>"
			}

			if opt.Help != "" {
				fmt.Fprintf(&b, "%-28s %s\n", flagStr, opt.Help)
			} else {
				b.WriteString(flagStr)
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// WriteUsage writes the usage message to w.
func (c *Context) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, c.Usage())
	return err
}
