package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
	Hunk   func(string, ...any) string
}

// NewColors returns terminal colors, enabled regardless of color.NoColor.
func NewColors() *Colors {
	mk := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintfFunc()
	}
	return &Colors{
		Insert: mk(color.FgGreen),
		Delete: mk(color.FgRed),
		Hunk:   mk(color.FgCyan),
	}
}

func (c *Colors) sprintf(op Op, format string, args ...any) string {
	if c == nil {
		return fmt.Sprintf(format, args...)
	}
	switch op {
	case Insert:
		return c.Insert(format, args...)
	case Delete:
		return c.Delete(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

func (c *Colors) hunk(format string, args ...any) string {
	if c == nil {
		return fmt.Sprintf(format, args...)
	}
	return c.Hunk(format, args...)
}

// Write prints lines with +/- prefixes, keeping context unchanged lines
// around each change. Negative context prints every line.
func Write(w io.Writer, lines []Line, colors *Colors, context int) error {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if context < 0 {
			keep[i] = true
			continue
		}
		if l.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	from, to := 1, 1
	inHunk := false
	for i, l := range lines {
		if keep[i] {
			if !inHunk && context >= 0 {
				if _, err := io.WriteString(w, colors.hunk("@@ -%d +%d @@", from, to)+"\n"); err != nil {
					return err
				}
			}
			inHunk = true
			if _, err := io.WriteString(w, colors.sprintf(l.Op, "%s%s", l.Op, l.Text)+"\n"); err != nil {
				return err
			}
		} else {
			inHunk = false
		}
		switch l.Op {
		case Equal:
			from++
			to++
		case Insert:
			to++
		case Delete:
			from++
		}
	}
	return nil
}
