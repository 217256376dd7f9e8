package phonology

import (
	"fmt"
	"strings"

	"github.com/roach88/soldict/internal/lang"
)

// Null is how an empty pattern is written in rule notation.
const Null = "∅"

// FormatChange renders c in rule notation: "from -> to" when unconditioned,
// "from -> to / left _ right" otherwise. Empty patterns render as "∅".
func FormatChange(c lang.Change) string {
	from := orNull(c.From)
	to := orNull(c.To)
	if c.Left == nil && c.Right == nil {
		return fmt.Sprintf("%s -> %s", from, to)
	}

	left, right := "", ""
	if c.Left != nil {
		left = " " + *c.Left
	}
	if c.Right != nil {
		right = " " + *c.Right
	}
	return fmt.Sprintf("%s -> %s /%s _%s", from, to, left, right)
}

// ParseChange reads rule notation as written by FormatChange.
func ParseChange(s string) (lang.Change, error) {
	action, context, hasContext := strings.Cut(s, "/")

	from, to, ok := strings.Cut(action, "->")
	if !ok {
		return lang.Change{}, fmt.Errorf("rule %q: missing \"->\"", s)
	}

	c := lang.Change{From: fromNull(from), To: fromNull(to)}
	if hasContext {
		left, right, ok := strings.Cut(context, "_")
		if !ok {
			return lang.Change{}, fmt.Errorf("rule %q: context needs \"_\"", s)
		}
		if left = strings.TrimSpace(left); left != "" {
			c.Left = lang.Context(left)
		}
		if right = strings.TrimSpace(right); right != "" {
			c.Right = lang.Context(right)
		}
	}
	return c, nil
}

func orNull(s string) string {
	if s == "" {
		return Null
	}
	return s
}

func fromNull(s string) string {
	s = strings.TrimSpace(s)
	if s == Null {
		return ""
	}
	return s
}
