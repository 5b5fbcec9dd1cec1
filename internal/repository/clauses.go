package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// Clauses accumulates WHERE conditions with positional parameter binding.
// Every value passed to Add is bound as a $n parameter; values are never
// interpolated into the SQL text.
type Clauses struct {
	conds []string
	args  []any
}

// Add appends one condition. expr must contain one ? placeholder per value
// in args; each is rewritten to the next positional parameter. A mismatch
// between placeholders and values is a programmer error and panics.
func (c *Clauses) Add(expr string, args ...any) {
	if strings.Count(expr, "?") != len(args) {
		panic(fmt.Sprintf("clause %q has %d placeholders for %d args",
			expr, strings.Count(expr, "?"), len(args)))
	}
	for _, arg := range args {
		c.args = append(c.args, arg)
		expr = strings.Replace(expr, "?", "$"+strconv.Itoa(len(c.args)), 1)
	}
	c.conds = append(c.conds, expr)
}

// Where renders the accumulated conditions as a WHERE fragment joined with
// AND, or an empty string when no conditions were added.
func (c *Clauses) Where() string {
	if len(c.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.conds, " AND ")
}

// Args returns the bound values in placeholder order.
func (c *Clauses) Args() []any {
	return c.args
}
