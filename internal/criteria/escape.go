package criteria

import "strings"

// Replacement is one step of operator escaping.
type Replacement struct {
	Pattern string
	Token   string
}

// operatorTable is applied top to bottom. `!=` has to stay ahead of `=`.
var operatorTable = []Replacement{
	{Pattern: "!=", Token: ".ne."},
	{Pattern: "=", Token: ".eq."},
	{Pattern: "<", Token: ".lt."},
	{Pattern: ">", Token: ".gt."},
	{Pattern: "~", Token: ".ss."},
	{Pattern: "/", Token: ".slash."},
}

// Operators returns a copy of the escaping table in the order it is applied.
func Operators() []Replacement {
	return append([]Replacement(nil), operatorTable...)
}

// EscapeOperator rewrites the comparison operators of expr into textual tokens so
// the expression can be used as a single URL path segment.
func EscapeOperator(expr string) string {
	for _, r := range operatorTable {
		expr = strings.ReplaceAll(expr, r.Pattern, r.Token)
	}

	return expr
}
