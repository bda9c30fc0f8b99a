package criteria

import "strings"

// Query is the structured form of a directive block.
type Query struct {
	filters []string
	fields  []string
	order   string
}

// NewQuery folds directives into a Query: filters are escaped and kept in order,
// print values are collected in order and the last order directive wins.
func NewQuery(directives []Directive) Query {
	var query Query

	for _, d := range directives {
		switch d.Type {
		case PRINT:
			query.fields = append(query.fields, d.Value)
		case ORDER:
			query.order = d.Value
		case FILTER:
			query.filters = append(query.filters, d.Escaped())
		}
	}

	return query
}

// Filters returns the escaped filter segments in the order they were given.
func (query Query) Filters() []string {
	return append([]string(nil), query.filters...)
}

// Fields returns the comma-joined print list, empty when nothing is printed.
func (query Query) Fields() string {
	return strings.Join(query.fields, ",")
}

// Order returns the sort field, empty when unset.
func (query Query) Order() string {
	return query.order
}

// IsEmpty reports whether the query has no filters, fields or order.
func (query Query) IsEmpty() bool {
	return len(query.filters) == 0 && len(query.fields) == 0 && query.order == ""
}
