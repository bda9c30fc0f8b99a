package criteria

import "strings"

// DirectiveType classifies one line of a directive block.
type DirectiveType int

const (
	FILTER DirectiveType = iota
	PRINT
	ORDER
)

const (
	printPrefix = "print "
	orderPrefix = "order "
)

// String returns a string representation of the directive type for debugging.
func (t DirectiveType) String() string {
	switch t {
	case PRINT:
		return "print"
	case ORDER:
		return "order"
	case FILTER:
		return "filter"
	default:
		return "unknown"
	}
}

// Directive is one non-blank line of tag body text.
type Directive struct {
	Type DirectiveType
	// Line is the trimmed source line.
	Line string
	// Value is the line without its prefix. For filters it is the whole line, unescaped.
	Value string
}

// Escaped returns the path segment a filter directive compiles to.
func (d Directive) Escaped() string {
	return EscapeOperator(d.Value)
}

// ParseDirectives classifies every non-blank line of text. The first matching rule wins:
// a `print ` prefix, then an `order ` prefix, then a filter.
func ParseDirectives(text string) []Directive {
	var directives []Directive

	forEachLine(text, func(line string) {
		switch {
		case strings.HasPrefix(line, printPrefix):
			directives = append(directives, Directive{Type: PRINT, Line: line, Value: line[len(printPrefix):]})
		case strings.HasPrefix(line, orderPrefix):
			directives = append(directives, Directive{Type: ORDER, Line: line, Value: line[len(orderPrefix):]})
		default:
			directives = append(directives, Directive{Type: FILTER, Line: line, Value: line})
		}
	})

	return directives
}

// ParseFilters treats every non-blank line of text as a filter.
func ParseFilters(text string) []Directive {
	var directives []Directive

	forEachLine(text, func(line string) {
		directives = append(directives, Directive{Type: FILTER, Line: line, Value: line})
	})

	return directives
}

// ParseDirectiveBlock parses a `table` body into a Query.
func ParseDirectiveBlock(text string) Query {
	return NewQuery(ParseDirectives(text))
}

// ParseFilterBlock parses a `hostlist` body into a Query with filters only.
func ParseFilterBlock(text string) Query {
	return NewQuery(ParseFilters(text))
}

func forEachLine(text string, fn func(line string)) {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fn(line)
		}
	}
}
