package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/options"
	"github.com/olekukonko/tablewriter"
)

const (
	lookupRow        = "lookup"
	unknownQualifier = "(unrecognized)"
)

// Row is one line of the explanation.
type Row struct {
	Directive string
	Line      string
	Segment   string
	Qualifier string
}

func (row Row) values() []string {
	return []string{row.Directive, row.Line, row.Segment, row.Qualifier}
}

func Run(_ context.Context, opts *options.Options, req criteria.Request) error {
	path, err := criteria.Compile(req)
	if err != nil {
		return err
	}

	consoleTable := tablewriter.NewWriter(opts.Writer)
	consoleTable.SetHeader([]string{"DIRECTIVE", "LINE", "SEGMENT", "QUALIFIER"})
	consoleTable.SetAutoFormatHeaders(false)
	consoleTable.SetAutoWrapText(false)

	for _, row := range Explain(req) {
		consoleTable.Append(row.values())
	}

	consoleTable.Render()

	_, err = fmt.Fprintf(opts.Writer, "path: %s\n", path)

	return err
}

// Explain lists the rows of a request that compiles. Kinds addressing a single object have one lookup row.
func Explain(req criteria.Request) []Row {
	switch kind := req.Kind(); kind {
	case criteria.KindTable:
		return directiveRows(criteria.ParseDirectives(req.Body))
	case criteria.KindHostList:
		return directiveRows(criteria.ParseFilters(req.Body))
	case criteria.KindRVList:
		return []Row{lookupRowFor(req.Key, req.Body)}
	default:
		return []Row{lookupRowFor(req.Name, req.Body)}
	}
}

func directiveRows(directives []criteria.Directive) []Row {
	rows := make([]Row, 0, len(directives))

	for _, directive := range directives {
		row := Row{
			Directive: directive.Type.String(),
			Line:      directive.Line,
			Segment:   directive.Value,
		}

		if directive.Type == criteria.FILTER {
			row.Segment = directive.Escaped()
			row.Qualifier = qualifierText(row.Segment)
		}

		rows = append(rows, row)
	}

	return rows
}

func lookupRowFor(attr criteria.Attribute, body string) Row {
	lookup := attr.Or(strings.TrimSpace(body))

	return Row{Directive: lookupRow, Line: lookup, Segment: lookup}
}

func qualifierText(segment string) string {
	qualifier, err := criteria.Decode(segment)
	if err != nil {
		return unknownQualifier
	}

	return qualifier.String()
}
