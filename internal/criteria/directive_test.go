package criteria_test

import (
	"testing"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/stretchr/testify/assert"
)

func TestParseDirectiveBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		filters []string
		fields  string
		order   string
	}{
		{
			name:    "print, filter and repeated order",
			input:   "print os\nprint osrev\nhardware=v490\norder os\norder site",
			filters: []string{"hardware.eq.v490"},
			fields:  "os,osrev",
			order:   "site",
		},
		{
			name:    "surrounding whitespace and blank lines",
			input:   "\n   print os  \n\n\t hardware=v490\t\n   \n site!=qv \n",
			filters: []string{"hardware.eq.v490", "site.ne.qv"},
			fields:  "os",
		},
		{
			name:    "duplicate print values are kept",
			input:   "print os\nprint os",
			filters: []string{},
			fields:  "os,os",
		},
		{
			name:    "print without argument is a filter",
			input:   "print",
			filters: []string{"print"},
		},
		{
			name:    "prefix is case sensitive",
			input:   "Print os",
			filters: []string{"Print os"},
		},
		{
			name:    "order keeps inner text",
			input:   "order site,os",
			filters: []string{},
			order:   "site,os",
		},
		{
			name:    "filters keep their order",
			input:   "c=3\na=1\nb=2",
			filters: []string{"c.eq.3", "a.eq.1", "b.eq.2"},
		},
		{
			name:    "carriage returns are trimmed",
			input:   "print os\r\nhardware=v490\r\n",
			filters: []string{"hardware.eq.v490"},
			fields:  "os",
		},
		{
			name:    "empty body",
			input:   "",
			filters: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query := criteria.ParseDirectiveBlock(tt.input)

			assert.Equal(t, tt.filters, append([]string{}, query.Filters()...))
			assert.Equal(t, tt.fields, query.Fields())
			assert.Equal(t, tt.order, query.Order())
		})
	}
}

func TestParseFilterBlockIgnoresDirectives(t *testing.T) {
	t.Parallel()

	query := criteria.ParseFilterBlock("print os\norder site\nhardware=v490")

	assert.Equal(t, []string{"print os", "order site", "hardware.eq.v490"}, query.Filters())
	assert.Empty(t, query.Fields())
	assert.Empty(t, query.Order())
}

func TestParseDirectives(t *testing.T) {
	t.Parallel()

	directives := criteria.ParseDirectives("print os\norder site\nmount=/var")

	assert.Equal(t, []criteria.Directive{
		{Type: criteria.PRINT, Line: "print os", Value: "os"},
		{Type: criteria.ORDER, Line: "order site", Value: "site"},
		{Type: criteria.FILTER, Line: "mount=/var", Value: "mount=/var"},
	}, directives)

	assert.Equal(t, "mount.eq..slash.var", directives[2].Escaped())
	assert.Equal(t, "print", directives[0].Type.String())
	assert.Equal(t, "filter", directives[2].Type.String())
}

func TestQueryIsImmutable(t *testing.T) {
	t.Parallel()

	query := criteria.ParseDirectiveBlock("a=1")

	filters := query.Filters()
	filters[0] = "changed"

	assert.Equal(t, []string{"a.eq.1"}, query.Filters())
	assert.False(t, query.IsEmpty())
	assert.True(t, criteria.ParseDirectiveBlock("  \n ").IsEmpty())
}
