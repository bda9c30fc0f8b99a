package criteria_test

import (
	"testing"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tableQuery := criteria.ParseDirectiveBlock("print os\nprint osrev\nhardware=v490\norder os\norder site")

	tests := []struct {
		name     string
		kind     criteria.Kind
		query    criteria.Query
		attr     criteria.Attribute
		body     string
		expected string
	}{
		{
			name:     "table with print and order",
			kind:     criteria.KindTable,
			query:    tableQuery,
			expected: "/hostwikitable/hardware.eq.v490/print=os,osrev/order=site",
		},
		{
			name:     "table without options",
			kind:     criteria.KindTable,
			query:    criteria.ParseDirectiveBlock("site!=qv\nos~linux"),
			expected: "/hostwikitable/site.ne.qv/os.ss.linux",
		},
		{
			name:     "empty table",
			kind:     criteria.KindTable,
			expected: "/hostwikitable",
		},
		{
			name:     "table with order only",
			kind:     criteria.KindTable,
			query:    criteria.ParseDirectiveBlock("order site"),
			expected: "/hostwikitable/order=site",
		},
		{
			name:     "hostpage from body",
			kind:     criteria.KindHostPage,
			body:     "myhost",
			expected: "/host_summary/myhost/wiki",
		},
		{
			name:     "hostpage body is trimmed",
			kind:     criteria.KindHostPage,
			body:     "\n  myhost \n",
			expected: "/host_summary/myhost/wiki",
		},
		{
			name:     "hostpage attribute wins over body",
			kind:     criteria.KindHostPage,
			attr:     criteria.Set("fromattr"),
			body:     "frombody",
			expected: "/host_summary/fromattr/wiki",
		},
		{
			name:     "present but empty attribute wins over body",
			kind:     criteria.KindShowAll,
			attr:     criteria.Set(""),
			body:     "frombody",
			expected: "/host//wiki",
		},
		{
			name:     "showall",
			kind:     criteria.KindShowAll,
			body:     "myhost",
			expected: "/host/myhost/wiki",
		},
		{
			name:     "rvlist from attribute",
			kind:     criteria.KindRVList,
			attr:     criteria.Set("os"),
			body:     "ignored",
			expected: "/rvlist/os/wiki",
		},
		{
			name:     "rvlist from body",
			kind:     criteria.KindRVList,
			body:     " site ",
			expected: "/rvlist/site/wiki",
		},
		{
			name:     "hostlist",
			kind:     criteria.KindHostList,
			query:    criteria.ParseFilterBlock("hardware=v490\nsite!=qv"),
			expected: "/hostwiki/hardware.eq.v490/site.ne.qv",
		},
		{
			name:     "empty hostlist",
			kind:     criteria.KindHostList,
			expected: "/hostwiki",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			url, err := criteria.BuildURL(tt.kind, tt.query, tt.attr, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestBuildURLUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := criteria.BuildURL("frobnicate", criteria.Query{}, criteria.Attribute{}, "")
	require.Error(t, err)

	var kindErr criteria.UnknownRequestKindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, "frobnicate", kindErr.Kind)
	assert.Equal(t, "Error unknown type frobnicate.", kindErr.WikiMessage())
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      criteria.Request
		expected string
	}{
		{
			name: "table",
			req: criteria.Request{
				Type: criteria.Set("table"),
				Body: "print os\nprint osrev\nhardware=v490\norder os\norder site",
			},
			expected: "/hostwikitable/hardware.eq.v490/print=os,osrev/order=site",
		},
		{
			name: "hostlist treats print as a filter",
			req: criteria.Request{
				Type: criteria.Set("hostlist"),
				Body: "print os\nhardware=v490",
			},
			expected: "/hostwiki/print os/hardware.eq.v490",
		},
		{
			name:     "hostpage uses name attribute",
			req:      criteria.Request{Type: criteria.Set("hostpage"), Name: criteria.Set("web01")},
			expected: "/host_summary/web01/wiki",
		},
		{
			name:     "hostpage ignores key attribute",
			req:      criteria.Request{Type: criteria.Set("hostpage"), Key: criteria.Set("os"), Body: "myhost"},
			expected: "/host_summary/myhost/wiki",
		},
		{
			name:     "rvlist ignores name attribute",
			req:      criteria.Request{Type: criteria.Set("rvlist"), Name: criteria.Set("web01"), Body: "os"},
			expected: "/rvlist/os/wiki",
		},
		{
			name:     "showall",
			req:      criteria.Request{Type: criteria.Set("showall"), Body: "myhost"},
			expected: "/host/myhost/wiki",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			url, err := criteria.Compile(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestCompileMissingKind(t *testing.T) {
	t.Parallel()

	// the body would not compile to anything sensible; it must not be looked at
	_, err := criteria.Compile(criteria.Request{Body: "print os\nhardware=v490", Name: criteria.Set("web01")})
	require.Error(t, err)

	var missingErr criteria.MissingKindAttributeError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "hostinfo", missingErr.Tag)
	assert.Equal(t, "ERROR: <hostinfo> tag is missing 'type' attribute.", missingErr.WikiMessage())
}

func TestCompileUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := criteria.Compile(criteria.Request{Tag: "inventory", Type: criteria.Set("frobnicate")})
	require.Error(t, err)

	var kindErr criteria.UnknownRequestKindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, "frobnicate", kindErr.Kind)
	assert.Contains(t, err.Error(), `unknown type "frobnicate"`)
}

func TestCompileEmptyTypeIsUnknown(t *testing.T) {
	t.Parallel()

	_, err := criteria.Compile(criteria.Request{Type: criteria.Set("")})

	var kindErr criteria.UnknownRequestKindError
	require.True(t, errors.As(err, &kindErr))
	assert.Equal(t, "Error unknown type .", kindErr.WikiMessage())
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req := criteria.NewRequest("", map[string]string{"type": "rvlist", "key": "", "class": "x"}, "os")

	assert.Equal(t, criteria.Set("rvlist"), req.Type)
	assert.Equal(t, criteria.Set(""), req.Key)
	assert.False(t, req.Name.Present)
	assert.Equal(t, criteria.KindRVList, req.Kind())
	assert.Equal(t, criteria.DefaultTag, req.TagName())

	url, err := criteria.Compile(req)
	require.NoError(t, err)
	assert.Equal(t, "/rvlist//wiki", url)
}
