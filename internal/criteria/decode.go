package criteria

import (
	"regexp"
	"strings"
)

// Operator is a comparison understood by the inventory service.
type Operator int

const (
	OpHost Operator = iota
	OpUnequal
	OpEqual
	OpLessThan
	OpGreaterThan
	OpContains
	OpNotContains
	OpApprox
	OpUndefined
	OpDefined
	OpHostRegexp
)

var operatorNames = map[Operator]string{
	OpHost:        "host",
	OpUnequal:     "unequal",
	OpEqual:       "equal",
	OpLessThan:    "lessthan",
	OpGreaterThan: "greaterthan",
	OpContains:    "contains",
	OpNotContains: "notcontains",
	OpApprox:      "approx",
	OpUndefined:   "undef",
	OpDefined:     "def",
	OpHostRegexp:  "hostre",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}

	return "unknown"
}

type qualifierRule struct {
	op     Operator
	regexp *regexp.Regexp
}

// qualifierRules is tried top to bottom, the first match wins. Unequal has to come before equal.
// Two-part rules carry no value and match on a prefix only.
var qualifierRules = []qualifierRule{
	{OpUnequal, threePart(`!=|\.ne\.`)},
	{OpEqual, threePart(`=|\.eq\.`)},
	{OpLessThan, threePart(`<|\.lt\.`)},
	{OpGreaterThan, threePart(`>|\.gt\.`)},
	{OpContains, threePart(`~|\.ss\.`)},
	{OpNotContains, threePart(`%|\.ns\.`)},
	{OpApprox, threePart(`@|\.ap\.`)},
	{OpUndefined, twoPart(`\.undef|\.undefined|\.unset`)},
	{OpDefined, twoPart(`\.def|\.defined|\.set`)},
	{OpHostRegexp, twoPart(`\.hostre`)},
}

var hostQualifier = regexp.MustCompile(`^\w+`)

func threePart(ops string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)^(.+)(?:` + ops + `)(.+)`)
}

func twoPart(ops string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)^(.+)(?:` + ops + `)`)
}

// Qualifier is one decoded filter.
type Qualifier struct {
	Op    Operator
	Key   string
	Value string
}

func (q Qualifier) String() string {
	switch q.Op {
	case OpHost:
		return "host " + q.Value
	case OpUndefined, OpDefined, OpHostRegexp:
		return q.Op.String() + " " + q.Key
	default:
		return q.Key + " " + q.Op.String() + " " + q.Value
	}
}

// Decode interprets one filter the way the inventory service does. It accepts both the
// escaped and the raw operator forms. Keys and values are lower-cased.
func Decode(segment string) (Qualifier, error) {
	arg := strings.ReplaceAll(segment, ".slash.", "/")

	for _, rule := range qualifierRules {
		match := rule.regexp.FindStringSubmatch(arg)
		if match == nil {
			continue
		}

		q := Qualifier{Op: rule.op, Key: strings.ToLower(match[1])}
		if len(match) > 2 {
			q.Value = strings.ToLower(match[2])
		}

		return q, nil
	}

	if hostQualifier.MatchString(arg) {
		return Qualifier{Op: OpHost, Value: strings.ToLower(arg)}, nil
	}

	return Qualifier{}, NewUnknownQualifierError(segment)
}

// Target is a compiled path read back into its parts.
type Target struct {
	Kind       Kind
	Qualifiers []Qualifier
	Fields     []string
	Order      string
	// Lookup is the key or host name for kinds that address a single object.
	Lookup string
}

// ParseTarget reads an inventory path produced by BuildURL.
func ParseTarget(path string) (*Target, error) {
	switch {
	case path == TablePath || strings.HasPrefix(path, TablePath+"/"):
		return parseTable(strings.TrimPrefix(path, TablePath))
	case path == HostListPath || strings.HasPrefix(path, HostListPath+"/"):
		qualifiers, err := decodeSegments(strings.TrimPrefix(path, HostListPath))
		if err != nil {
			return nil, err
		}

		return &Target{Kind: KindHostList, Qualifiers: qualifiers}, nil
	}

	for _, route := range []struct {
		kind   Kind
		prefix string
	}{
		{KindRVList, RVListPath + "/"},
		{KindHostPage, HostSummaryPath + "/"},
		{KindShowAll, HostPath + "/"},
	} {
		if strings.HasPrefix(path, route.prefix) && strings.HasSuffix(path, WikiSuffix) {
			lookup := strings.TrimSuffix(strings.TrimPrefix(path, route.prefix), WikiSuffix)
			return &Target{Kind: route.kind, Lookup: lookup}, nil
		}
	}

	return nil, NewUnknownPathError(path)
}

func parseTable(rest string) (*Target, error) {
	target := &Target{Kind: KindTable}

	for _, segment := range strings.Split(rest, "/") {
		switch {
		case segment == "":
			continue
		case strings.HasPrefix(segment, printOption):
			target.Fields = strings.Split(strings.TrimPrefix(segment, printOption), ",")
		case strings.HasPrefix(segment, orderOption):
			target.Order = strings.TrimPrefix(segment, orderOption)
		default:
			q, err := Decode(segment)
			if err != nil {
				return nil, err
			}

			target.Qualifiers = append(target.Qualifiers, q)
		}
	}

	return target, nil
}

func decodeSegments(rest string) ([]Qualifier, error) {
	var qualifiers []Qualifier

	for _, segment := range strings.Split(rest, "/") {
		if segment == "" {
			continue
		}

		q, err := Decode(segment)
		if err != nil {
			return nil, err
		}

		qualifiers = append(qualifiers, q)
	}

	return qualifiers, nil
}
