package criteria

import "strings"

// Path prefixes and suffixes of the inventory service routes.
const (
	TablePath       = "/hostwikitable"
	RVListPath      = "/rvlist"
	HostListPath    = "/hostwiki"
	HostSummaryPath = "/host_summary"
	HostPath        = "/host"
	WikiSuffix      = "/wiki"

	printOption = "print="
	orderOption = "order="
)

// BuildURL serializes a request of the given kind into an inventory path.
// `table` and `hostlist` are built from query; the other kinds look up attr, or the trimmed body when attr is absent.
func BuildURL(kind Kind, query Query, attr Attribute, body string) (string, error) {
	lookup := attr.Or(strings.TrimSpace(body))

	switch kind {
	case KindTable:
		return tablePath(query), nil
	case KindRVList:
		return RVListPath + "/" + lookup + WikiSuffix, nil
	case KindHostList:
		return HostListPath + filterPath(query), nil
	case KindHostPage:
		return HostSummaryPath + "/" + lookup + WikiSuffix, nil
	case KindShowAll:
		return HostPath + "/" + lookup + WikiSuffix, nil
	}

	return "", NewUnknownRequestKindError(kind.String())
}

// Compile turns a tag request into an inventory path. The type attribute is checked before the body is looked at.
func Compile(req Request) (string, error) {
	if !req.Type.Present {
		return "", NewMissingKindAttributeError(req.TagName())
	}

	kind := req.Kind()

	switch kind {
	case KindTable:
		return BuildURL(kind, ParseDirectiveBlock(req.Body), Attribute{}, req.Body)
	case KindHostList:
		return BuildURL(kind, ParseFilterBlock(req.Body), Attribute{}, req.Body)
	case KindRVList:
		return BuildURL(kind, Query{}, req.Key, req.Body)
	case KindHostPage, KindShowAll:
		return BuildURL(kind, Query{}, req.Name, req.Body)
	}

	return "", NewUnknownRequestKindError(kind.String())
}

func tablePath(query Query) string {
	var sb strings.Builder

	sb.WriteString(TablePath)
	sb.WriteString(filterPath(query))

	if fields := query.Fields(); fields != "" {
		sb.WriteString("/" + printOption + fields)
	}

	if order := query.Order(); order != "" {
		sb.WriteString("/" + orderOption + order)
	}

	return sb.String()
}

func filterPath(query Query) string {
	var sb strings.Builder

	for _, filter := range query.filters {
		sb.WriteString("/" + filter)
	}

	return sb.String()
}
