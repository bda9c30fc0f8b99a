// Package criteria compiles `<hostinfo>` tag requests into the URL paths served by the hostinfo inventory service.
//
// # Overview
//
// The package has two halves:
//  1. Compiler: directive block -> Query -> URL path (ParseDirectiveBlock, BuildURL, Compile)
//  2. Decoder: URL path -> Target with decoded qualifiers (Decode, ParseTarget)
//
// The decoder mirrors how the inventory service reads a path. It is used to explain
// a compiled request and to serve fake inventories in tests.
//
// # Directive Blocks
//
// The body of a `table` tag is a block of directives, one per line:
//
//	print os              # add "os" to the printed columns
//	print osrev           # columns are comma-joined in order: os,osrev
//	order site            # sort order; the last order line wins
//	hardware=v490         # anything else is a filter, ANDed by position
//	site!=qv
//
// A `hostlist` body is a block of filters only; `print` and `order` lines are
// treated as filters there.
//
// # Operator Escaping
//
// Comparison operators cannot travel in a URL path segment, so each filter is
// rewritten with textual tokens. The substitutions are applied in this order:
//
//	!=  ->  .ne.
//	=   ->  .eq.
//	<   ->  .lt.
//	>   ->  .gt.
//	~   ->  .ss.
//	/   ->  .slash.
//
// `!=` must be rewritten before `=`, otherwise `a!=b` would become `a!.eq.b`.
// Nothing else is escaped and no percent-encoding is applied.
//
// # Paths
//
//	table      /hostwikitable/<filter>.../print=<fields>/order=<field>
//	rvlist     /rvlist/<key>/wiki
//	hostlist   /hostwiki/<filter>...
//	hostpage   /host_summary/<name>/wiki
//	showall    /host/<name>/wiki
//
// For `rvlist` the lookup value is the `key` attribute, for `hostpage` and
// `showall` it is the `name` attribute. Without the attribute the trimmed tag
// body is used instead.
package criteria
