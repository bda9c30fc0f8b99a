// Package flags contains the flags shared by the commands that take a tag request.
package flags

import (
	"io"
	"os"
	"strings"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/options"
	"github.com/urfave/cli/v2"
)

const (
	EnvVarPrefix = "HOSTWIKI_"

	TypeFlagName     = "type"
	NameFlagName     = "name"
	KeyFlagName      = "key"
	BodyFlagName     = "body"
	BodyFileFlagName = "body-file"

	// StdinPath reads the body from standard input.
	StdinPath = "-"
)

// EnvVars returns the environment variable names of a flag, e.g. `inventory-url` -> `HOSTWIKI_INVENTORY_URL`.
func EnvVars(name string) []string {
	return []string{EnvVarPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

// NewRequestFlags returns the flags describing one tag invocation.
// Request attributes have no environment variables: each invocation is its own tag.
func NewRequestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  TypeFlagName,
			Usage: "Tag `type` attribute: table, rvlist, hostlist, hostpage or showall.",
		},
		&cli.StringFlag{
			Name:  NameFlagName,
			Usage: "Tag `name` attribute, the host for hostpage and showall.",
		},
		&cli.StringFlag{
			Name:  KeyFlagName,
			Usage: "Tag `key` attribute, the key for rvlist.",
		},
		&cli.StringFlag{
			Name:  BodyFlagName,
			Usage: "Tag body.",
		},
		&cli.StringFlag{
			Name:      BodyFileFlagName,
			Usage:     "Read the tag body from `FILE`, or from stdin when `-`.",
			TakesFile: true,
		},
	}
}

// Request builds the tag request from the flags. An attribute flag that is given, even empty, is present.
func Request(ctx *cli.Context, opts *options.Options) (criteria.Request, error) {
	req := criteria.Request{Tag: opts.Tag}

	for name, attr := range map[string]*criteria.Attribute{
		TypeFlagName: &req.Type,
		NameFlagName: &req.Name,
		KeyFlagName:  &req.Key,
	} {
		if ctx.IsSet(name) {
			*attr = criteria.Set(ctx.String(name))
		}
	}

	if ctx.IsSet(BodyFlagName) && ctx.IsSet(BodyFileFlagName) {
		return req, errors.Errorf("--%s and --%s are mutually exclusive", BodyFlagName, BodyFileFlagName)
	}

	req.Body = ctx.String(BodyFlagName)

	if path := ctx.String(BodyFileFlagName); path != "" {
		body, err := readBody(path, opts.Reader)
		if err != nil {
			return req, err
		}

		req.Body = body
	}

	return req, nil
}

func readBody(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		body, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.New(err)
		}

		return string(body), nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStackTraceAndPrefix(err, "reading tag body")
	}

	return string(body), nil
}
