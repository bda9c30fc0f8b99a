// Package explain implements `hostwiki explain`, which shows how each line of a tag body is compiled
// and how the inventory service will read it back.
package explain

import (
	"github.com/hostinfo/hostwiki/cli/flags"
	"github.com/hostinfo/hostwiki/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "explain"

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Explain how a tag body compiles.",
		UsageText: "hostwiki explain --type table --body-file criteria.txt",
		Flags:     flags.NewRequestFlags(),
		Action: func(ctx *cli.Context) error {
			req, err := flags.Request(ctx, opts)
			if err != nil {
				return err
			}

			return Run(ctx.Context, opts, req)
		},
	}
}
