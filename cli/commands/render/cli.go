// Package render implements `hostwiki render`, which renders a tag the way the wiki hook does.
package render

import (
	"github.com/hostinfo/hostwiki/cli/flags"
	"github.com/hostinfo/hostwiki/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "render"

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Compile a tag, fetch it from the inventory service and print the markup.",
		UsageText: "hostwiki render --type hostpage --name web01",
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
