// Package compile implements `hostwiki compile`, which prints the inventory path a tag compiles to.
package compile

import (
	"github.com/hostinfo/hostwiki/cli/flags"
	"github.com/hostinfo/hostwiki/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "compile"

	FullFlagName = "full"
)

func NewFlags(cmdOpts *Options) []cli.Flag {
	return append(flags.NewRequestFlags(),
		&cli.BoolFlag{
			Name:        FullFlagName,
			Destination: &cmdOpts.Full,
			Usage:       "Print the full URL including the inventory base URL.",
		},
	)
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Compile a tag into an inventory path.",
		UsageText: "hostwiki compile --type table --body-file criteria.txt",
		Flags:     NewFlags(cmdOpts),
		Action: func(ctx *cli.Context) error {
			req, err := flags.Request(ctx, opts)
			if err != nil {
				return err
			}

			return Run(ctx.Context, cmdOpts, req)
		},
	}
}
