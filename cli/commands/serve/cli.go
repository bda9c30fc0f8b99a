// Package serve implements `hostwiki serve`, which runs the render sidecar for wiki engine hooks.
package serve

import (
	"github.com/hostinfo/hostwiki/cli/flags"
	"github.com/hostinfo/hostwiki/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "serve"

func NewFlags(opts *options.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        options.FlagNameListen,
			EnvVars:     flags.EnvVars(options.FlagNameListen),
			Usage:       "Listen `ADDRESS` of the render server, e.g. 127.0.0.1:8089.",
			DefaultText: opts.ListenAddr,
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Run the render server the wiki engine hook posts tags to.",
		UsageText: "hostwiki serve --listen 127.0.0.1:8089",
		Flags:     NewFlags(opts),
		Action: func(ctx *cli.Context) error {
			// The config file is applied before this command's flags are parsed.
			if ctx.IsSet(options.FlagNameListen) {
				opts.ListenAddr = ctx.String(options.FlagNameListen)
			}

			return Run(ctx.Context, opts)
		},
	}
}
