// Package cli assembles the hostwiki command line application.
package cli

import (
	"os"

	"github.com/hostinfo/hostwiki/cli/commands/compile"
	"github.com/hostinfo/hostwiki/cli/commands/explain"
	"github.com/hostinfo/hostwiki/cli/commands/render"
	"github.com/hostinfo/hostwiki/cli/commands/serve"
	"github.com/hostinfo/hostwiki/cli/flags"
	"github.com/hostinfo/hostwiki/config"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/options"
	"github.com/urfave/cli/v2"
)

const AppName = "hostwiki"

// Version is set at build time.
var Version = "dev"

// NewApp creates the hostwiki CLI App.
func NewApp(opts *options.Options) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Compiles <hostinfo> wiki tags into hostinfo inventory requests and renders their results."
	app.UsageText = "hostwiki [global options] <command> [options]"
	app.Version = Version
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.Reader = opts.Reader
	app.Flags = NewGlobalFlags(opts)
	app.Commands = []*cli.Command{
		compile.NewCommand(opts),
		explain.NewCommand(opts),
		render.NewCommand(opts),
		serve.NewCommand(opts),
	}
	app.Before = beforeRunningCommand(opts)
	app.ExitErrHandler = func(*cli.Context, error) {}

	return app
}

// NewGlobalFlags returns the flags accepted by every command.
func NewGlobalFlags(opts *options.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        options.FlagNameConfig,
			EnvVars:     flags.EnvVars(options.FlagNameConfig),
			Destination: &opts.ConfigPath,
			Usage:       "Path to the config `FILE`. Defaults to hostwiki.hcl in the working dir, then ~/.hostwiki.hcl.",
			TakesFile:   true,
		},
		&cli.StringFlag{
			Name:        options.FlagNameInventoryURL,
			EnvVars:     flags.EnvVars(options.FlagNameInventoryURL),
			Destination: &opts.InventoryURL,
			Value:       opts.InventoryURL,
			Usage:       "Base `URL` of the hostinfo inventory service.",
		},
		&cli.DurationFlag{
			Name:        options.FlagNameTimeout,
			EnvVars:     flags.EnvVars(options.FlagNameTimeout),
			Destination: &opts.Timeout,
			Value:       opts.Timeout,
			Usage:       "Timeout of one inventory request.",
		},
		&cli.StringFlag{
			Name:    options.FlagNameLogLevel,
			EnvVars: flags.EnvVars(options.FlagNameLogLevel),
			Value:   opts.LogLevel.String(),
			Usage:   "Log `LEVEL`: error, warn, info, debug or trace.",
		},
		&cli.StringFlag{
			Name:        options.FlagNameTag,
			EnvVars:     flags.EnvVars(options.FlagNameTag),
			Destination: &opts.Tag,
			Value:       opts.Tag,
			Usage:       "Tag `NAME` used in error messages.",
		},
	}
}

func beforeRunningCommand(opts *options.Options) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if err := opts.SetLogLevel(ctx.String(options.FlagNameLogLevel)); err != nil {
			return err
		}

		if err := loadConfig(ctx, opts); err != nil {
			return err
		}

		return opts.Validate()
	}
}

func loadConfig(ctx *cli.Context, opts *options.Options) error {
	if opts.WorkingDir == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return errors.New(err)
		}

		opts.WorkingDir = workingDir
	}

	path := opts.ConfigPath

	if path == "" {
		discovered, err := config.DiscoveryPath(opts.WorkingDir, opts.HomeDir)
		if err != nil {
			return err
		}

		if discovered == "" {
			opts.Logger.Tracef("No config file found in %s or the home directory", opts.WorkingDir)
			return nil
		}

		path = discovered
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	opts.Logger.Debugf("Loaded config %s", cfg.Path)

	return opts.ApplyConfig(cfg, ctx.IsSet)
}
