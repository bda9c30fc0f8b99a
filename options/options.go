// Package options provides a set of options that configure the behavior of the hostwiki program.
package options

import (
	"io"
	"os"
	"time"

	"github.com/hostinfo/hostwiki/config"
	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/hostinfo/hostwiki/pkg/log"
)

const (
	DefaultListenAddr      = "127.0.0.1:8089"
	DefaultShutdownTimeout = 10 * time.Second

	defaultLogLevel = log.InfoLevel
)

// Options represents options that configure the behavior of the hostwiki program.
type Options struct {
	// Writer is where command output goes.
	Writer io.Writer

	// ErrWriter is where logs go.
	ErrWriter io.Writer

	// Reader is read when the body is given as `-`.
	Reader io.Reader

	Logger   log.Logger
	LogLevel log.Level

	// ConfigPath is the config file given on the command line. Empty means discover.
	ConfigPath string

	// WorkingDir is where the config file is discovered.
	WorkingDir string

	// HomeDir is searched for the config file after WorkingDir. Empty means the user's home directory.
	HomeDir string

	// InventoryURL is the base URL of the inventory service.
	InventoryURL string

	// Timeout bounds one inventory fetch.
	Timeout time.Duration

	// Tag is the tag name used in error messages.
	Tag string

	ListenAddr      string
	ShutdownTimeout time.Duration
}

// NewOptions creates Options writing to stdout and stderr.
func NewOptions() *Options {
	return NewOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewOptionsWithWriters creates Options with default values and the given writers.
func NewOptionsWithWriters(stdout, stderr io.Writer) *Options {
	return &Options{
		Writer:          stdout,
		ErrWriter:       stderr,
		Reader:          os.Stdin,
		Logger:          log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
		LogLevel:        defaultLogLevel,
		InventoryURL:    inventory.DefaultBaseURL,
		Timeout:         inventory.DefaultTimeout,
		Tag:             criteria.DefaultTag,
		ListenAddr:      DefaultListenAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// ApplyConfig copies the values set in cfg. isSet reports whether a setting was already given
// on the command line or in the environment, in which case it is left alone.
func (opts *Options) ApplyConfig(cfg *config.Config, isSet func(name string) bool) error {
	if cfg.Inventory != nil {
		if cfg.Inventory.URL != nil && !isSet(FlagNameInventoryURL) {
			opts.InventoryURL = *cfg.Inventory.URL
		}

		if timeout := cfg.InventoryTimeout(); timeout > 0 && !isSet(FlagNameTimeout) {
			opts.Timeout = timeout
		}
	}

	if cfg.Server != nil {
		if cfg.Server.Listen != nil && !isSet(FlagNameListen) {
			opts.ListenAddr = *cfg.Server.Listen
		}

		if timeout := cfg.ShutdownTimeout(); timeout > 0 {
			opts.ShutdownTimeout = timeout
		}
	}

	if cfg.Tag != nil && !isSet(FlagNameTag) {
		opts.Tag = *cfg.Tag
	}

	if cfg.LogLevel != nil && !isSet(FlagNameLogLevel) {
		if err := opts.SetLogLevel(*cfg.LogLevel); err != nil {
			return err
		}
	}

	return nil
}

// SetLogLevel parses str and applies it to the logger.
func (opts *Options) SetLogLevel(str string) error {
	level, err := log.ParseLevel(str)
	if err != nil {
		return errors.New(err)
	}

	opts.LogLevel = level
	opts.Logger.SetOptions(log.WithLevel(level))

	return nil
}

// Validate checks values that may come from flags or the environment.
func (opts *Options) Validate() error {
	var errs *errors.MultiError

	if opts.InventoryURL == "" {
		errs = errs.Append(errors.New("inventory URL must not be empty"))
	}

	if opts.Timeout <= 0 {
		errs = errs.Append(errors.Errorf("timeout must be positive, got %s", opts.Timeout))
	}

	return errs.ErrorOrNil()
}

// Flag names shared by the CLI and config precedence.
const (
	FlagNameConfig       = "config"
	FlagNameInventoryURL = "inventory-url"
	FlagNameTimeout      = "timeout"
	FlagNameLogLevel     = "log-level"
	FlagNameTag          = "tag"
	FlagNameListen       = "listen"
)
