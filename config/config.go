// Package config loads the optional hostwiki configuration file.
//
// The file is HCL, e.g.:
//
//	inventory {
//	  url     = "http://hostinfo"
//	  timeout = "30s"
//	}
//
//	server {
//	  listen           = "127.0.0.1:8089"
//	  shutdown_timeout = "10s"
//	}
//
//	tag       = "hostinfo"
//	log_level = "info"
//
// Every setting is optional. Values given on the command line or in the environment take precedence.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/pkg/log"
	"github.com/mitchellh/go-homedir"
)

const (
	// DefaultConfigFilename is looked up in the working directory.
	DefaultConfigFilename = "hostwiki.hcl"

	// HomeConfigFilename is looked up in the user's home directory.
	HomeConfigFilename = ".hostwiki.hcl"
)

// Config is the structure of the configuration file.
type Config struct {
	Inventory *InventoryConfig `hcl:"inventory,block"`
	Server    *ServerConfig    `hcl:"server,block"`
	Tag       *string          `hcl:"tag,optional"`
	LogLevel  *string          `hcl:"log_level,optional"`

	// Path is the file the config was read from.
	Path string
}

// InventoryConfig configures the inventory client.
type InventoryConfig struct {
	URL     *string `hcl:"url,optional"`
	Timeout *string `hcl:"timeout,optional"`
}

// ServerConfig configures the render sidecar.
type ServerConfig struct {
	Listen          *string `hcl:"listen,optional"`
	ShutdownTimeout *string `hcl:"shutdown_timeout,optional"`
}

// LoadConfig returns the loaded configuration at the specified `path`. Files ending in `.json` are read as HCL JSON.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	return ParseConfig(content, path)
}

// ParseConfig decodes the configuration from content; `path` is only used for diagnostics and the file format.
func ParseConfig(content []byte, path string) (*Config, error) {
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)

	switch filepath.Ext(path) {
	case ".json":
		file, diags = parser.ParseJSON(content, path)
	default:
		file, diags = parser.ParseHCL(content, path)
	}

	if diags.HasErrors() {
		return nil, errors.New(NewDecodeError(path, diags))
	}

	cfg := &Config{Path: path}

	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, errors.New(NewDecodeError(path, diags))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscoveryPath returns the first config file found in workingDir or homeDir, or an empty string
// if there is none. An empty homeDir means the current user's home directory.
func DiscoveryPath(workingDir, homeDir string) (string, error) {
	if homeDir == "" {
		dir, err := homedir.Dir()
		if err != nil {
			return "", errors.New(err)
		}

		homeDir = dir
	}

	paths := []string{
		filepath.Join(workingDir, DefaultConfigFilename),
		filepath.Join(homeDir, HomeConfigFilename),
	}

	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", nil
}

// Validate checks every value and reports all problems at once.
func (cfg *Config) Validate() error {
	var errs *errors.MultiError

	if cfg.Inventory != nil {
		if cfg.Inventory.URL != nil {
			errs = errs.Append(validateURL("inventory.url", *cfg.Inventory.URL))
		}

		if cfg.Inventory.Timeout != nil {
			errs = errs.Append(validateDuration("inventory.timeout", *cfg.Inventory.Timeout))
		}
	}

	if cfg.Server != nil && cfg.Server.ShutdownTimeout != nil {
		errs = errs.Append(validateDuration("server.shutdown_timeout", *cfg.Server.ShutdownTimeout))
	}

	if cfg.LogLevel != nil {
		if _, err := log.ParseLevel(*cfg.LogLevel); err != nil {
			errs = errs.Append(NewInvalidValueError("log_level", *cfg.LogLevel, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return errors.New(NewValidationError(cfg.Path, err))
	}

	return nil
}

// InventoryTimeout returns the configured timeout, or zero when unset.
func (cfg *Config) InventoryTimeout() time.Duration {
	if cfg.Inventory == nil || cfg.Inventory.Timeout == nil {
		return 0
	}

	// validated on load
	timeout, _ := time.ParseDuration(*cfg.Inventory.Timeout) //nolint:errcheck

	return timeout
}

// ShutdownTimeout returns the configured server shutdown timeout, or zero when unset.
func (cfg *Config) ShutdownTimeout() time.Duration {
	if cfg.Server == nil || cfg.Server.ShutdownTimeout == nil {
		return 0
	}

	timeout, _ := time.ParseDuration(*cfg.Server.ShutdownTimeout) //nolint:errcheck

	return timeout
}

func validateURL(name, val string) error {
	parsed, err := url.Parse(val)
	if err != nil {
		return NewInvalidValueError(name, val, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return NewInvalidValueError(name, val, errors.New("scheme must be http or https"))
	}

	if parsed.Host == "" {
		return NewInvalidValueError(name, val, errors.New("missing host"))
	}

	return nil
}

func validateDuration(name, val string) error {
	timeout, err := time.ParseDuration(val)
	if err != nil {
		return NewInvalidValueError(name, val, err)
	}

	if timeout <= 0 {
		return NewInvalidValueError(name, val, errors.New("must be positive"))
	}

	return nil
}
