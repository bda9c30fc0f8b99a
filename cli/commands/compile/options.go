package compile

import "github.com/hostinfo/hostwiki/options"

type Options struct {
	*options.Options

	// Full prints the absolute URL instead of the path.
	Full bool
}

func NewOptions(opts *options.Options) *Options {
	return &Options{Options: opts}
}
