package render

import (
	"context"
	"fmt"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/internal/hostinfo"
	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/hostinfo/hostwiki/options"
)

// ExitCodeErrorText is returned when the tag rendered to an error text.
const ExitCodeErrorText = 1

// NewRenderer returns a renderer reading from the configured inventory service.
func NewRenderer(opts *options.Options) *hostinfo.Renderer {
	client := inventory.NewClient(opts.InventoryURL,
		inventory.WithTimeout(opts.Timeout),
		inventory.WithLogger(opts.Logger),
	)

	return hostinfo.NewRenderer(client, hostinfo.WithLogger(opts.Logger))
}

// Run prints what the tag renders to. A failed render prints its error text and is also reported
// through the exit code. Inventory markup is printed as is, whatever it starts with.
func Run(ctx context.Context, opts *options.Options, req criteria.Request) error {
	renderer := NewRenderer(opts)

	output, renderErr := renderer.RenderE(ctx, req)
	if renderErr != nil {
		output = renderer.Report(req, renderErr)
	}

	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return errors.New(err)
	}

	if renderErr != nil {
		return errors.ErrorWithExitCode{
			Err:      errors.Errorf("<%s> tag rendered an error: %w", req.TagName(), renderErr),
			ExitCode: ExitCodeErrorText,
		}
	}

	return nil
}
