// Package hostinfo implements the `<hostinfo>` tag: it compiles the tag into an inventory path,
// fetches the pre-rendered markup and hands it to the host wiki engine for the final render.
//
// Failures never propagate to the wiki engine. They are returned as text in place of the content,
// e.g. "ERROR: <hostinfo> tag is missing 'type' attribute.".
package hostinfo

import (
	"context"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/hostinfo/hostwiki/pkg/log"
)

// ErrorPrefix starts the text of almost every failure. Unknown kinds are reported as "Error unknown type <kind>.".
const ErrorPrefix = "ERROR: "

// RenderFunc re-parses inventory markup with the host wiki engine.
type RenderFunc func(ctx context.Context, markup string) (string, error)

// Passthrough is a RenderFunc that returns the markup unchanged, for hosts that parse tag output themselves.
func Passthrough(_ context.Context, markup string) (string, error) {
	return markup, nil
}

// Renderer renders `<hostinfo>` tags. The zero value is not usable, use NewRenderer.
type Renderer struct {
	fetcher inventory.Fetcher
	render  RenderFunc
	logger  log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderFunc sets the host engine callback.
func WithRenderFunc(render RenderFunc) Option {
	return func(renderer *Renderer) {
		renderer.render = render
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(renderer *Renderer) {
		renderer.logger = logger
	}
}

// NewRenderer returns a Renderer that reads from fetcher.
func NewRenderer(fetcher inventory.Fetcher, opts ...Option) *Renderer {
	renderer := &Renderer{
		fetcher: fetcher,
		render:  Passthrough,
		logger:  log.Default(),
	}

	for _, opt := range opts {
		opt(renderer)
	}

	return renderer
}

// Render returns the content that replaces the tag, or an error text in its place.
func (renderer *Renderer) Render(ctx context.Context, req criteria.Request) string {
	output, err := renderer.RenderE(ctx, req)
	if err != nil {
		return renderer.Report(req, err)
	}

	return output
}

// Report logs the failure of req and returns the text shown in place of the tag.
func (renderer *Renderer) Report(req criteria.Request, err error) string {
	renderer.logger.WithField(log.FieldKeyTag, req.TagName()).Debugf("Render failed: %v", err)

	if errStack := errors.ErrorStack(err); errStack != "" {
		renderer.logger.Trace(errStack)
	}

	return ErrorText(err)
}

// RenderE is Render for callers that want the typed error instead of its text.
func (renderer *Renderer) RenderE(ctx context.Context, req criteria.Request) (string, error) {
	path, err := criteria.Compile(req)
	if err != nil {
		return "", err
	}

	logger := renderer.logger.WithFields(log.Fields{
		log.FieldKeyKind: req.Kind().String(),
		log.FieldKeyURL:  renderer.fetcher.URL(path),
	})
	logger.Debugf("Compiled <%s> tag", req.TagName())

	markup, err := renderer.fetcher.Fetch(ctx, path)
	if err != nil {
		return "", err
	}

	output, err := renderer.render(ctx, markup)
	if err != nil {
		return "", errors.WithStackTraceAndPrefix(err, "rendering inventory markup")
	}

	return output, nil
}

// ErrorText returns the text shown on the page for err.
func ErrorText(err error) string {
	var messenger criteria.WikiMessenger
	if errors.As(err, &messenger) {
		return messenger.WikiMessage()
	}

	return ErrorPrefix + err.Error()
}
