package server

import (
	"io"
	"net/http"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/internal/hostinfo"
	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/labstack/echo/v4"
)

const (
	RenderPath  = "/render/:tag"
	CompilePath = "/compile"
	HealthPath  = "/healthz"

	tagParam  = "tag"
	bodyParam = "body"
)

// CompileResponse is the body returned by the compile endpoint.
type CompileResponse struct {
	URL   string `json:"url,omitempty"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// RenderController serves the wiki hook. Rendering always answers 200: a failed tag renders as its error text.
type RenderController struct {
	Renderer *hostinfo.Renderer
	Fetcher  inventory.Fetcher
}

// Register implements router.Controller.Register
func (controller *RenderController) Register(router *Router) {
	router.POST(RenderPath, controller.renderAction)
	router.GET(CompilePath, controller.compileAction)
	router.GET(HealthPath, controller.healthAction)
}

func (controller *RenderController) renderAction(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return errors.New(err)
	}

	req := requestFromQuery(ctx, ctx.Param(tagParam), string(body))
	output := controller.Renderer.Render(ctx.Request().Context(), req)

	return ctx.String(http.StatusOK, output)
}

func (controller *RenderController) compileAction(ctx echo.Context) error {
	req := requestFromQuery(ctx, criteria.DefaultTag, ctx.QueryParam(bodyParam))

	path, err := criteria.Compile(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, &CompileResponse{Error: hostinfo.ErrorText(err)})
	}

	return ctx.JSON(http.StatusOK, &CompileResponse{
		URL:  controller.Fetcher.URL(path),
		Path: path,
	})
}

func (controller *RenderController) healthAction(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "ok")
}

// requestFromQuery reads tag attributes from the query string. A parameter given without a value is present.
func requestFromQuery(ctx echo.Context, tag, body string) criteria.Request {
	attrs := make(map[string]string)

	for name, values := range ctx.QueryParams() {
		if len(values) > 0 {
			attrs[name] = values[0]
		}
	}

	return criteria.NewRequest(tag, attrs, body)
}
