// Package inventorytest provides a fake hostinfo inventory service for tests.
package inventorytest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hostinfo/hostwiki/internal/criteria"
)

// Server answers every compiled path with markup describing what it decoded, e.g.
//
//	table | hardware equal v490 | print os,osrev | order site
//
// Paths registered with Fail get a 500, paths registered with Empty get an empty 200 and paths
// registered with Respond get the given markup. Paths are matched after unescaping.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	failing  map[string]bool
	empty    map[string]bool
	markup   map[string]string
	requests []string
}

// NewServer starts a fake inventory and stops it when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()

	srv := &Server{
		failing: make(map[string]bool),
		empty:   make(map[string]bool),
		markup:  make(map[string]string),
	}
	srv.Server = httptest.NewServer(http.HandlerFunc(srv.handle))
	t.Cleanup(srv.Close)

	return srv
}

// Fail makes the server answer path with an internal server error.
func (srv *Server) Fail(path string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.failing[path] = true
}

// Empty makes the server answer path with no body.
func (srv *Server) Empty(path string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.empty[path] = true
}

// Respond makes the server answer path with markup.
func (srv *Server) Respond(path, markup string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.markup[path] = markup
}

// Requests returns the paths requested so far.
func (srv *Server) Requests() []string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return append([]string(nil), srv.requests...)
}

func (srv *Server) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	srv.mu.Lock()
	srv.requests = append(srv.requests, path)
	failing, empty := srv.failing[path], srv.empty[path]
	markup, canned := srv.markup[path]
	srv.mu.Unlock()

	switch {
	case failing:
		http.Error(w, "inventory failure", http.StatusInternalServerError)
		return
	case empty:
		w.WriteHeader(http.StatusOK)
		return
	case canned:
		fmt.Fprint(w, markup) //nolint:errcheck
		return
	}

	target, err := criteria.ParseTarget(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, Markup(target)) //nolint:errcheck
}

// Markup returns the text the fake server renders for target.
func Markup(target *criteria.Target) string {
	parts := []string{target.Kind.String()}

	if target.Lookup != "" {
		parts = append(parts, target.Lookup)
	}

	for _, q := range target.Qualifiers {
		parts = append(parts, q.String())
	}

	if len(target.Fields) > 0 {
		parts = append(parts, "print "+strings.Join(target.Fields, ","))
	}

	if target.Order != "" {
		parts = append(parts, "order "+target.Order)
	}

	return strings.Join(parts, " | ")
}
