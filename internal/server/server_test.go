package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/hostinfo/hostwiki/internal/inventory/inventorytest"
	"github.com/hostinfo/hostwiki/internal/server"
	"github.com/hostinfo/hostwiki/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newServer(t *testing.T, opts ...server.Option) (*server.Server, *inventorytest.Server) {
	t.Helper()

	inv := inventorytest.NewServer(t)
	logger := log.New(log.WithOutput(io.Discard), log.WithLevel(log.TraceLevel))

	opts = append([]server.Option{server.WithLogger(logger)}, opts...)

	return server.NewServer(inventory.NewClient(inv.URL), opts...), inv
}

func TestRenderEndpoint(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	testCases := []struct {
		name         string
		target       string
		body         string
		expectedBody string
	}{
		{
			name:         "hostpage from body",
			target:       "/render/hostinfo?type=hostpage",
			body:         "myhost\n",
			expectedBody: "hostpage | myhost",
		},
		{
			name:         "table",
			target:       "/render/hostinfo?type=table",
			body:         "hardware=v490\nprint os\norder site",
			expectedBody: "table | hardware equal v490 | print os | order site",
		},
		{
			name:         "missing type uses tag name",
			target:       "/render/inventory",
			body:         "myhost",
			expectedBody: "ERROR: <inventory> tag is missing 'type' attribute.",
		},
		{
			name:         "unknown type",
			target:       "/render/hostinfo?type=nope",
			expectedBody: "Error unknown type nope.",
		},
		{
			name:         "empty name attribute is present",
			target:       "/render/hostinfo?type=showall&name=",
			body:         "myhost",
			expectedBody: "showall",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestRenderEndpointUnreachable(t *testing.T) {
	t.Parallel()

	srv, inv := newServer(t)
	inv.Fail("/host/web01/wiki")

	req := httptest.NewRequest(http.MethodPost, "/render/hostinfo?type=showall&name=web01", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ERROR: hostinfo details ("+inv.URL+"/host/web01/wiki) couldn't be read", rec.Body.String())
}

func TestCompileEndpoint(t *testing.T) {
	t.Parallel()

	srv, inv := newServer(t)

	query := url.Values{
		"type": {"table"},
		"body": {"hardware=v490\nprint os"},
	}

	req := httptest.NewRequest(http.MethodGet, "/compile?"+query.Encode(), nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp server.CompileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "/hostwikitable/hardware.eq.v490/print=os", resp.Path)
	assert.Equal(t, inv.URL+resp.Path, resp.URL)
	assert.Empty(t, resp.Error)
	assert.Empty(t, inv.Requests())
}

func TestCompileEndpointError(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/compile?body=myhost", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp server.CompileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "ERROR: <hostinfo> tag is missing 'type' attribute.", resp.Error)
	assert.Empty(t, resp.Path)
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, server.WithBodyLimit("1K"))

	req := httptest.NewRequest(http.MethodPost, "/render/hostinfo?type=hostlist", bytes.NewReader(bytes.Repeat([]byte("a"), 4096)))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, server.WithAddr("127.0.0.1:0"))

	ln, err := srv.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	errGroup := new(errgroup.Group)
	errGroup.Go(func() error {
		return srv.Run(ctx, ln)
	})

	resp, err := http.Get("http://" + ln.Addr().String() + server.HealthPath)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, errGroup.Wait())
}
