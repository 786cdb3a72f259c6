package server

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/safety-console/pkg/application"
)

type echoController struct{}

func (echoController) Key() string { return "/echo" }

func (echoController) Register(r *mux.Router) {
	r.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("roster ", 400))
	}).Methods(http.MethodGet)
}

func tagMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Tagged", "yes")
		next.ServeHTTP(w, r)
	})
}

func newTestServer() *HTTPServer {
	app := application.New(&application.ApplicationOptions{})
	app.RegisterControllers(echoController{})
	app.RegisterMiddleware(tagMiddleware)
	return NewHTTPServer(app, http.NotFoundHandler(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
}

func TestHTTPServer_Gzip(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(body), "roster roster"))
}

func TestHTTPServer_FallbacksRunMiddleware(t *testing.T) {
	s := newTestServer()

	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "yes", rr.Header().Get("X-Tagged"))

	rr = httptest.NewRecorder()
	s.Router().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/echo", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, "yes", rr.Header().Get("X-Tagged"))
}
