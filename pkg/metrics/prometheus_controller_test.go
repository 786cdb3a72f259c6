package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusController_ServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	built := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "roster",
		Name:      "weeks_built_total",
		Help:      "test counter",
	})
	reg.MustRegister(built)
	built.Add(3)

	c := NewPrometheusControllerFor("", reg)
	require.Equal(t, "/debug/prometheus", c.Key())

	r := mux.NewRouter()
	c.Register(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug/prometheus", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "roster_weeks_built_total 3")

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/debug/prometheus", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
