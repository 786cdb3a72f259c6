package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
	"github.com/jacksonlee411/safety-console/pkg/httpapi"
)

func testConfiguration() *configuration.Configuration {
	return &configuration.Configuration{
		RequestIDHeader: "X-Request-ID",
		RealIPHeader:    "X-Real-IP",
		CorsOrigins:     []string{"http://localhost:3000"},
		Prometheus:      configuration.PrometheusOptions{Path: "/debug/prometheus"},
		RateLimit:       configuration.RateLimitOptions{Enabled: true, GlobalRPS: 100, Storage: "memory"},
		Roster:          configuration.RosterOptions{DefaultLocale: "en"},
	}
}

func TestDefault_ServesHealthAndFallbacks(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := application.New(&application.ApplicationOptions{Logger: logger})
	app.RegisterControllers(NewHealthController(map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
	}))

	srv, err := Default(&DefaultOptions{
		Logger:        logger,
		Configuration: testConfiguration(),
		Application:   app,
	})
	require.NoError(t, err)
	router := srv.Router()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	var health healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	require.Equal(t, healthStatusHealthy, health.Status)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	var env httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "NOT_FOUND", env.Code)
	require.NotEmpty(t, env.Meta["request_id"])
}

func TestHealthController_Down(t *testing.T) {
	c := NewHealthController(map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	})
	rr := httptest.NewRecorder()
	c.Get(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var health healthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	require.Equal(t, healthStatusDown, health.Status)
	require.Equal(t, healthStatusHealthy, health.Checks["database"].Status)
	require.Equal(t, "connection refused", health.Checks["redis"].Error)
}

func TestDefault_RejectsMissingRouteRules(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	conf := testConfiguration()
	conf.RoutingRulesPath = t.TempDir() + "/missing.yaml"

	_, err := Default(&DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   application.New(&application.ApplicationOptions{Logger: logger}),
	})
	require.Error(t, err)
}
