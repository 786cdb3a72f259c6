package composables

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/safety-console/pkg/constants"
	"github.com/jacksonlee411/safety-console/pkg/shared"
)

var (
	ErrNoLogger = errors.New("logger not found")
)

type Params struct {
	IP        string
	UserAgent string
	Request   *http.Request
	Writer    http.ResponseWriter
}

// UseParams returns the request parameters from the context.
// If the parameters are not found, the second return value will be false.
func UseParams(ctx context.Context) (*Params, bool) {
	params, ok := ctx.Value(constants.ParamsKey).(*Params)
	return params, ok
}

// WithParams returns a new context with the request parameters.
func WithParams(ctx context.Context, params *Params) context.Context {
	return context.WithValue(ctx, constants.ParamsKey, params)
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger returns the request-scoped logger from the context.
// It panics when no logger was attached.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger, err := TryUseLogger(ctx)
	if err != nil {
		panic(err)
	}
	return logger
}

func TryUseLogger(ctx context.Context) (*logrus.Entry, error) {
	logger, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry)
	if !ok || logger == nil {
		return nil, ErrNoLogger
	}
	return logger, nil
}

// UseIP returns the IP address from the context.
// If the IP address is not found, the second return value will be false.
func UseIP(ctx context.Context) (string, bool) {
	params, ok := UseParams(ctx)
	if !ok {
		return "", false
	}
	return params.IP, true
}

// UseRequestStart returns the time the current request entered the server.
func UseRequestStart(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(constants.RequestStart).(time.Time)
	return start, ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, id)
}

// UseRequestID returns the request id assigned by the logging middleware.
func UseRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constants.RequestIDKey).(string)
	return id
}

// UseQuery decodes the request query string into v. Fields whose key is
// absent keep their current value.
func UseQuery[T comparable](v T, r *http.Request) (T, error) {
	return v, shared.Decoder.Decode(v, r.URL.Query())
}
