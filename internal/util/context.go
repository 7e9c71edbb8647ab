package util

import (
	"context"

	"github.com/pkg/errors"
)

type contextKey string

const (
	CTXKeyRequestID     contextKey = "request_id"
	CTXKeyDisableLogger contextKey = "disable_logger"
)

// RequestIDFromContext returns the id assigned by the request id middleware.
func RequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(CTXKeyRequestID)
	if val == nil {
		return "", errors.New("no request ID present in context")
	}

	id, ok := val.(string)
	if !ok {
		return "", errors.New("request ID in context is not a string")
	}

	return id, nil
}
