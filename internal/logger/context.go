package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ContextKey est le type des clés de context
type ContextKey string

const (
	// RequestIDKey est la clé du request ID dans le context
	RequestIDKey ContextKey = "requestID"
	// UserIDKey est la clé du user ID dans le context
	UserIDKey ContextKey = "userID"
	// OrganismeCodeKey est la clé du code organisme dans le context
	OrganismeCodeKey ContextKey = "organismeCode"
)

// WithContext retourne une entrée de logger enrichie depuis un context
func WithContext(ctx context.Context) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(ctx)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		entry = entry.WithField("request_id", requestID)
	}
	if userID := ctx.Value(UserIDKey); userID != nil {
		entry = entry.WithField("user_id", userID)
	}
	if code := ctx.Value(OrganismeCodeKey); code != nil {
		entry = entry.WithField("organisme_code", code)
	}

	return entry
}

// WithRequest retourne une entrée de logger enrichie depuis un contexte Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(context.Background())

	// Le middleware requestid pose l'ID dans les Locals, sinon dans le header
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	entry = entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	return entry
}
