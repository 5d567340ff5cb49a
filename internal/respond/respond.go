// Package respond is the single place where a (status, message) pair becomes
// an HTTP response. Service-layer errors, framework validation errors, router
// fallbacks, and panics all funnel through the same {"message": "..."} body.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/servease/servease/internal/apierr"
	appmiddleware "github.com/servease/servease/internal/middleware"
)

const (
	msgNotFound          = "resource not found"
	msgMethodNotAllowed  = "method not allowed"
	msgInternalServerErr = "Internal Server Error"
)

var installOnce sync.Once

// ErrorBody is the wire shape of every non-2xx response.
type ErrorBody struct {
	Message string `json:"message" doc:"Human-readable error description" example:"No service found with serviceId: 7"`
}

// Install makes Huma render all error responses with the shared message body,
// so schema-validation failures and handler errors look alike on the wire.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return statusError(context.Background(), status, messageOrDefault(status, msg), errs...)
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return statusError(goCtx, status, messageOrDefault(status, msg), errs...)
		}
	})
}

// Error builds a status error carrying an explicit status and message.
func Error(ctx context.Context, status int, msg string) huma.StatusError {
	return statusError(ctx, status, messageOrDefault(status, msg))
}

// ServiceError converts a service-layer failure into the transport error.
// Typed apierr values keep their status and message; anything else is
// reported as the generic 500.
func ServiceError(ctx context.Context, err error) huma.StatusError {
	if apiErr := apierr.From(err); apiErr != nil {
		return statusError(ctx, apiErr.Status, apiErr.Message)
	}
	return statusError(ctx, http.StatusInternalServerError, msgInternalServerErr, err)
}

// Write serializes a message body directly to the ResponseWriter. Used by the
// chi-level fallback handlers that never reach Huma.
func Write(w http.ResponseWriter, status int, body ErrorBody) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(body)
}

// NotFoundHandler emits the shared 404 response for unrouted paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logStatus(r.Context(), http.StatusNotFound, msgNotFound, nil)
		if err := Write(w, http.StatusNotFound, ErrorBody{Message: msgNotFound}); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits the shared 405 response.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		logStatus(r.Context(), http.StatusMethodNotAllowed, msgMethodNotAllowed, nil)
		if err := Write(w, http.StatusMethodNotAllowed, ErrorBody{Message: msgMethodNotAllowed}); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into the generic 500 response.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					err = fmt.Errorf("%w\n%s", err, debug.Stack())
					logStatus(r.Context(), http.StatusInternalServerError, msgInternalServerErr, err)
					if writeErr := Write(w, http.StatusInternalServerError, ErrorBody{Message: msgInternalServerErr}); writeErr != nil {
						appmiddleware.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

type statusMessageError struct {
	ErrorBody
	status int
}

func (e *statusMessageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.status)
}

func (e *statusMessageError) GetStatus() int {
	return e.status
}

func statusError(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	logStatus(ctx, status, msg, joinErrors(errs))
	return &statusMessageError{ErrorBody: ErrorBody{Message: msg}, status: status}
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func logStatus(ctx context.Context, status int, msg string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("message", msg),
	}
	switch {
	case status >= 500:
		appmiddleware.LogError(ctx, "request failed", err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		appmiddleware.LogWarn(ctx, "request rejected", fields...)
	}
}
