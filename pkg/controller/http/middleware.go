package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/types"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/unrolled/secure"
)

// LoggingMiddleware returns a middleware that logs HTTP requests. The request
// logger, tagged with the request ID, is also stored in the request context.
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := middleware.GetReqID(r.Context())
			logger := logging.From(ctx).With("request_id", reqID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
					"remote_addr", r.RemoteAddr,
				)
			}()

			next.ServeHTTP(ww, r.WithContext(logging.With(r.Context(), logger)))
		})
	}
}

// contentSecurityPolicy is the default policy of the helmet middleware
const contentSecurityPolicy = "default-src 'self';base-uri 'self';font-src 'self' https: data:;" +
	"form-action 'self';frame-ancestors 'self';img-src 'self' data:;object-src 'none';" +
	"script-src 'self';script-src-attr 'none';style-src 'self' https: 'unsafe-inline';" +
	"upgrade-insecure-requests"

// SecurityHeaders returns a middleware that sets the usual hardening headers
// on every response
func SecurityHeaders() func(next http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:               true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		BrowserXssFilter:        true,
		CustomBrowserXssValue:   "0",
		ContentSecurityPolicy:   contentSecurityPolicy,
		ReferrerPolicy:          "no-referrer",
		STSSeconds:              31536000,
		STSIncludeSubdomains:    true,
		ForceSTSHeader:          true,
	})

	extra := chi.Chain(
		middleware.SetHeader("Cross-Origin-Opener-Policy", "same-origin"),
		middleware.SetHeader("Cross-Origin-Resource-Policy", "same-origin"),
		middleware.SetHeader("Origin-Agent-Cluster", "?1"),
		middleware.SetHeader("X-DNS-Prefetch-Control", "off"),
		middleware.SetHeader("X-Download-Options", "noopen"),
		middleware.SetHeader("X-Permitted-Cross-Domain-Policies", "none"),
	)

	return func(next http.Handler) http.Handler {
		return sec.Handler(extra.Handler(next))
	}
}

// failureWriter turns any failure during request handling into the generic
// error envelope. Details go to the log and Sentry, never to the client.
type failureWriter struct {
	now func() time.Time
}

// Write logs err, reports it and writes the 500 envelope
func (f *failureWriter) Write(w http.ResponseWriter, r *http.Request, err error) {
	logging.From(r.Context()).Error("Request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)

	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetRequest(r)
	hub.CaptureException(err)

	f.writeEnvelope(w, r)
}

// Recoverer recovers panics raised by later handlers
func (f *failureWriter) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				// net/http aborts the response with this panic
				panic(rvr)
			}

			logging.From(r.Context()).Error("Panic in HTTP handler",
				"recover", rvr,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(r)
			hub.RecoverWithContext(r.Context(), rvr)

			f.writeEnvelope(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}

func (f *failureWriter) writeEnvelope(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusInternalServerError, &model.ErrorResponse{
		Error:     model.GenericErrorMessage,
		Timestamp: types.Timestamp(f.now()),
	})
}

type jsonBodyKey struct{}

// JSONBodyFrom returns the JSON request body checked by JSONBody
func JSONBodyFrom(ctx context.Context) (json.RawMessage, bool) {
	body, ok := ctx.Value(jsonBodyKey{}).(json.RawMessage)
	return body, ok
}

// JSONBody returns a middleware that reads and checks JSON request bodies.
// Bodies over limit bytes or that are not valid JSON are request failures.
func JSONBody(limit int64, failure *failureWriter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !isJSONContent(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
			if err != nil {
				failure.Write(w, r, goerr.Wrap(err, "failed to read request body"))
				return
			}
			if int64(len(data)) > limit {
				failure.Write(w, r, goerr.New("request body too large", goerr.V("limit", limit)))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(data))

			if len(bytes.TrimSpace(data)) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			if !json.Valid(data) {
				failure.Write(w, r, goerr.New("invalid JSON request body", goerr.V("size", len(data))))
				return
			}

			ctx := context.WithValue(r.Context(), jsonBodyKey{}, json.RawMessage(data))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isJSONContent(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// writeJSON writes v as the JSON response body with the given status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
