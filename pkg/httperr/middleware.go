package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/domainkit/pkg/guard"
	"github.com/dmitrymomot/domainkit/pkg/logger"
	"github.com/dmitrymomot/domainkit/pkg/validate"
)

// Problem is the RFC 7807 problem-details body written for every mapped
// error. Errors carries field-level messages for validation failures.
type Problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// HandlerFunc is an http.HandlerFunc that reports failures by returning
// an error instead of writing the response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn into an http.Handler, mapping any returned error to a
// problem-details response. A nil log falls back to slog.Default.
func Handler(log *slog.Logger, fn HandlerFunc) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeProblem(log, w, r, err)
		}
	})
}

// Recoverer is middleware converting panicked errors into problem-details
// responses. Non-error panic values are wrapped; panics never escape to the
// server's connection handler.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					// net/http uses this sentinel to abort the connection;
					// it must keep propagating to the server.
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", rec)
					}
					writeProblem(log, w, r, err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// classify maps an error from the library's taxonomy to a problem body.
// Precedence: explicit HTTP intent, then validation aggregates, then guard
// argument failures; anything unrecognized is an opaque 500.
func classify(err error) Problem {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return Problem{
			Type:   "about:blank",
			Title:  httpErr.Code,
			Status: httpErr.Status,
			Detail: httpErr.Message,
		}
	}

	if verrs := validate.Extract(err); verrs != nil {
		fields := make(map[string][]string, len(verrs.Fields()))
		for _, field := range verrs.Fields() {
			fields[field] = verrs.Get(field)
		}
		return Problem{
			Type:   "about:blank",
			Title:  "unprocessable_entity",
			Status: http.StatusUnprocessableEntity,
			Detail: "validation failed",
			Errors: fields,
		}
	}

	if errors.Is(err, guard.ErrArgument) {
		return Problem{
			Type:   "about:blank",
			Title:  "bad_request",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
		}
	}

	// Internal details never leak to the client.
	return Problem{
		Type:   "about:blank",
		Title:  "internal_server_error",
		Status: http.StatusInternalServerError,
	}
}

func writeProblem(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	problem := classify(err)

	level := slog.LevelWarn
	if problem.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.LogAttrs(r.Context(), level, "request failed",
		logger.Error(err),
		slog.Int("status", problem.Status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("httperr"),
	)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	if encErr := json.NewEncoder(w).Encode(problem); encErr != nil {
		log.LogAttrs(r.Context(), slog.LevelError, "failed to encode problem response",
			logger.Error(encErr),
			logger.Component("httperr"),
		)
	}
}
