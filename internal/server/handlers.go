package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/slidegrid/pkg/buildinfo"
	"github.com/matzehuels/slidegrid/pkg/errors"
	"github.com/matzehuels/slidegrid/pkg/observability"
	"github.com/matzehuels/slidegrid/pkg/pipeline"
)

// Response headers set on successful renders.
const (
	HeaderRunID = "X-Slidegrid-Run"
	HeaderCache = "X-Slidegrid-Cache"
)

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(buildinfo.Get())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	opts.Document = body

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	format := opts.Formats[0]
	cacheState := "miss"
	if result.CacheHit {
		cacheState = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(HeaderRunID, result.RunID)
	w.Header().Set(HeaderCache, cacheState)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions reads pipeline options from the query string.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats: []string{pipeline.FormatSVG},
		Style:   q.Get("style"),
		Logger:  s.logger,
	}

	if f := strings.ToLower(strings.TrimSpace(q.Get("format"))); f != "" {
		if err := pipeline.ValidateFormat(f); err != nil {
			return opts, err
		}
		opts.Formats = []string{f}
	}

	opts.Syntax = q.Get("syntax")
	if opts.Syntax == "" {
		opts.Syntax = syntaxFromContentType(r.Header.Get("Content-Type"))
	}

	var err error
	if opts.Debug, err = boolParam(q.Get("debug"), "debug"); err != nil {
		return opts, err
	}
	if opts.Inches, err = boolParam(q.Get("inches"), "inches"); err != nil {
		return opts, err
	}
	if opts.Refresh, err = boolParam(q.Get("refresh"), "refresh"); err != nil {
		return opts, err
	}
	if v := q.Get("scale"); v != "" {
		opts.Scale, err = strconv.ParseFloat(v, 64)
		if err != nil || opts.Scale <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v)
		}
	}
	return opts, nil
}

func boolParam(v, name string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
	}
	return b, nil
}

// syntaxFromContentType maps a request media type to a document syntax.
func syntaxFromContentType(ct string) string {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "toml"
	}
	switch mediaType {
	case "application/json":
		return "json"
	case "application/yaml", "application/x-yaml", "text/yaml":
		return "yaml"
	}
	return "toml"
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeInvalidInput, code == errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case code == errors.ErrCodeInvalidDocument, code == errors.ErrCodeInvalidColor, errors.IsLayout(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "request", middleware.GetReqID(r.Context()), "err", err)
	} else {
		s.logger.Debug("rejected request", "request", middleware.GetReqID(r.Context()), "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode error response", "err", err)
	}
}

// logRequests logs each request and reports it to the server hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug(fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed.Round(time.Microsecond),
			"request", middleware.GetReqID(r.Context()))
	})
}
