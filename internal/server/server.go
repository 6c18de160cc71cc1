// Package server exposes the financial calculator as a remote tool API for
// agent frameworks that dispatch tool calls over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bizvet/bizvet/internal/health"
	"github.com/bizvet/bizvet/pkg/constants"
	"github.com/bizvet/bizvet/pkg/errtrack"
	"github.com/bizvet/bizvet/pkg/output"
	"github.com/bizvet/bizvet/pkg/tool"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	tracker     *errtrack.Tracker
	monitor     *health.Monitor
}

// NewHandler constructs the HTTP handler that serves the tool API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, tracker *errtrack.Tracker, monitor *health.Monitor) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if tracker == nil {
		tracker = errtrack.NewTracker(0)
	}
	if monitor == nil {
		monitor = health.NewMonitor(tracker, trimmedVersion, 0)
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		tracker:     tracker,
		monitor:     monitor,
	}

	mux := http.NewServeMux()

	// Tool invocation endpoint (operation dispatch)
	mux.HandleFunc("/api/tool", h.handleTool)

	// Tool schema endpoint for agent registration
	mux.HandleFunc("/api/tool/spec", h.handleSpec)

	// Health endpoint backed by the error tracker
	mux.HandleFunc("/api/health", h.handleHealth)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.recoverPanics(mux)
}

func (h *handler) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err))
		return
	}

	req, err := tool.DecodeRequest(body)
	if err != nil {
		h.tracker.Record(errtrack.NewValidation("", err.Error(), nil), map[string]any{
			"endpoint": "/api/tool",
		})
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := tool.Execute(h.logger, req.Operation, req.Params)
	if err != nil {
		h.respondToolError(w, req.Operation, err)
		return
	}

	if tool.IsErrorResult(result) {
		msg, _ := result["error"].(string)
		h.tracker.Record(errtrack.NewValidation("", msg, nil), map[string]any{
			"operation": req.Operation,
		})
	}

	h.logger.Info("tool request served",
		zap.String("op", "server.handleTool"),
		zap.String("operation", req.Operation),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, output.Sanitize(result))
}

// respondToolError ships parameter errors as tool-protocol data with HTTP 200;
// agents read them from the result body, not from the transport status.
func (h *handler) respondToolError(w http.ResponseWriter, operation string, err error) {
	h.tracker.Record(err, map[string]any{"operation": operation})

	payload := map[string]any{
		"error":     err.Error(),
		"operation": operation,
	}
	if typed, ok := errtrack.AsError(err); ok {
		if typed.Code != "" {
			payload["code"] = typed.Code
		}
		if len(typed.Details) > 0 {
			payload["details"] = typed.Details
		}
	}

	h.logger.Error("tool request rejected",
		zap.String("op", "server.handleTool"),
		zap.String("operation", operation),
		zap.Error(err),
	)

	h.writeJSON(w, http.StatusOK, payload)
}

func (h *handler) handleSpec(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	spec := tool.CalculatorSpec()
	if strings.EqualFold(r.URL.Query().Get("format"), "yaml") {
		yamlBytes, err := yaml.Marshal(spec)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError,
				fmt.Sprintf("failed to encode tool spec: %v", err), "server.handleSpec")
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(yamlBytes); err != nil && h.logger != nil {
			h.logger.Error("failed to write YAML response",
				zap.String("op", "server.handleSpec"),
				zap.Error(err),
			)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, spec)
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	report := h.monitor.Check()
	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	h.writeJSON(w, status, report)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errtrack.NewInternal(fmt.Sprintf("panic: %v", rec), nil)
				h.tracker.Record(err, map[string]any{"path": r.URL.Path})
				h.logger.Error("recovered from panic",
					zap.String("op", "server.recoverPanics"),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleTool")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("tool request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
