package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const errInvalidMessage = "Invalid message. Please send a non-empty string."

// Server binds the HTTP handlers to the engine and data store.
type Server struct {
	engine *Engine
	store  *DataStore
	log    *zap.SugaredLogger
}

func NewServer(engine *Engine, store *DataStore, log *zap.SugaredLogger) *Server {
	return &Server{engine: engine, store: store, log: log}
}

// RegisterRoutes wires all routes and the error handler onto an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.POST("/chat", s.handleChat)

	// Admin endpoints for manual cache reload
	e.POST("/admin/reload/:dataset", s.handleReloadDataset)
	e.POST("/admin/reload-all", s.handleReloadAll)
	e.GET("/admin/cache-info", s.handleCacheInfo)
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.String(http.StatusOK, "Chatbot API is running")
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

func (s *Server) handleChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{OK: false, Error: errInvalidMessage})
	}

	// Message must be present, a string, and non-empty after trimming.
	msg, ok := req.Message.(string)
	if !ok || strings.TrimSpace(msg) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{OK: false, Error: errInvalidMessage})
	}

	reply := s.engine.HandleMessage(strings.TrimSpace(msg))

	return c.JSON(http.StatusOK, ChatResponse{OK: true, Reply: reply})
}

func (s *Server) handleReloadDataset(c echo.Context) error {
	dataset := c.Param("dataset")

	if !s.store.ClearDataset(dataset) {
		return c.JSON(http.StatusNotFound, ErrorResponse{OK: false, Error: fmt.Sprintf("Unknown dataset: %s", dataset)})
	}

	return c.JSON(http.StatusOK, ReloadResponse{
		Message: fmt.Sprintf("Dataset '%s' cache cleared and will reload on next request", dataset),
		Dataset: dataset,
	})
}

func (s *Server) handleReloadAll(c echo.Context) error {
	s.store.ClearCache()

	return c.JSON(http.StatusOK, ReloadResponse{
		Message: "All dataset caches cleared and will reload on next request",
	})
}

func (s *Server) handleCacheInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"cached":    s.store.CacheInfo(),
		"timestamp": time.Now(),
	})
}

// handleError renders every uncaught error as the {ok,error} envelope.
// Causes of 5xx failures are logged server-side and never leaked to the
// client.
func (s *Server) handleError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := "Server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		}
	}

	if code >= http.StatusInternalServerError {
		s.log.Errorw("request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
	}

	if !c.Response().Committed {
		_ = c.JSON(code, ErrorResponse{OK: false, Error: msg})
	}
}
