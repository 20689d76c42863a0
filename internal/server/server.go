// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

// Package server exposes a Viewer over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/schemaview"
)

const (
	// DefaultAddr is the listen address used when Options.Addr is empty.
	DefaultAddr = "127.0.0.1:8080"
	// HeaderResultVersion carries the data document version.
	HeaderResultVersion = "X-Result-Version"

	// defaultShutdownTimeout bounds graceful shutdown after context cancel.
	defaultShutdownTimeout = 5 * time.Second
	// defaultMaxBodyBytes limits PUT /api/result payload size.
	defaultMaxBodyBytes = 8 << 20
	// defaultReadHeaderTimeout limits slow request headers.
	defaultReadHeaderTimeout = 10 * time.Second
)

// ErrBodyTooLarge is returned when a data document exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// Options configures the HTTP server.
type Options struct {
	// Addr is the TCP listen address.
	Addr string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// MaxBodyBytes limits accepted data document size.
	MaxBodyBytes int64
}

// Server serves one Viewer.
type Server struct {
	viewer *schemaview.Viewer
	log    logrus.FieldLogger
	engine *gin.Engine
	opt    Options
}

// New builds a server over viewer; nil log discards output.
func New(viewer *schemaview.Viewer, opt Options, log logrus.FieldLogger) *Server {
	opt = normalizeOptions(opt)
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	gin.SetMode(gin.ReleaseMode)

	srv := &Server{
		viewer: viewer,
		log:    log,
		opt:    opt,
	}

	srv.engine = srv.routes()
	return srv
}

// Handler returns the HTTP handler.
func (srv *Server) Handler() http.Handler {
	return srv.engine
}

// Run listens on Options.Addr until ctx is cancelled.
func (srv *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", srv.opt.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.opt.Addr, err)
	}

	return srv.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (srv *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           srv.engine,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	unsubscribe := srv.viewer.Results().Subscribe(func(next schemaview.AnalysisResult) {
		srv.log.WithField("empty", next.IsZero()).Info("data document replaced")
	})
	defer unsubscribe()

	errCh := make(chan error, 1)
	go func() {
		srv.log.WithField("addr", listener.Addr().String()).Info("serving viewer")
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.opt.ShutdownTimeout)
	defer cancel()

	srv.log.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// routes registers all endpoints on a fresh engine.
func (srv *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), srv.requestLogger())

	engine.GET("/", srv.handleIndex)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/schema", srv.handleSchema)
	api.GET("/page", srv.handlePage)
	api.GET("/result", srv.handleGetResult)
	api.PUT("/result", srv.handlePutResult)

	return engine
}

// requestLogger logs one line per request.
func (srv *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		srv.log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}

func (srv *Server) handleIndex(c *gin.Context) {
	var out bytes.Buffer
	if err := srv.viewer.RenderFormat(&out, schemaview.FormatHTML); err != nil {
		srv.fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", out.Bytes())
}

func (srv *Server) handleSchema(c *gin.Context) {
	c.JSON(http.StatusOK, srv.viewer.Schema())
}

func (srv *Server) handlePage(c *gin.Context) {
	var out bytes.Buffer
	if err := srv.viewer.RenderFormat(&out, schemaview.FormatJSON); err != nil {
		srv.fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", out.Bytes())
}

func (srv *Server) handleGetResult(c *gin.Context) {
	result, version := srv.viewer.Results().Snapshot()

	data, err := result.JSON("  ")
	if err != nil {
		srv.fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Header(HeaderResultVersion, strconv.FormatUint(version, 10))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (srv *Server) handlePutResult(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, srv.opt.MaxBodyBytes+1))
	if err != nil {
		srv.fail(c, http.StatusBadRequest, err)
		return
	}

	if int64(len(body)) > srv.opt.MaxBodyBytes {
		srv.fail(c, http.StatusRequestEntityTooLarge, ErrBodyTooLarge)
		return
	}

	result, err := schemaview.ParseAnalysisResult(body)
	if err != nil {
		srv.fail(c, http.StatusBadRequest, err)
		return
	}

	version := srv.viewer.Results().Replace(result)

	c.Header(HeaderResultVersion, strconv.FormatUint(version, 10))
	c.JSON(http.StatusOK, gin.H{"version": version})
}

// fail writes an error payload and logs server side failures.
func (srv *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		srv.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// normalizeOptions applies defaults.
func normalizeOptions(opt Options) Options {
	opt.Addr = strings.TrimSpace(opt.Addr)
	if opt.Addr == "" {
		opt.Addr = DefaultAddr
	}

	if opt.ShutdownTimeout <= 0 {
		opt.ShutdownTimeout = defaultShutdownTimeout
	}

	if opt.MaxBodyBytes <= 0 {
		opt.MaxBodyBytes = defaultMaxBodyBytes
	}

	return opt
}
