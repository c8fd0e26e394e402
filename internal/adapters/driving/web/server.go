package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
	"github.com/topgunprogrammer/DocChat-AI/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

// maxUploadMemory is the part of a multipart upload held in memory.
// Larger files spill to temporary files.
const maxUploadMemory = 32 << 20

// Services are the core services the HTTP API calls.
type Services struct {
	Chat      driving.ChatService
	Documents driving.DocumentService
	Uploads   driving.UploadService
}

// Server serves the HTTP API.
type Server struct {
	addr   string
	engine *gin.Engine
}

// NewServer creates a server that will listen on addr.
func NewServer(addr string, services Services) *Server {
	h := &handler{
		chat:      services.Chat,
		documents: services.Documents,
		uploads:   services.Uploads,
	}

	engine := gin.New()
	engine.MaxMultipartMemory = maxUploadMemory
	engine.Use(gin.Recovery(), requestLogger(), cors(), gzip.Gzip(gzip.DefaultCompression))
	registerRoutes(engine, h)

	return &Server{addr: addr, engine: engine}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("http server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func registerRoutes(r gin.IRouter, h *handler) {
	r.GET("/health", h.health)
	r.POST("/upload", h.upload)
	r.GET("/documents/:key", h.documentURL)
	r.GET("/documents/:key/text", h.documentText)
	r.GET("/files/:key", h.file)

	api := r.Group("/api")
	api.POST("/chat", h.completion)
	api.POST("/documents/:key/chat", h.documentChat)
	api.POST("/documents/:key/summarize", h.summarize)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
