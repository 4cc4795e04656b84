// Package httpserver exposes the product catalog over HTTP so the vitrine
// client can use a network fetch source interchangeably with the static one.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

// ItemSource is the narrow catalog contract required by the HTTP API.
type ItemSource interface {
	Items() []catalog.Item
}

// Server provides the catalog HTTP API.
type Server struct {
	addr      string
	source    ItemSource
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new catalog API server.
func NewServer(addr string, source ItemSource) *Server {
	if addr == "" {
		addr = catalog.DefaultServerAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.registerRoutes(r)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Addr returns the bound listen address, useful when addr was ":0".
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/api/health", s.handleHealth)
	r.GET("/api/items", s.handleItems)
	r.GET("/api/categories", s.handleCategories)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"uptime":     time.Since(s.startTime).String(),
		"item_count": len(s.source.Items()),
	})
}

// handleItems returns the catalog, optionally restricted to one category.
func (s *Server) handleItems(c *gin.Context) {
	items := s.source.Items()

	if cat := c.Query("category"); cat != "" {
		filtered := make([]catalog.Item, 0, len(items))
		for _, it := range items {
			if it.Category == cat {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleCategories(c *gin.Context) {
	seen := make(map[string]bool)
	var cats []string
	for _, it := range s.source.Items() {
		if !seen[it.Category] {
			seen[it.Category] = true
			cats = append(cats, it.Category)
		}
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}
