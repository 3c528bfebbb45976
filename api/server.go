package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pranav244872/certsearch/certs"
	"github.com/pranav244872/certsearch/config"
	"github.com/pranav244872/certsearch/logging"
)

// Server serves HTTP requests for the certification search dashboard.
type Server struct {
	config     config.Config
	searcher   certs.Searcher
	log        *logging.Logger
	router     *gin.Engine
	httpServer *http.Server
}

// NewServer wires the routes and middleware around a Searcher.
func NewServer(cfg config.Config, searcher certs.Searcher, log *logging.Logger) *Server {
	server := &Server{
		config:   cfg,
		searcher: searcher,
		log:      log,
	}
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(accessLogMiddleware(server.log))
	router.Use(cors.New(corsConfig(server.config.FrontendURL)))

	router.GET("/api/search", server.searchByQuery)
	router.POST("/api/search", server.searchByPlan)

	server.router = router
}

// corsConfig allows the dashboard origin, or any origin when none is configured.
func corsConfig(frontendURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if frontendURL == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{frontendURL}
	}
	return cfg
}

// Handler exposes the router, mainly for tests.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Start runs the HTTP server on a specific address. It returns nil after a
// graceful Shutdown.
func (server *Server) Start(address string) error {
	server.httpServer = &http.Server{
		Addr:              address,
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (server *Server) Shutdown(ctx context.Context) error {
	if server.httpServer == nil {
		return nil
	}
	return server.httpServer.Shutdown(ctx)
}
