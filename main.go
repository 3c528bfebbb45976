package main

import (
	"context"
	"net/http"
	"os"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/certsearch/api"
	"github.com/pranav244872/certsearch/cache"
	"github.com/pranav244872/certsearch/certs"
	"github.com/pranav244872/certsearch/config"
	"github.com/pranav244872/certsearch/llm"
	"github.com/pranav244872/certsearch/logging"
	"github.com/pranav244872/certsearch/shutdown"
)

func main() {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logging.New("info").Fatal("could not load configuration", "err", err)
	}

	// Step 2: Set up logging
	log := logging.New(cfg.LogLevel)
	defer log.Sync()
	gin.SetMode(cfg.GinMode)
	log.Info("configuration loaded", "address", cfg.ServerAddress, "model", cfg.GeminiModel, "backend", cfg.LLMBackend)

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is empty; model calls will be rejected upstream")
	}

	// Step 3: Initialize the model client
	llmClient := newLLMClient(cfg, log)

	// Step 4: Build the result cache and the search service
	resultCache := cache.New[[]certs.Certification](cfg.CacheCapacity, cfg.CacheTTL)
	searcher := certs.NewService(
		certs.NewGateway(llmClient, log),
		resultCache,
		certs.Options{PlanCacheReads: cfg.PDICacheEnabled},
		log,
	)
	log.Info("search service initialized", "cache_capacity", cfg.CacheCapacity, "cache_ttl", cfg.CacheTTL)

	// Step 5: Create the API server and start it
	server := api.NewServer(cfg, searcher, log)
	go func() {
		log.Info("starting server", "address", cfg.ServerAddress)
		if err := server.Start(cfg.ServerAddress); err != nil {
			log.Fatal("failed to start server", "err", err)
		}
	}()

	// Step 6: Block until a termination signal, then drain
	shutdown.Graceful([]os.Signal{os.Interrupt, syscall.SIGTERM}, server, cfg.ShutdownTimeout, log)

	hits, misses := resultCache.Stats()
	log.Info("cache stats", "entries", resultCache.Len(), "hits", hits, "misses", misses)
}

// newLLMClient picks the configured backend. The SDK cannot be constructed
// without a key, so an empty key falls back to the REST client, which sends
// the empty credential and lets the upstream reject it.
func newLLMClient(cfg config.Config, log *logging.Logger) llm.Client {
	httpClient := &http.Client{Timeout: cfg.LLMTimeout}

	if cfg.LLMBackend == config.BackendSDK && cfg.GeminiAPIKey != "" {
		client, err := llm.NewGenAIClient(context.Background(), cfg.GeminiAPIKey, "", cfg.GeminiModel, httpClient)
		if err == nil {
			log.Info("model client initialized", "backend", config.BackendSDK)
			return client
		}
		log.Warn("genai client unavailable, using REST client", "err", err)
	}

	log.Info("model client initialized", "backend", config.BackendHTTP, "url", cfg.GeminiAPIURL)
	return llm.NewGeminiHTTPClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel, httpClient)
}
