package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"voltbay-storefront/config"
	"voltbay-storefront/internal/delivery/http/middleware"
	v1 "voltbay-storefront/internal/delivery/http/v1"
	"voltbay-storefront/internal/infrastructure/cache"
	"voltbay-storefront/internal/repository/upstream"
	"voltbay-storefront/internal/session"
	"voltbay-storefront/internal/usecase"
	"voltbay-storefront/pkg/logger"
	"voltbay-storefront/pkg/utils"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Upstream commerce API client
	apiClient := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	// Separate cache instances: the catalog flushes its cache wholesale on
	// snapshot replacement, which must not evict cached auth sessions.
	catalogCache := cache.NewMemoryCache(cfg.CacheProductTTL, time.Hour)
	authCache := cache.NewMemoryCache(cfg.SessionTTL, time.Hour)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Catalog Module: fallback snapshot, then try the upstream once at boot
	catalogUC := usecase.NewCatalogUsecase(apiClient, catalogCache, cfg)
	refreshCtx, cancelRefresh := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	catalogUC.Refresh(refreshCtx)
	cancelRefresh()

	browseUC := usecase.NewBrowseUsecase(catalogUC)
	catalogHandler := v1.NewCatalogHandler(catalogUC, browseUC, cfg)

	// Auth Module
	authUC := usecase.NewAuthUsecase(apiClient, authCache, cfg.SessionTTL)
	authHandler := v1.NewAuthHandler(authUC)

	// Session registry: one cart + wishlist per browser session
	sessionManager := session.NewManager(
		context.Background(),
		cfg.SessionTTL,
		cfg.SessionCleanupPeriod,
		func() *usecase.CartService { return usecase.NewCartService(apiClient, cfg.MaxCartQuantity) },
		authUC,
	)

	cartHandler := v1.NewCartHandler(catalogUC)
	wishlistHandler := v1.NewWishlistHandler()
	adminHandler := v1.NewAdminHandler(apiClient, authUC)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/product/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProductBySlug)

	// Cart (Session-scoped)
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/items/{lineId}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/items/{lineId}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)

	// Wishlist (Session-scoped)
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist/toggle", wishlistHandler.Toggle)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/v1/auth/me", authHandler.Me)

	// Admin (Protected by upstream token role)
	mux.HandleFunc("GET /api/v1/admin/analytics", adminHandler.GetAnalytics)

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitPerSecond),
		cfg.RateLimitBurst,
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply Session, CORS, Request Logger, Rate Limit, and Gzip
	handler := middleware.SessionMiddleware(sessionManager)(mux)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Periodic catalog refresh from the upstream
	refreshLoopCtx, stopRefreshLoop := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(cfg.CatalogRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(refreshLoopCtx, cfg.UpstreamTimeout)
				catalogUC.Refresh(ctx)
				cancel()
			case <-refreshLoopCtx.Done():
				return
			}
		}
	}()

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	stopRefreshLoop()
	rateLimiter.Shutdown()
	sessionManager.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
