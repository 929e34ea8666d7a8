package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	clawbr "github.com/alanwatts07/terrancedejour-site/repos/clawbr"
	completion "github.com/alanwatts07/terrancedejour-site/repos/completion"

	config "github.com/alanwatts07/terrancedejour-site/pkg/config"
	logger "github.com/alanwatts07/terrancedejour-site/pkg/logger"
	requestid "github.com/alanwatts07/terrancedejour-site/pkg/requestid"

	coach "github.com/alanwatts07/terrancedejour-site/services/coach"
	commentary "github.com/alanwatts07/terrancedejour-site/services/commentary"
	dashboard "github.com/alanwatts07/terrancedejour-site/services/dashboard"
	health "github.com/alanwatts07/terrancedejour-site/services/health"
	preview "github.com/alanwatts07/terrancedejour-site/services/preview"
	tournaments "github.com/alanwatts07/terrancedejour-site/services/tournaments"

	"github.com/alanwatts07/terrancedejour-site/web"
)

func main() {
	// .env is optional, the platform injects real environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("APP_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	clawbrService := clawbr.NewService(clawbr.Options{
		BaseURL:       cfg.Upstream.BaseURL,
		Timeout:       cfg.Upstream.Timeout,
		RatePerSecond: cfg.Upstream.RatePerSecond,
		Burst:         cfg.Upstream.Burst,
		CacheSize:     cfg.Upstream.CacheSize,
		MaxParallel:   cfg.Upstream.MaxParallel,
		Logger:        appLogger,
	})

	var completer commentary.Completer
	if cfg.LLM.Enabled {
		completer = completion.NewService(completion.Options{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
		})
	} else {
		appLogger.Info().Msg("LLM disabled, commentary uses the fallback lines")
	}
	composer := commentary.NewComposer(completer, cfg.LLM.Timeout, appLogger)

	reviews, err := tournaments.LoadReviews()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to load match reviews")
	}
	skillPack, err := coach.LoadSkillPack()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to load skill pack")
	}
	renderer, err := preview.NewRenderer()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to load preview font")
	}
	templates, err := web.Templates()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to parse templates")
	}

	site := web.NewSite(cfg.Site.BaseURL)

	dashboardService := dashboard.NewDashboardService(clawbrService, composer, cfg.Site.ActivityLimit, appLogger)
	tournamentsService := tournaments.NewTournamentsService(clawbrService, reviews, appLogger)
	previewService := preview.NewPreviewService(clawbrService, renderer, site.Host(), appLogger)

	corsConfig := cors.DefaultConfig()
	if hosts := splitHosts(cfg.Server.CORSHosts); len(hosts) > 0 {
		corsConfig.AllowOrigins = hosts
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestid.Header}

	router := gin.New()
	router.Use(gin.Recovery(), requestid.Middleware(), logger.Middleware(appLogger))
	router.SetHTMLTemplate(templates)

	apiRouter := router.Group("/api")
	apiRouter.Use(cors.New(corsConfig))

	v1Router := apiRouter.Group("/v1")

	dashboard.NewHTTPHandler(dashboard.HTTPOptions{
		Service:   dashboardService,
		Router:    router,
		APIRouter: v1Router,
		Site:      site,
	})

	tournaments.NewHTTPHandler(tournaments.HTTPOptions{
		Service:   tournamentsService,
		Router:    router,
		APIRouter: v1Router,
		Site:      site,
	})

	commentary.NewHTTPHandler(commentary.HTTPOptions{
		Composer: composer,
		Source:   dashboardService,
		Router:   v1Router,
	})

	coach.NewHTTPHandler(coach.HTTPOptions{
		Pack:      skillPack,
		Router:    router,
		APIRouter: apiRouter,
		Site:      site,
	})

	preview.NewHTTPHandler(preview.HTTPOptions{
		Service: previewService,
		Router:  router,
	})

	health.NewHTTPHandler(health.HTTPOptions{
		Upstream: clawbrService,
		Router:   router,
		Timeout:  cfg.Upstream.Timeout,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info().Str("port", cfg.Server.Port).Msg("Server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func splitHosts(raw string) []string {
	var hosts []string
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
