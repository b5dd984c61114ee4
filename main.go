package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sip-planner/config"
	httpLayer "sip-planner/http"
	"sip-planner/repository"
	"sip-planner/service"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("SIP_CONFIG"))
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.DevelopmentLogs {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sipRepo := repository.NewSIPRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.CacheEnabled {
		cache = repository.NewRedisCache(cfg.RedisAddr, time.Duration(cfg.CacheTTLSec)*time.Second)
		logger.Info("using redis projection cache", zap.String("addr", cfg.RedisAddr))
	} else {
		cache = repository.NewMockCache()
	}

	sipService := service.NewSIPService(sipRepo, cache, logger)
	sipHandler := httpLayer.NewSIPHandler(sipService)
	breakupHandler := httpLayer.NewBreakupHandler(sipService, logger)

	goalService := service.NewGoalService(logger)
	goalHandler := httpLayer.NewGoalHandler(goalService, logger)

	stepUpService := service.NewStepUpService(logger)
	stepUpHandler := httpLayer.NewStepUpHandler(stepUpService)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimitBurst,
		time.Duration(cfg.RateLimitWindow)*time.Second,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/sip/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(sipHandler.CalculateSIP),
		),
	)

	mux.Handle(
		"/sip/required",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(goalHandler.CalculateRequiredSIP),
		),
	)

	mux.Handle(
		"/sip/step-up",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(stepUpHandler.CalculateStepUpSIP),
		),
	)

	mux.Handle(
		"/sip/year-wise-breakup",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(breakupHandler.GetYearWiseBreakup),
		),
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("sip planner API listening", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
