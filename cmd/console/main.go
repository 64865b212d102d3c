package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/academyhq/academy-console/backend"
	"github.com/academyhq/academy-console/config"
	"github.com/academyhq/academy-console/handlers"
	"github.com/academyhq/academy-console/mirror"
	"github.com/academyhq/academy-console/notify"
	api "github.com/academyhq/academy-console/routes"
	"github.com/academyhq/academy-console/services"
	"github.com/academyhq/academy-console/session"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("upstream", cfg.UpstreamURL))

	clock := clockwork.NewRealClock()

	// Сессия и лента уведомлений
	store := session.NewStore(cfg.SessionFile, clock, logger)
	feed := notify.NewFeed(clock, logger)

	// Клиент к academy backend; любой upstream 401 гасит сессию.
	apiClient := backend.NewClient(cfg.UpstreamURL, store, store.Teardown, logger)
	apiClient.SetTimeout(cfg.RequestTimeout)
	logger.Info("backend client initialized")

	// Инициализация зеркал коллекций
	players := mirror.NewPlayers(apiClient, feed, logger)
	registrations := mirror.NewRegistrations(apiClient, feed, logger)
	subscriptions := mirror.NewSubscriptions(apiClient, feed, logger)
	uniforms := mirror.NewUniforms(apiClient, feed, logger)
	coaches := mirror.NewCoaches(apiClient, feed, logger)
	logger.Info("collection mirrors initialized")

	// Инициализация сервисов
	authService := services.NewAuthService(apiClient, store)
	playerService := services.NewPlayerService(players, registrations)
	registrationService := services.NewRegistrationService(registrations, players, clock)
	subscriptionService := services.NewSubscriptionService(subscriptions, clock)
	uniformService := services.NewUniformService(uniforms)
	coachService := services.NewCoachService(coaches)
	dashboardService := services.NewDashboardService(apiClient)
	logger.Info("services initialized")

	// Периодическое обновление зеркал вместо refetch-on-mount из SPA.
	refreshAll := func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return players.Refresh(gctx) })
		g.Go(func() error { return registrations.Refresh(gctx) })
		g.Go(func() error { return subscriptions.Refresh(gctx) })
		g.Go(func() error { return uniforms.Refresh(gctx) })
		g.Go(func() error { return coaches.Refresh(gctx) })
		return g.Wait()
	}

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go func() {
		ticker := clock.NewTicker(cfg.RefreshInterval)
		defer ticker.Stop()
		logger.Info("mirror refresh scheduler started", slog.Duration("interval", cfg.RefreshInterval))

		for {
			select {
			case <-schedulerCtx.Done():
				return
			case <-ticker.Chan():
				if !store.Authenticated() {
					// Без сессии зеркалам нечего обновлять.
					continue
				}
				if err := refreshAll(schedulerCtx); err != nil {
					logger.Error("scheduled mirror refresh failed", slog.Any("error", err))
				}
			}
		}
	}()

	// Инициализация обработчиков HTTP
	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	uniformHandler := handlers.NewUniformHandler(uniformService)
	coachHandler := handlers.NewCoachHandler(coachService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	notificationHandler := handlers.NewNotificationHandler(feed)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		store,
		authHandler,
		playerHandler,
		registrationHandler,
		subscriptionHandler,
		uniformHandler,
		coachHandler,
		dashboardHandler,
		notificationHandler,
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		stopScheduler()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
