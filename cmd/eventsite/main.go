package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventsite/internal/adapters/discord"
	"eventsite/internal/adapters/web"
	"eventsite/internal/application"
	"eventsite/internal/config"
	"eventsite/internal/infrastructure/database"
	"eventsite/internal/infrastructure/i18n"
	"eventsite/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, log); err != nil {
		log.Fatal().Err(err).Msg("❌ migrations failed")
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ database initialization failed")
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator(cfg.DefaultLocale, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ translations failed to load")
	}

	partners := database.NewPartnerRepository(pool)
	repos := application.Repositories{
		Events:        database.NewEventRepository(pool),
		EventTypes:    database.NewEventTypeRepository(pool),
		Menus:         database.NewMenuRepository(pool),
		Pages:         database.NewPageRepository(pool),
		Registrations: database.NewRegistrationRepository(pool),
		Addresses:     partners,
	}
	tx := database.NewTransactor(pool)

	opts := []application.Option{application.WithMapsAPIKey(cfg.GoogleMapsAPIKey)}
	if cfg.DiscordEnabled() {
		notifier, err := discord.NewNotifier(cfg.DiscordToken, cfg.DiscordChannelID, cfg.PublicBaseURL, translator, log)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ discord notifier failed")
		}
		opts = append(opts, application.WithNotifier(notifier))
	}

	events := application.NewEventService(repos, tx, translator, log, opts...)
	registrations := application.NewRegistrationService(repos.Registrations, repos.Events, tx, translator, log)
	server := web.NewServer(events, registrations, partners, translator, cfg.ViewerHeader, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("❌ shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("🚀 event site listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("❌ http server failed")
	}
	log.Info().Msg("👋 event site stopped")
}
