package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wateen/client/internal/api"
	"wateen/client/internal/config"
	"wateen/client/internal/jobs"
	"wateen/client/internal/keystore"
	"wateen/client/internal/locale"
	"wateen/client/internal/log"
	"wateen/client/internal/push"
	"wateen/client/internal/screens"
	"wateen/client/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	keys, err := keystore.Open(cfg.Storage.Path)
	if err != nil {
		// No durable storage means no prior session, not a dead app.
		logger.Warn().Err(err).Msg("durable storage unavailable")
	}

	sessionStore := session.NewStore(keys, logger)
	localeStore := locale.NewStore(cfg.Locale.Default)
	backend := api.NewClient(cfg.Backend, sessionStore, logger)

	poller := jobs.NewRefillPoller(backend, sessionStore.IsAuthenticated, cfg.Refill.PollSchedule, logger)
	if err := poller.Start(); err != nil {
		logger.Error().Err(err).Msg("refill poller start failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	term := screens.NewTerminal(os.Stdin, os.Stdout)
	subscriber := push.NewSubscriber(cfg.Push, keys, backend, term.PromptBool, logger)
	controllers := screens.NewControllers(term, backend, sessionStore, localeStore, poller, subscriber, logger)

	controllers.Run(ctx)

	poller.Stop()
	if keys != nil {
		if err := keys.Close(); err != nil {
			logger.Error().Err(err).Msg("keystore close error")
		}
	}
	logger.Info().Msg("client exited cleanly")
}
