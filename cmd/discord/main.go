package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"euplay-bot/internal/command/forward"
	"euplay-bot/internal/command/music"
	"euplay-bot/internal/command/settings"
	"euplay-bot/internal/config"
	"euplay-bot/internal/discord"
	"euplay-bot/internal/logging"
	"euplay-bot/internal/middleware"
	"euplay-bot/internal/music/resolver"
	"euplay-bot/internal/music/session"
	"euplay-bot/internal/music/voice"
	"euplay-bot/internal/storage"
	v "euplay-bot/internal/version"
	"euplay-bot/internal/web"
	"euplay-bot/pkg/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("app", v.AppName).Msg("starting bot")

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	bot, err := discord.NewBot(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	registry := session.NewRegistry()
	coordinator := session.NewCoordinator(
		registry,
		resolver.NewYouTube(),
		voice.NewDiscordTransport(bot.Session()),
	)
	registerCommands(coordinator)

	go web.RunServer(ctx, cfg.StatusAddr, registry)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("received signal, shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot error")
		}
		cancel()
	}

	log.Info().Msg("bot exited cleanly")
}

func registerCommands(coordinator *session.Coordinator) {
	commands := []cmd.Command{
		&music.PlayCommand{Coordinator: coordinator},
		&music.PauseCommand{Coordinator: coordinator},
		&music.ResumeCommand{Coordinator: coordinator},
		&music.StopCommand{Coordinator: coordinator},
		&forward.ForwardCommand{},
		&settings.SetChannelCommand{},
	}
	for _, c := range commands {
		// Guild gate outermost: DM invocations are dropped before any
		// history is written.
		cmd.DefaultRegistry.Register(cmd.Apply(c,
			middleware.WithCommandLogger(),
			middleware.WithGuildOnly(),
		))
	}
}
