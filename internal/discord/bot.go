// Package discord owns the gateway session: command dispatch for prefix
// commands and the event-to-notification handlers.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"euplay-bot/internal/config"
	"euplay-bot/internal/storage"
)

// Bot is the Discord bot.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	storage *storage.Storage
}

// NewBot creates the gateway session and registers all handlers. The session
// is not opened until Run.
func NewBot(cfg *config.Config, store *storage.Storage) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	b := &Bot{dg: dg, cfg: cfg, storage: store}
	b.configureIntents()

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onMessageDelete)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onGuildMemberRemove)
	dg.AddHandler(b.onGuildMemberUpdate)
	dg.AddHandler(b.onVoiceStateUpdate)

	return b, nil
}

// Session exposes the gateway session for wiring the voice transport.
func (b *Bot) Session() *discordgo.Session {
	return b.dg
}

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing Discord session")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildVoiceStates
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("username", r.User.Username).Int("guilds", len(r.Guilds)).Msg("bot is running")
}
