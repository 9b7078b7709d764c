package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"euplay-bot/internal/command"
	"euplay-bot/pkg/cmd"
)

// onMessageCreate routes prefix commands and, for everything else, applies
// link moderation.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if strings.HasPrefix(content, b.cfg.CommandPrefix) {
		if b.dispatchCommand(s, m, content) {
			return
		}
	}

	b.moderateLinks(s, m, content)
}

// dispatchCommand parses "<prefix><name> <args...>" and runs the matching
// registered command. Reports whether a command handled the message.
func (b *Bot) dispatchCommand(s *discordgo.Session, m *discordgo.MessageCreate, content string) bool {
	fields := strings.Fields(strings.TrimPrefix(content, b.cfg.CommandPrefix))
	if len(fields) == 0 {
		return false
	}

	c := cmd.DefaultRegistry.Get(fields[0])
	if c == nil {
		return false
	}

	mc := &command.MessageContext{Session: s, Event: m, Storage: b.storage}
	inv := &cmd.Invocation{Args: fields[1:], Data: mc}

	if err := c.Run(context.Background(), inv); err != nil {
		log.Error().Err(err).Str("command", c.Name()).Str("guild", m.GuildID).Msg("command failed")
		mc.Reply("Something went wrong running that command.")
	}
	return true
}
