package middleware

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"euplay-bot/internal/command"
	"euplay-bot/pkg/cmd"
)

// WithCommandLogger records each command execution in the guild's history.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			if mc, ok := inv.Data.(*command.MessageContext); ok && mc.Storage != nil {
				e := mc.Event
				if logErr := logCommand(mc, c.Name()); logErr != nil {
					log.Warn().Err(logErr).
						Str("command", c.Name()).
						Str("guild", e.GuildID).
						Msg("failed to log command")
				}
			}
			return err
		})
	}
}

// logCommand resolves channel and guild names from state and stores the record.
func logCommand(mc *command.MessageContext, commandName string) error {
	s, e := mc.Session, mc.Event

	channelName := ""
	if channel := resolveChannel(s, e.ChannelID); channel != nil {
		channelName = channel.Name
	}

	guildName := ""
	if guild, err := s.State.Guild(e.GuildID); err == nil {
		guildName = guild.Name
	}

	return mc.Storage.SetCommand(
		e.GuildID, e.ChannelID, channelName, guildName,
		e.Author.ID, e.Author.Username, commandName,
	)
}

func resolveChannel(s *discordgo.Session, channelID string) *discordgo.Channel {
	if channel, err := s.State.Channel(channelID); err == nil {
		return channel
	}
	channel, err := s.Channel(channelID)
	if err != nil {
		return nil
	}
	return channel
}
