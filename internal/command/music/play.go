// Package music implements the playback prefix commands: play, pause,
// resume, stop. Each maps coordinator errors to a single user-facing line.
package music

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"euplay-bot/internal/command"
	"euplay-bot/internal/music/session"
	"euplay-bot/pkg/cmd"
)

// resolveTimeout bounds the resolve + connect phase of a play request.
const resolveTimeout = 30 * time.Second

type PlayCommand struct {
	Coordinator *session.Coordinator
}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play a track in your voice channel" }
func (c *PlayCommand) Aliases() []string   { return []string{"p"} }

func (c *PlayCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return nil
	}

	query := strings.TrimSpace(strings.Join(inv.Args, " "))
	if query == "" {
		mc.Reply("Please provide a song name or link.")
		return nil
	}

	guildID := mc.Event.GuildID
	channelID := findUserVoiceChannel(mc.Session, guildID, mc.Event.Author.ID)

	playCtx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	track, err := c.Coordinator.Play(playCtx, guildID, channelID, query)
	if err != nil {
		log.Debug().Err(err).Str("guild", guildID).Str("query", query).Msg("play request failed")
		mc.Reply(replyForPlayError(err))
		return nil
	}

	if mc.Storage != nil {
		if err := mc.Storage.AddTrack(guildID, track.Title, track.URL, mc.Event.Author.ID); err != nil {
			log.Warn().Err(err).Str("guild", guildID).Msg("failed to record track history")
		}
	}

	mc.Reply("Now Playing: " + track.Title)
	return nil
}

// findUserVoiceChannel returns the voice channel the user currently occupies,
// or "" if they are not in one.
func findUserVoiceChannel(s *discordgo.Session, guildID, userID string) string {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		return ""
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID
		}
	}
	return ""
}
