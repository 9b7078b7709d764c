package voice

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DiscordTransport connects to Discord voice channels through an open
// gateway session.
type DiscordTransport struct {
	dg *discordgo.Session
}

func NewDiscordTransport(dg *discordgo.Session) *DiscordTransport {
	return &DiscordTransport{dg: dg}
}

func (t *DiscordTransport) Connect(guildID, channelID string) (Connection, error) {
	vc, err := t.dg.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}
	log.Info().Str("guild", guildID).Str("channel", channelID).Msg("joined voice channel")
	return &discordConnection{vc: vc}, nil
}

type discordConnection struct {
	vc   *discordgo.VoiceConnection
	once sync.Once
}

func (c *discordConnection) NewPlayer() Player {
	return newDiscordPlayer(c.vc)
}

func (c *discordConnection) Disconnect() error {
	var err error
	c.once.Do(func() {
		err = c.vc.Disconnect()
		log.Info().Str("guild", c.vc.GuildID).Msg("left voice channel")
	})
	return err
}
