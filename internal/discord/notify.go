package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// channelFor resolves the destination channel for a notification kind: the
// guild's stored override first, then the configured default.
func (b *Bot) channelFor(guildID, kind string) string {
	if id, err := b.storage.GetSpecialChannel(guildID, kind); err == nil && id != "" {
		return id
	}

	n := b.cfg.Notify
	switch kind {
	case "welcome":
		return n.Welcome
	case "goodbye":
		return n.Goodbye
	case "deleted-msg":
		return n.DeletedMsg
	case "role-log":
		return n.RoleLog
	case "vc-join":
		return n.VoiceJoin
	case "vc-leave":
		return n.VoiceLeave
	case "vc-move":
		return n.VoiceMove
	case "bot-activity":
		return n.BotActivity
	default:
		return ""
	}
}

// notify sends a plain one-line notification. Kinds with no destination
// configured are silently skipped.
func (b *Bot) notify(guildID, kind, text string) {
	channelID := b.channelFor(guildID, kind)
	if channelID == "" {
		return
	}
	if _, err := b.dg.ChannelMessageSend(channelID, text); err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("channel", channelID).Msg("failed to send notification")
	}
}

// notifyEmbed sends a notification with an embed attached.
func (b *Bot) notifyEmbed(guildID, kind, content string, embed *discordgo.MessageEmbed) {
	channelID := b.channelFor(guildID, kind)
	if channelID == "" {
		return
	}
	_, err := b.dg.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("channel", channelID).Msg("failed to send notification embed")
	}
}
