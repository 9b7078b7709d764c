package discord

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

var (
	linkPattern      = regexp.MustCompile(`(?i)(http://|https://|discord\.gg/)`)
	youtubeOKPattern = regexp.MustCompile(`(?i)youtube\.com|youtu\.be`)
)

// containsBlockedLink reports whether content carries a link that is not a
// YouTube link. Only YouTube links survive moderation.
func containsBlockedLink(content string) bool {
	return linkPattern.MatchString(content) && !youtubeOKPattern.MatchString(content)
}

// moderateLinks deletes messages with non-YouTube links and reports them to
// the bot-activity channel. Forward-command messages are exempt; the forward
// command does its own validation.
func (b *Bot) moderateLinks(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if m.GuildID == "" || !containsBlockedLink(content) {
		return
	}
	if strings.HasPrefix(content, b.cfg.CommandPrefix+"EU") {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		log.Debug().Err(err).Str("channel", m.ChannelID).Msg("failed to delete moderated message")
	}
	b.notify(m.GuildID, "bot-activity",
		fmt.Sprintf("🚫 Blocked suspicious link from %s: `%s`", m.Author.Username, content))
}
