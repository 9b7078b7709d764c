// Package forward implements the "!EU" command: re-posts a member's message
// under the bot's megaphone, allowing only YouTube links or plain text.
package forward

import (
	"context"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"euplay-bot/internal/command"
	"euplay-bot/pkg/cmd"
)

var youtubeLinkPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:youtube\.com|youtu\.be)/.+`)

type ForwardCommand struct{}

func (c *ForwardCommand) Name() string        { return "EU" }
func (c *ForwardCommand) Description() string { return "Forward a message as an announcement" }

func (c *ForwardCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return nil
	}

	s, e := mc.Session, mc.Event

	text := strings.TrimSpace(strings.Join(inv.Args, " "))
	if text == "" {
		return nil
	}

	if youtubeLinkPattern.MatchString(text) || !strings.Contains(text, "http") {
		_, err := s.ChannelMessageSendComplex(e.ChannelID, &discordgo.MessageSend{
			Content: "📢 " + e.Author.Username + ": " + text,
			AllowedMentions: &discordgo.MessageAllowedMentions{
				Parse: []discordgo.AllowedMentionType{
					discordgo.AllowedMentionTypeUsers,
					discordgo.AllowedMentionTypeRoles,
					discordgo.AllowedMentionTypeEveryone,
				},
			},
		})
		if err != nil {
			log.Warn().Err(err).Str("channel", e.ChannelID).Msg("failed to forward message")
		}
	} else {
		mc.Reply("❌ Only YouTube links or plain text allowed.")
	}

	// The original message is always removed, forwarded or not.
	if err := s.ChannelMessageDelete(e.ChannelID, e.ID); err != nil {
		log.Debug().Err(err).Msg("failed to delete forwarded message")
	}
	return nil
}
