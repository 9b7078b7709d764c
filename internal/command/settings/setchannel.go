// Package settings holds admin commands for per-guild configuration.
package settings

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"euplay-bot/internal/command"
	"euplay-bot/internal/storage"
	"euplay-bot/pkg/cmd"
)

// SetChannelCommand wires a notification kind to a destination channel:
// "!setchannel welcome #landing".
type SetChannelCommand struct{}

func (c *SetChannelCommand) Name() string        { return "setchannel" }
func (c *SetChannelCommand) Description() string { return "Set a notification channel for this server" }

func (c *SetChannelCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return nil
	}

	if !isAdministrator(mc.Session, mc.Event) {
		mc.Reply("You need the Administrator permission for that.")
		return nil
	}

	if len(inv.Args) != 2 {
		mc.Reply("Usage: setchannel <" + strings.Join(storage.ChannelKinds, "|") + "> <#channel>")
		return nil
	}

	kind := inv.Args[0]
	channelID := parseChannelRef(inv.Args[1])
	if channelID == "" {
		mc.Reply("That doesn't look like a channel.")
		return nil
	}

	if err := mc.Storage.SetSpecialChannel(mc.Event.GuildID, kind, channelID); err != nil {
		mc.Reply("Unknown channel kind. Valid kinds: " + strings.Join(storage.ChannelKinds, ", "))
		return nil
	}

	mc.Reply("Channel for `" + kind + "` set to <#" + channelID + ">.")
	return nil
}

// parseChannelRef accepts a channel mention (<#123>) or a raw channel ID.
func parseChannelRef(ref string) string {
	if strings.HasPrefix(ref, "<#") && strings.HasSuffix(ref, ">") {
		ref = strings.TrimSuffix(strings.TrimPrefix(ref, "<#"), ">")
	}
	for _, r := range ref {
		if r < '0' || r > '9' {
			return ""
		}
	}
	if ref == "" {
		return ""
	}
	return ref
}

func isAdministrator(s *discordgo.Session, e *discordgo.MessageCreate) bool {
	perms, err := s.State.MessagePermissions(e.Message)
	if err != nil {
		perms, err = s.UserChannelPermissions(e.Author.ID, e.ChannelID)
		if err != nil {
			return false
		}
	}
	return perms&discordgo.PermissionAdministrator != 0
}
