package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	guildName := m.GuildID
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		guildName = guild.Name
	}

	welcome := embed.NewEmbed().
		SetColor(0x00FF00).
		SetTitle("🎫 Gang Boarding Pass").
		SetThumbnail(m.User.AvatarURL("")).
		AddField("👤 Rowdy Name", "<@"+m.User.ID+">").
		AddField("🏢 Destination", guildName).
		AddField("💲 Role", "Future Don?").
		AddField("⏰ Time", time.Now().Format("2006-01-02 15:04:05")).
		SetDescription("🔫 Welcome to the turf, blood & respect earn pananum.").
		SetFooter("Enuyirgal - Respect or Regret")

	b.notifyEmbed(m.GuildID, "welcome", "🔥 A new rowdy has arrived!", welcome.MessageEmbed)
}

func (b *Bot) onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	goodbye := embed.NewEmbed().
		SetColor(0xFF0000).
		SetTitle("👋 Rowdy Left the Turf").
		SetThumbnail(m.User.AvatarURL("")).
		SetDescription(fmt.Sprintf("💀 **%s** left the server... thug life isn't for everyone.", m.User.Username)).
		SetFooter("Enuyirgal - Gang Rules")

	b.notifyEmbed(m.GuildID, "goodbye", "💨 A rowdy has escaped...", goodbye.MessageEmbed)
}

func (b *Bot) onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	// Content is only known when the deleted message was in the state cache.
	deleted := m.BeforeDelete
	if deleted == nil || deleted.Author == nil || deleted.Author.Bot {
		return
	}

	b.notify(m.GuildID, "deleted-msg",
		fmt.Sprintf("🗑️ Message deleted from <@%s> in <#%s>: %s",
			deleted.Author.ID, m.ChannelID, deleted.Content))
}

func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	username := b.resolveUsername(s, v.GuildID, v.UserID)

	oldChannel := ""
	if v.BeforeUpdate != nil {
		oldChannel = v.BeforeUpdate.ChannelID
	}
	newChannel := v.ChannelID

	switch {
	case oldChannel == "" && newChannel != "":
		b.notify(v.GuildID, "vc-join", fmt.Sprintf("🔊 %s joined VC.", username))
	case oldChannel != "" && newChannel == "":
		b.notify(v.GuildID, "vc-leave", fmt.Sprintf("📤 %s left VC.", username))
	case oldChannel != newChannel:
		b.notify(v.GuildID, "vc-move",
			fmt.Sprintf("➡️ %s moved from <#%s> to <#%s>.", username, oldChannel, newChannel))
	}
}

func (b *Bot) onGuildMemberUpdate(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
	if m.BeforeUpdate == nil {
		return
	}

	added, removed := diffRoles(m.BeforeUpdate.Roles, m.Roles)
	for _, roleID := range added {
		b.notify(m.GuildID, "role-log",
			fmt.Sprintf("✅ <@%s> was **given** role: `%s`", m.User.ID, b.roleName(s, m.GuildID, roleID)))
	}
	for _, roleID := range removed {
		b.notify(m.GuildID, "role-log",
			fmt.Sprintf("❌ <@%s> was **removed** role: `%s`", m.User.ID, b.roleName(s, m.GuildID, roleID)))
	}
}

// diffRoles returns the role IDs present only in after (added) and only in
// before (removed).
func diffRoles(before, after []string) (added, removed []string) {
	beforeSet := make(map[string]bool, len(before))
	for _, r := range before {
		beforeSet[r] = true
	}
	afterSet := make(map[string]bool, len(after))
	for _, r := range after {
		afterSet[r] = true
	}

	for _, r := range after {
		if !beforeSet[r] {
			added = append(added, r)
		}
	}
	for _, r := range before {
		if !afterSet[r] {
			removed = append(removed, r)
		}
	}
	return added, removed
}

func (b *Bot) roleName(s *discordgo.Session, guildID, roleID string) string {
	if role, err := s.State.Role(guildID, roleID); err == nil {
		return role.Name
	}
	return roleID
}

func (b *Bot) resolveUsername(s *discordgo.Session, guildID, userID string) string {
	if member, err := s.State.Member(guildID, userID); err == nil && member.User != nil {
		return member.User.Username
	}
	if u, err := s.User(userID); err == nil {
		return u.Username
	}
	return userID
}
