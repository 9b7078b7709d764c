// Package command defines the Discord-side invocation context shared by all
// prefix commands. Commands themselves implement the transport-agnostic
// pkg/cmd contract and type-assert Invocation.Data to these contexts.
package command

import (
	"github.com/bwmarrin/discordgo"

	"euplay-bot/internal/storage"
)

// MessageContext is the payload for commands triggered by a chat message
// (e.g. "!play lofi beats").
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Storage *storage.Storage
}

// Reply sends a one-line reply to the channel the command came from.
// Send failures are swallowed; a reply that cannot be delivered should not
// fail the command. A context without a session drops the reply.
func (c *MessageContext) Reply(text string) {
	if c.Session == nil {
		return
	}
	_, _ = c.Session.ChannelMessageSend(c.Event.ChannelID, text)
}
