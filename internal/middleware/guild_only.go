package middleware

import (
	"context"

	"euplay-bot/internal/command"
	"euplay-bot/pkg/cmd"
)

// WithGuildOnly drops invocations that did not originate inside a guild
// (e.g. DMs). No reply is sent; the command simply does not run.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if mc, ok := inv.Data.(*command.MessageContext); ok && mc.Event.GuildID == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}
