package music

import (
	"context"

	"euplay-bot/internal/command"
	"euplay-bot/internal/music/session"
	"euplay-bot/pkg/cmd"
)

// rejectArgs enforces that a control command was invoked bare: "!pause now"
// is not a pause request.
func rejectArgs(mc *command.MessageContext, inv *cmd.Invocation, name string) bool {
	if len(inv.Args) == 0 {
		return false
	}
	mc.Reply("`" + name + "` takes no arguments.")
	return true
}

type PauseCommand struct {
	Coordinator *session.Coordinator
}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Description() string { return "Pause the current track" }

func (c *PauseCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return nil
	}
	if rejectArgs(mc, inv, c.Name()) {
		return nil
	}

	if err := c.Coordinator.Pause(mc.Event.GuildID); err != nil {
		mc.Reply(replyForControlError(err))
		return nil
	}
	mc.Reply("Paused.")
	return nil
}

type ResumeCommand struct {
	Coordinator *session.Coordinator
}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Resume the paused track" }

func (c *ResumeCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return nil
	}
	if rejectArgs(mc, inv, c.Name()) {
		return nil
	}

	if err := c.Coordinator.Resume(mc.Event.GuildID); err != nil {
		mc.Reply(replyForControlError(err))
		return nil
	}
	mc.Reply("Resumed.")
	return nil
}

type StopCommand struct {
	Coordinator *session.Coordinator
}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Stop playback and leave the voice channel" }

func (c *StopCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return nil
	}
	if rejectArgs(mc, inv, c.Name()) {
		return nil
	}

	if err := c.Coordinator.Stop(mc.Event.GuildID); err != nil {
		mc.Reply(replyForControlError(err))
		return nil
	}
	mc.Reply("Playback stopped.")
	return nil
}
