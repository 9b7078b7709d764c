package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"euplay-bot/internal/music/resolver"
	"euplay-bot/internal/music/voice"
)

// Coordinator is the entry point for playback commands. It owns the registry
// and wires resolved tracks to voice connections.
type Coordinator struct {
	registry  *Registry
	resolver  resolver.Resolver
	transport voice.Transport
}

func NewCoordinator(registry *Registry, res resolver.Resolver, transport voice.Transport) *Coordinator {
	return &Coordinator{
		registry:  registry,
		resolver:  res,
		transport: transport,
	}
}

func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Play resolves query and starts playback in the requester's voice channel.
// One track per guild: if a session already exists the request is rejected
// with ErrAlreadyPlaying and the caller must stop first.
func (c *Coordinator) Play(ctx context.Context, guildID, voiceChannelID, query string) (*resolver.Track, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if voiceChannelID == "" {
		return nil, ErrNotInVoice
	}

	sess, created := c.registry.GetOrCreate(guildID)
	if !created {
		return nil, ErrAlreadyPlaying
	}

	track, err := c.resolver.Resolve(ctx, query)
	if err != nil {
		sess.terminate()
		return nil, fmt.Errorf("resolve %q: %w", query, err)
	}

	conn, err := c.transport.Connect(guildID, voiceChannelID)
	if err != nil {
		sess.terminate()
		return nil, fmt.Errorf("connect to voice channel: %w", err)
	}

	player := conn.NewPlayer()
	player.OnIdle(sess.terminate)
	sess.attach(track, conn, player)

	if err := player.Play(track); err != nil {
		sess.terminate()
		return nil, fmt.Errorf("start playback: %w", err)
	}

	sess.setPlaying()
	log.Info().Str("guild", guildID).Str("track", track.Title).Msg("now playing")
	return track, nil
}

// Pause suspends the guild's active session.
func (c *Coordinator) Pause(guildID string) error {
	sess := c.registry.Get(guildID)
	if sess == nil {
		return ErrNoActiveSession
	}
	return sess.Pause()
}

// Resume restarts the guild's paused session.
func (c *Coordinator) Resume(guildID string) error {
	sess := c.registry.Get(guildID)
	if sess == nil {
		return ErrNoActiveSession
	}
	return sess.Resume()
}

// Stop tears down the guild's session and leaves the voice channel.
func (c *Coordinator) Stop(guildID string) error {
	sess := c.registry.Get(guildID)
	if sess == nil {
		return ErrNoActiveSession
	}
	return sess.Stop()
}
