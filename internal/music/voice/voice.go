// Package voice abstracts the live audio connection to a voice channel.
// The playback session talks only to these interfaces; the Discord
// implementation lives in this package, fakes live in tests.
package voice

import "euplay-bot/internal/music/resolver"

// Transport establishes audio connections to voice channels.
type Transport interface {
	Connect(guildID, channelID string) (Connection, error)
}

// Connection is a live link to one voice channel.
type Connection interface {
	NewPlayer() Player
	// Disconnect tears the connection down. Idempotent: safe to call again
	// after the link already dropped.
	Disconnect() error
}

// Player controls the audio stream on a connection.
type Player interface {
	// OnIdle registers fn to be invoked once when the stream ends on its
	// own. Must be set before Play.
	OnIdle(fn func())
	Play(track *resolver.Track) error
	Pause() error
	Resume() error
	// Stop halts the stream without firing the idle callback.
	Stop()
}
