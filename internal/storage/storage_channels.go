package storage

import "fmt"

// Channel kinds accepted by SetSpecialChannel.
var ChannelKinds = []string{
	"welcome", "goodbye", "deleted-msg", "role-log",
	"vc-join", "vc-leave", "vc-move", "bot-activity",
}

// SetSpecialChannel stores a per-guild destination channel override.
func (s *Storage) SetSpecialChannel(guildID, kind, channelID string) error {
	if !validChannelKind(kind) {
		return fmt.Errorf("unknown channel kind: %s", kind)
	}

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.Channels[kind] = channelID
	s.saveGuildRecord(guildID, record)
	return nil
}

// GetSpecialChannel returns the guild's channel for kind, or "" if not set.
func (s *Storage) GetSpecialChannel(guildID, kind string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.Channels[kind], nil
}

func validChannelKind(kind string) bool {
	for _, k := range ChannelKinds {
		if k == kind {
			return true
		}
	}
	return false
}
