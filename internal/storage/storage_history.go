package storage

import "time"

// SetCommand appends a command execution to the guild's history, capped at
// commandHistoryLimit entries.
func (s *Storage) SetCommand(guildID, channelID, channelName, guildName, userID, username, command string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandHistory = append(record.CommandHistory, CommandRecord{
		ChannelID:   channelID,
		ChannelName: channelName,
		GuildName:   guildName,
		UserID:      userID,
		Username:    username,
		Command:     command,
		Datetime:    time.Now(),
	})
	if len(record.CommandHistory) > commandHistoryLimit {
		record.CommandHistory = record.CommandHistory[len(record.CommandHistory)-commandHistoryLimit:]
	}

	s.saveGuildRecord(guildID, record)
	return nil
}

// GetCommandHistory returns the guild's recorded command executions, oldest first.
func (s *Storage) GetCommandHistory(guildID string) ([]CommandRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandHistory, nil
}

// AddTrack appends a played track to the guild's history, capped at
// trackHistoryLimit entries.
func (s *Storage) AddTrack(guildID, title, url, userID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.TrackHistory = append(record.TrackHistory, TrackRecord{
		Title:    title,
		URL:      url,
		UserID:   userID,
		Datetime: time.Now(),
	})
	if len(record.TrackHistory) > trackHistoryLimit {
		record.TrackHistory = record.TrackHistory[len(record.TrackHistory)-trackHistoryLimit:]
	}

	s.saveGuildRecord(guildID, record)
	return nil
}

// GetTrackHistory returns the guild's recently played tracks, oldest first.
func (s *Storage) GetTrackHistory(guildID string) ([]TrackRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.TrackHistory, nil
}
