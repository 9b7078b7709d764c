package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const (
	commandHistoryLimit = 20
	trackHistoryLimit   = 12
)

type Storage struct {
	ds *datastore.DataStore
}

type CommandRecord struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	GuildName   string    `json:"guild_name"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Command     string    `json:"command"`
	Datetime    time.Time `json:"datetime"`
}

type TrackRecord struct {
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	UserID   string    `json:"user_id"`
	Datetime time.Time `json:"datetime"`
}

// Record is the per-guild document kept in the datastore.
type Record struct {
	CommandHistory []CommandRecord   `json:"cmd_history"`
	TrackHistory   []TrackRecord     `json:"track_history"`
	Channels       map[string]string `json:"channels"` // e.g. "welcome": channelID
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns the guild's Record, creating an empty one if absent.
// The datastore round-trips values through JSON, so stored records come back as
// map[string]any and need remarshalling.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{Channels: map[string]string{}}
		s.ds.Add(guildID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.Channels == nil {
		record.Channels = map[string]string{}
	}
	if len(record.CommandHistory) > commandHistoryLimit {
		record.CommandHistory = record.CommandHistory[len(record.CommandHistory)-commandHistoryLimit:]
	}
	if len(record.TrackHistory) > trackHistoryLimit {
		record.TrackHistory = record.TrackHistory[len(record.TrackHistory)-trackHistoryLimit:]
	}

	return &record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) {
	s.ds.Add(guildID, record)
}
