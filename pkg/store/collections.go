package store

import (
	"encoding/json"

	"github.com/borgmon/meeting-notes/pkg/models"
)

// LoadMeetings decodes the stored meetings collection. Absent or corrupt
// data yields an empty collection.
func LoadMeetings(s Store) []*models.Meeting {
	raw, ok := s.Get(KeyMeetings)
	if !ok || raw == "" {
		return []*models.Meeting{}
	}
	var meetings []*models.Meeting
	if err := json.Unmarshal([]byte(raw), &meetings); err != nil || meetings == nil {
		return []*models.Meeting{}
	}
	return meetings
}

// SaveMeetings replaces the whole stored meetings collection.
func SaveMeetings(s Store, meetings []*models.Meeting) error {
	data, err := json.Marshal(meetings)
	if err != nil {
		return err
	}
	return s.Set(KeyMeetings, string(data))
}

// LoadUsers decodes the stored roster. Absent or corrupt data yields an
// empty roster.
func LoadUsers(s Store) []*models.User {
	raw, ok := s.Get(KeyUsers)
	if !ok || raw == "" {
		return []*models.User{}
	}
	var users []*models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil || users == nil {
		return []*models.User{}
	}
	return users
}

// SaveUsers replaces the whole stored roster.
func SaveUsers(s Store, users []*models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.Set(KeyUsers, string(data))
}

// LoadLoginConfig decodes the stored login config, or nil when absent
// or corrupt.
func LoadLoginConfig(s Store) *models.LoginConfig {
	raw, ok := s.Get(KeyLogin)
	if !ok || raw == "" {
		return nil
	}
	var cfg models.LoginConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil
	}
	return &cfg
}

// SaveLoginConfig stores the login config. A nil config clears it.
func SaveLoginConfig(s Store, cfg *models.LoginConfig) error {
	if cfg == nil {
		return s.Set(KeyLogin, "")
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.Set(KeyLogin, string(data))
}

// LoadTheme returns the stored theme name, or "" when unset.
func LoadTheme(s Store) string {
	theme, _ := s.Get(KeyTheme)
	return theme
}

// SaveTheme stores the theme name.
func SaveTheme(s Store, theme string) error {
	return s.Set(KeyTheme, theme)
}
