// Package session owns the in-memory aggregate of meetings, users and
// settings for one running instance. There is no global state: callers
// construct a Session and pass it around.
package session

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/borgmon/meeting-notes/pkg/models"
	"github.com/borgmon/meeting-notes/pkg/store"
)

// Session is the single owner of the loaded collections. All mutation
// goes through it or through methods on the entities it hands out.
type Session struct {
	store store.Store

	Meetings []*models.Meeting
	Users    []*models.User
	Login    *models.LoginConfig
	Theme    string
}

// Open loads all collections from the store and normalizes older
// records in place.
func Open(s store.Store) *Session {
	sess := &Session{
		store:    s,
		Meetings: store.LoadMeetings(s),
		Users:    store.LoadUsers(s),
		Login:    store.LoadLoginConfig(s),
		Theme:    store.LoadTheme(s),
	}
	sess.normalize()
	return sess
}

// normalize upgrades legacy records: nil collections become empty ones,
// notes gain stable IDs, and free-text attendee lists are resolved
// against the roster once. The legacy string is kept as a display
// fallback for names that did not resolve.
func (s *Session) normalize() {
	for _, m := range s.Meetings {
		if m.AttendeeIDs == nil {
			m.AttendeeIDs = []string{}
		}
		if m.Notes == nil {
			m.Notes = []*models.Note{}
		}
		for _, n := range m.Notes {
			if n.ID == "" {
				n.ID = uuid.New().String()
			}
		}
		if len(m.AttendeeIDs) == 0 && strings.TrimSpace(m.Attendees) != "" {
			for _, part := range strings.Split(m.Attendees, ",") {
				u := models.UserByName(s.Users, strings.TrimSpace(part))
				if u != nil && !slices.Contains(m.AttendeeIDs, u.ID) {
					m.AttendeeIDs = append(m.AttendeeIDs, u.ID)
				}
			}
		}
	}
}

// Save serializes every collection back to the store, replacing the
// stored values wholesale. On error the in-memory state is ahead of the
// durable state until the next successful save.
func (s *Session) Save() error {
	if err := store.SaveMeetings(s.store, s.Meetings); err != nil {
		return err
	}
	if err := store.SaveUsers(s.store, s.Users); err != nil {
		return err
	}
	if s.Login != nil {
		if err := store.SaveLoginConfig(s.store, s.Login); err != nil {
			return err
		}
	}
	return store.SaveTheme(s.store, s.Theme)
}

// CreateMeeting creates a meeting dated now and prepends it, newest
// first.
func (s *Session) CreateMeeting() *models.Meeting {
	m := models.NewMeeting(time.Now())
	s.AddMeeting(m)
	return m
}

// AddMeeting prepends a meeting to the collection, bumping its
// millisecond ID token until it is unique.
func (s *Session) AddMeeting(m *models.Meeting) {
	for s.MeetingByID(m.ID) != nil {
		if token, err := strconv.ParseInt(m.ID, 10, 64); err == nil {
			m.ID = strconv.FormatInt(token+1, 10)
		} else {
			m.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
		}
	}
	s.Meetings = append([]*models.Meeting{m}, s.Meetings...)
}

// MeetingByID returns the meeting with the given ID, or nil.
func (s *Session) MeetingByID(id string) *models.Meeting {
	for _, m := range s.Meetings {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// DeleteMeeting removes the meeting with the given ID.
func (s *Session) DeleteMeeting(id string) error {
	for i, m := range s.Meetings {
		if m.ID == id {
			s.Meetings = append(s.Meetings[:i], s.Meetings[i+1:]...)
			return nil
		}
	}
	return models.ErrMeetingNotFound
}

// CreateUser validates and appends a roster entry.
func (s *Session) CreateUser(name, email, role string) (*models.User, error) {
	u, err := models.NewUser(name, email, role)
	if err != nil {
		return nil, err
	}
	s.Users = append(s.Users, u)
	return u, nil
}

// UserByID returns the roster user with the given ID, or nil.
func (s *Session) UserByID(id string) *models.User {
	return models.UserByID(s.Users, id)
}

// DeleteUser removes a user from the roster and purges its ID from
// every meeting's attendee list.
func (s *Session) DeleteUser(id string) error {
	idx := -1
	for i, u := range s.Users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ErrUserNotFound
	}
	s.Users = append(s.Users[:idx], s.Users[idx+1:]...)

	for _, m := range s.Meetings {
		if slices.Contains(m.AttendeeIDs, id) {
			m.AttendeeIDs = slices.DeleteFunc(m.AttendeeIDs, func(v string) bool { return v == id })
			m.Touch()
		}
	}
	return nil
}
