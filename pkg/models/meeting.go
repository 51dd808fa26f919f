package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateTimeLayout is the local date-time format used for meeting dates.
// It matches HTML datetime-local values and carries no timezone.
const DateTimeLayout = "2006-01-02T15:04"

// DefaultTitle is used when a meeting title is created or cleared.
const DefaultTitle = "Untitled Meeting"

// Meeting is a single meeting with its notes and attendees.
type Meeting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	MeetingType string   `json:"meetingType,omitempty"`
	Date        string   `json:"date"`    // local YYYY-MM-DDTHH:MM
	EndDate     string   `json:"endDate"` // local YYYY-MM-DDTHH:MM
	Location    string   `json:"location,omitempty"`
	Tags        string   `json:"tags,omitempty"` // comma-separated
	AttendeeIDs []string `json:"attendeeIds"`
	Attendees   string   `json:"attendees,omitempty"` // legacy free-text list, display fallback only
	Notes       []*Note  `json:"notes"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Note is a single timestamped note within a meeting.
type Note struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"` // ISO creation time, immutable
	IsActionItem bool   `json:"isActionItem"`
}

// NewMeeting creates a meeting dated now with an end one hour later.
// The ID is a millisecond token; callers adding the meeting to a
// collection are responsible for keeping IDs unique within it.
func NewMeeting(now time.Time) *Meeting {
	iso := now.UTC().Format(time.RFC3339)
	return &Meeting{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       DefaultTitle,
		Date:        now.Format(DateTimeLayout),
		EndDate:     now.Add(time.Hour).Format(DateTimeLayout),
		AttendeeIDs: []string{},
		Notes:       []*Note{},
		CreatedAt:   iso,
		UpdatedAt:   iso,
	}
}

// Touch refreshes UpdatedAt. Every mutation of the meeting or its
// notes/attendees goes through it.
func (m *Meeting) Touch() {
	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// SetTitle updates the title, falling back to the placeholder when the
// new value is blank.
func (m *Meeting) SetTitle(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	m.Title = title
	m.Touch()
}

// AddNote appends a note with the current timestamp. Blank content is a
// silent no-op and returns nil.
func (m *Meeting) AddNote(content string, isActionItem bool) *Note {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	n := &Note{
		ID:           uuid.New().String(),
		Content:      content,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		IsActionItem: isActionItem,
	}
	m.Notes = append(m.Notes, n)
	m.Touch()
	return n
}

// NoteByID returns the note with the given ID, or nil.
func (m *Meeting) NoteByID(noteID string) *Note {
	for _, n := range m.Notes {
		if n.ID == noteID {
			return n
		}
	}
	return nil
}

// EditNote replaces a note's content and action flag. The creation
// timestamp is never changed. Blank content is rejected so that empty
// notes are never stored.
func (m *Meeting) EditNote(noteID, content string, isActionItem bool) error {
	n := m.NoteByID(noteID)
	if n == nil {
		return ErrNoteNotFound
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return &ValidationError{Field: "content", Message: "note content cannot be empty"}
	}
	n.Content = content
	n.IsActionItem = isActionItem
	m.Touch()
	return nil
}

// DeleteNote removes the note with the given ID.
func (m *Meeting) DeleteNote(noteID string) error {
	for i, n := range m.Notes {
		if n.ID == noteID {
			m.Notes = append(m.Notes[:i], m.Notes[i+1:]...)
			m.Touch()
			return nil
		}
	}
	return ErrNoteNotFound
}

// ToggleAttendee removes the user from the attendee list if present,
// otherwise appends it. The list never holds duplicates.
func (m *Meeting) ToggleAttendee(userID string) {
	for i, id := range m.AttendeeIDs {
		if id == userID {
			m.AttendeeIDs = append(m.AttendeeIDs[:i], m.AttendeeIDs[i+1:]...)
			m.Touch()
			return
		}
	}
	m.AttendeeIDs = append(m.AttendeeIDs, userID)
	m.Touch()
}

// HasActionItems reports whether any note is flagged as an action item.
func (m *Meeting) HasActionItems() bool {
	for _, n := range m.Notes {
		if n.IsActionItem {
			return true
		}
	}
	return false
}

// DateTime parses the meeting date in the local timezone. Malformed or
// missing dates come back as the zero time.
func (m *Meeting) DateTime() time.Time {
	return parseLocalDateTime(m.Date)
}

// EndDateTime parses the meeting end date like DateTime.
func (m *Meeting) EndDateTime() time.Time {
	return parseLocalDateTime(m.EndDate)
}

func parseLocalDateTime(s string) time.Time {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
