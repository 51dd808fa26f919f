package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewMeetingDefaults(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.Local)
	m := NewMeeting(now)

	if m.ID == "" {
		t.Error("expected a generated ID")
	}
	if m.Title != DefaultTitle {
		t.Errorf("expected placeholder title, got %q", m.Title)
	}
	if m.Date != "2026-08-28T10:30" {
		t.Errorf("unexpected date %q", m.Date)
	}
	if m.EndDate != "2026-08-28T11:30" {
		t.Errorf("expected end one hour after start, got %q", m.EndDate)
	}
	if len(m.Notes) != 0 || len(m.AttendeeIDs) != 0 {
		t.Error("expected empty notes and attendees")
	}
	if m.CreatedAt == "" || m.UpdatedAt == "" {
		t.Error("expected creation timestamps")
	}
}

func TestAddNote(t *testing.T) {
	m := NewMeeting(time.Now())

	if n := m.AddNote("   ", true); n != nil {
		t.Error("blank content should be a no-op")
	}
	if len(m.Notes) != 0 {
		t.Fatal("blank note was stored")
	}

	n := m.AddNote("  Discuss blockers  ", false)
	if n == nil {
		t.Fatal("expected a note")
	}
	if n.Content != "Discuss blockers" {
		t.Errorf("content not trimmed: %q", n.Content)
	}
	if n.ID == "" || n.Timestamp == "" {
		t.Error("expected generated ID and timestamp")
	}
}

func TestAddNoteRefreshesUpdatedAt(t *testing.T) {
	m := NewMeeting(time.Now())
	m.UpdatedAt = ""
	m.AddNote("hello", false)
	if m.UpdatedAt == "" {
		t.Error("AddNote should refresh UpdatedAt")
	}
}

func TestEditNote(t *testing.T) {
	m := NewMeeting(time.Now())
	n := m.AddNote("draft", false)
	created := n.Timestamp

	if err := m.EditNote(n.ID, "final", true); err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	if n.Content != "final" || !n.IsActionItem {
		t.Errorf("edit not applied: %+v", n)
	}
	if n.Timestamp != created {
		t.Error("edit must not change the creation timestamp")
	}

	if err := m.EditNote("missing", "x", false); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}

	var ve *ValidationError
	if err := m.EditNote(n.ID, "   ", false); !errors.As(err, &ve) {
		t.Errorf("blank content should be rejected, got %v", err)
	}
	if n.Content != "final" {
		t.Error("rejected edit must not change the note")
	}
}

func TestDeleteNote(t *testing.T) {
	m := NewMeeting(time.Now())
	first := m.AddNote("first", false)
	second := m.AddNote("second", true)

	if err := m.DeleteNote(first.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if len(m.Notes) != 1 || m.Notes[0].ID != second.ID {
		t.Errorf("wrong note deleted: %+v", m.Notes)
	}
	if err := m.DeleteNote(first.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestToggleAttendee(t *testing.T) {
	m := NewMeeting(time.Now())

	m.ToggleAttendee("u1")
	m.ToggleAttendee("u2")
	m.ToggleAttendee("u1")
	if len(m.AttendeeIDs) != 1 || m.AttendeeIDs[0] != "u2" {
		t.Errorf("unexpected attendees %v", m.AttendeeIDs)
	}

	m.ToggleAttendee("u2")
	m.ToggleAttendee("u2")
	count := 0
	for _, id := range m.AttendeeIDs {
		if id == "u2" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("attendee list holds duplicates: %v", m.AttendeeIDs)
	}
}

func TestSetTitle(t *testing.T) {
	m := NewMeeting(time.Now())
	m.SetTitle("Standup")
	if m.Title != "Standup" {
		t.Errorf("got %q", m.Title)
	}
	m.SetTitle("   ")
	if m.Title != DefaultTitle {
		t.Errorf("blank title should fall back to placeholder, got %q", m.Title)
	}
}

func TestDateTimeMalformed(t *testing.T) {
	m := NewMeeting(time.Now())
	m.Date = "not a date"
	if !m.DateTime().IsZero() {
		t.Error("malformed date should parse to zero time")
	}
}
