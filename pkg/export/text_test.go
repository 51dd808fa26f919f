package export

import (
	"strings"
	"testing"
	"time"

	"github.com/borgmon/meeting-notes/pkg/models"
)

func reportFixture() (*models.Meeting, []*models.User) {
	users := []*models.User{
		{ID: "u1", Name: "Alice", Email: "alice@x.com", Role: "Staff"},
		{ID: "u2", Name: "Bob", Email: "bob@x.com", Role: "Staff"},
	}
	m := &models.Meeting{
		ID:          "1756380000000",
		Title:       "Standup",
		Date:        "2026-08-28T10:30",
		EndDate:     "2026-08-28T11:30",
		Location:    "Room 4",
		Tags:        "daily",
		AttendeeIDs: []string{"u1", "u2"},
		Notes: []*models.Note{
			{ID: "n1", Content: "Discuss blockers", Timestamp: "2026-08-28T10:31:00Z"},
			{ID: "n2", Content: "Fix deploy script", Timestamp: "2026-08-28T10:32:00Z", IsActionItem: true},
		},
	}
	return m, users
}

func TestTextReport(t *testing.T) {
	m, users := reportFixture()
	got := Text(m, users)
	lines := strings.Split(got, "\n")

	if lines[0] != "Standup" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != strings.Repeat("=", len("Standup")) {
		t.Errorf("underline = %q", lines[1])
	}
	if !strings.Contains(got, "Start: August 28, 2026 10:30 AM") {
		t.Errorf("missing start line in %q", got)
	}
	if !strings.Contains(got, "Location: Room 4") {
		t.Error("missing location line")
	}
	if !strings.Contains(got, "Attendees: Alice, Bob") {
		t.Error("missing attendees line")
	}
	if !strings.Contains(got, "Tags: daily") {
		t.Error("missing tags line")
	}
	if !strings.Contains(got, "Notes:\n"+strings.Repeat("─", 50)) {
		t.Error("missing notes rule")
	}
	if !strings.Contains(got, "⚡ [ACTION ITEM] ") {
		t.Error("missing action item prefix")
	}
	if !strings.Contains(got, "] Discuss blockers") {
		t.Error("missing note content")
	}
}

func TestTextOmitsEmptyFields(t *testing.T) {
	m, _ := reportFixture()
	m.Location = ""
	m.Tags = ""
	m.AttendeeIDs = nil
	m.Notes = nil

	got := Text(m, nil)
	for _, label := range []string{"Location:", "Attendees:", "Tags:", "Notes:"} {
		if strings.Contains(got, label) {
			t.Errorf("%s should be omitted when empty", label)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1756380000000)
	got := Filename("Q3 Planning: Kickoff!", "ics", now)
	want := "q3_planning__kickoff__1756380000000.ics"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
