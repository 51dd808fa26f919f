package stats

import (
	"testing"
	"time"

	"github.com/borgmon/meeting-notes/pkg/models"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

func meetingAt(t time.Time) *models.Meeting {
	return &models.Meeting{
		ID:      t.Format("20060102150405"),
		Title:   "Meeting",
		Date:    t.Format(models.DateTimeLayout),
		EndDate: t.Add(time.Hour).Format(models.DateTimeLayout),
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, now)
	want := Stats{}
	if got != want {
		t.Errorf("empty collection should be all zeros, got %+v", got)
	}
}

func TestComputeStandupScenario(t *testing.T) {
	m := meetingAt(now.Add(-time.Hour))
	m.Title = "Standup"
	m.Notes = []*models.Note{
		{ID: "n1", Content: "Discuss blockers", Timestamp: "2026-08-28T11:00:00Z"},
		{ID: "n2", Content: "Fix deploy script", Timestamp: "2026-08-28T11:05:00Z", IsActionItem: true},
	}

	got := Compute([]*models.Meeting{m}, now)
	if got.TotalMeetings != 1 || got.TotalNotes != 2 || got.TotalActionItems != 1 {
		t.Errorf("unexpected totals %+v", got)
	}
	if got.AvgNotesPerMeeting != 2.0 {
		t.Errorf("avg = %v, want 2.0", got.AvgNotesPerMeeting)
	}
}

// The week/month windows are rolling offsets from now, unlike the list
// filters which anchor to start of day.
func TestComputeRollingWindows(t *testing.T) {
	justInside := meetingAt(now.Add(-7*24*time.Hour + time.Hour))
	justOutside := meetingAt(now.Add(-7*24*time.Hour - time.Hour))
	ancient := meetingAt(now.Add(-31 * 24 * time.Hour))

	got := Compute([]*models.Meeting{justInside, justOutside, ancient}, now)
	if got.MeetingsThisWeek != 1 {
		t.Errorf("week = %d, want 1", got.MeetingsThisWeek)
	}
	if got.MeetingsThisMonth != 2 {
		t.Errorf("month = %d, want 2", got.MeetingsThisMonth)
	}
}

func TestComputeAvgRounding(t *testing.T) {
	a := meetingAt(now)
	a.Notes = []*models.Note{
		{ID: "1", Content: "x"}, {ID: "2", Content: "y"}, {ID: "3", Content: "z"},
	}
	b := meetingAt(now.Add(time.Hour))

	got := Compute([]*models.Meeting{a, b}, now)
	if got.AvgNotesPerMeeting != 1.5 {
		t.Errorf("avg = %v, want 1.5", got.AvgNotesPerMeeting)
	}

	c := meetingAt(now.Add(2 * time.Hour))
	got = Compute([]*models.Meeting{a, b, c}, now)
	if got.AvgNotesPerMeeting != 1.0 {
		t.Errorf("avg = %v, want 1.0 (3/3 rounded)", got.AvgNotesPerMeeting)
	}
}

func TestComputeSkipsMalformedDates(t *testing.T) {
	m := meetingAt(now)
	m.Date = "garbage"
	m.Notes = []*models.Note{{ID: "1", Content: "kept"}}

	got := Compute([]*models.Meeting{m}, now)
	if got.TotalNotes != 1 {
		t.Errorf("notes should still count, got %d", got.TotalNotes)
	}
	if got.MeetingsThisWeek != 0 || got.MeetingsThisMonth != 0 {
		t.Errorf("malformed dates must not enter windows: %+v", got)
	}
}
