// Package stats derives summary counts over the meeting collection.
package stats

import (
	"math"
	"time"

	"github.com/borgmon/meeting-notes/pkg/models"
)

// Stats summarizes the meeting collection at a point in time.
type Stats struct {
	TotalMeetings      int     `json:"totalMeetings"`
	TotalNotes         int     `json:"totalNotes"`
	TotalActionItems   int     `json:"totalActionItems"`
	MeetingsThisWeek   int     `json:"meetingsThisWeek"`
	MeetingsThisMonth  int     `json:"meetingsThisMonth"`
	AvgNotesPerMeeting float64 `json:"avgNotesPerMeeting"`
}

// Compute tallies the collection. The week and month windows are
// rolling offsets from now, not start-of-day thresholds like the list
// filters use; the two are intentionally distinct.
func Compute(meetings []*models.Meeting, now time.Time) Stats {
	s := Stats{TotalMeetings: len(meetings)}

	weekCutoff := now.Add(-7 * 24 * time.Hour)
	monthCutoff := now.Add(-30 * 24 * time.Hour)

	for _, m := range meetings {
		s.TotalNotes += len(m.Notes)
		for _, n := range m.Notes {
			if n.IsActionItem {
				s.TotalActionItems++
			}
		}

		d := m.DateTime()
		if d.IsZero() {
			continue
		}
		if !d.Before(weekCutoff) {
			s.MeetingsThisWeek++
		}
		if !d.Before(monthCutoff) {
			s.MeetingsThisMonth++
		}
	}

	if s.TotalMeetings > 0 {
		avg := float64(s.TotalNotes) / float64(s.TotalMeetings)
		s.AvgNotesPerMeeting = math.Round(avg*10) / 10
	}
	return s
}
