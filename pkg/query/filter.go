// Package query filters and sorts the meeting collection for display.
// It never owns or mutates the collections it is given.
package query

import (
	"strings"
	"time"

	"github.com/borgmon/meeting-notes/pkg/models"
)

// Filter values accepted by Filter.
const (
	FilterAll     = "all"
	FilterToday   = "today"
	FilterWeek    = "week"
	FilterMonth   = "month"
	FilterActions = "actions"
	// FilterTypePrefix selects meetings of one type, e.g. "type-standup".
	FilterTypePrefix = "type-"
)

// Filter returns the meetings matching both the search query and the
// filter, preserving input order. An empty query matches everything and
// unknown filters behave like FilterAll.
func Filter(meetings []*models.Meeting, users []*models.User, search, filterBy string, now time.Time) []*models.Meeting {
	q := strings.ToLower(strings.TrimSpace(search))
	result := make([]*models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if matchesSearch(m, users, q) && matchesFilter(m, filterBy, now) {
			result = append(result, m)
		}
	}
	return result
}

// matchesSearch checks title, attendee display names, tags and note
// contents for a case-insensitive substring hit.
func matchesSearch(m *models.Meeting, users []*models.User, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Title), q) {
		return true
	}
	for _, name := range models.AttendeeNames(m, users) {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(m.Tags), q) {
		return true
	}
	for _, n := range m.Notes {
		if strings.Contains(strings.ToLower(n.Content), q) {
			return true
		}
	}
	return false
}

// matchesFilter applies the date/action/type filter. Date thresholds
// are anchored to the start of the current local day; meetings with
// unparseable dates never pass a date filter.
func matchesFilter(m *models.Meeting, filterBy string, now time.Time) bool {
	if strings.HasPrefix(filterBy, FilterTypePrefix) {
		return m.MeetingType == strings.TrimPrefix(filterBy, FilterTypePrefix)
	}
	switch filterBy {
	case FilterToday:
		return passesCutoff(m, startOfDay(now))
	case FilterWeek:
		return passesCutoff(m, startOfDay(now).AddDate(0, 0, -7))
	case FilterMonth:
		return passesCutoff(m, startOfDay(now).AddDate(0, 0, -30))
	case FilterActions:
		return m.HasActionItems()
	default:
		return true
	}
}

func passesCutoff(m *models.Meeting, cutoff time.Time) bool {
	d := m.DateTime()
	return !d.IsZero() && !d.Before(cutoff)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
