package ics

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/borgmon/meeting-notes/pkg/models"
)

// ImportedTag marks meetings that came from an iCalendar import.
const ImportedTag = "imported"

// DecodeResult carries a best-effort decoded meeting together with what
// actually came from the document. EventFound is false when the text
// has no VEVENT block; Defaulted lists the fields that fell back to
// current-time defaults.
type DecodeResult struct {
	Meeting    *models.Meeting
	EventFound bool
	Defaulted  []string
}

// cnPattern captures an attendee common name up to the next : or ;.
var cnPattern = regexp.MustCompile(`CN=([^:;]+)`)

// Decode parses the first VEVENT of an iCalendar document, lossily.
// Lines may end in LF or CRLF; only the first event of a multi-event
// document is honored. Decode never fails: a document without a VEVENT
// yields a meeting with all defaults and EventFound false, so the
// caller can report "no event found" and discard the result.
func Decode(text string, users []*models.User, now time.Time) DecodeResult {
	m := models.NewMeeting(now)
	m.Tags = ImportedTag

	found := map[string]bool{}
	inEvent := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !inEvent {
			if line == "BEGIN:VEVENT" {
				inEvent = true
			}
			continue
		}
		if line == "END:VEVENT" {
			break
		}

		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			if title := unescapeText(line[len("SUMMARY:"):]); strings.TrimSpace(title) != "" {
				m.Title = title
				found["title"] = true
			}
		case strings.HasPrefix(line, "DTSTART:"):
			if v, ok := localDateTime(line[len("DTSTART:"):]); ok {
				m.Date = v
				found["date"] = true
			}
		case strings.HasPrefix(line, "DTEND:"):
			if v, ok := localDateTime(line[len("DTEND:"):]); ok {
				m.EndDate = v
				found["endDate"] = true
			}
		case strings.HasPrefix(line, "LOCATION:"):
			m.Location = unescapeText(line[len("LOCATION:"):])
			found["location"] = true
		case strings.HasPrefix(line, "DESCRIPTION:"):
			m.Notes = decodeNotes(line[len("DESCRIPTION:"):], now)
			found["notes"] = true
		case strings.HasPrefix(line, "ATTENDEE"):
			if match := cnPattern.FindStringSubmatch(line); match != nil {
				name := strings.TrimSpace(unescapeText(match[1]))
				if u := models.UserByName(users, name); u != nil && !slices.Contains(m.AttendeeIDs, u.ID) {
					m.AttendeeIDs = append(m.AttendeeIDs, u.ID)
					found["attendees"] = true
				}
			}
		}
	}

	res := DecodeResult{Meeting: m, EventFound: inEvent}
	for _, field := range []string{"title", "date", "endDate", "location", "notes", "attendees"} {
		if !found[field] {
			res.Defaulted = append(res.Defaulted, field)
		}
	}
	return res
}

// localDateTime extracts minute precision from a basic-format
// iCalendar date-time by fixed offsets. Trailing seconds and the Z
// suffix are discarded; no timezone conversion is performed.
func localDateTime(v string) (string, bool) {
	if len(v) < 13 {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%sT%s:%s", v[0:4], v[4:6], v[6:8], v[9:11], v[11:13]), true
}

// decodeNotes splits a DESCRIPTION value on the literal \n\n sequence.
// Segments carrying the [ACTION] prefix become action items with the
// prefix stripped.
func decodeNotes(raw string, now time.Time) []*models.Note {
	notes := []*models.Note{}
	for _, segment := range strings.Split(raw, `\n\n`) {
		content := strings.TrimSpace(unescapeText(segment))
		action := false
		if strings.HasPrefix(content, "[ACTION]") {
			action = true
			content = strings.TrimSpace(strings.TrimPrefix(content, "[ACTION]"))
		}
		if content == "" {
			continue
		}
		notes = append(notes, &models.Note{
			ID:           uuid.New().String(),
			Content:      content,
			Timestamp:    now.UTC().Format(time.RFC3339),
			IsActionItem: action,
		})
	}
	return notes
}
