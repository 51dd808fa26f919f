package models

import "strings"

// ResolveAttendees maps a meeting's attendee IDs to roster users,
// preserving order and skipping IDs no longer in the roster.
func ResolveAttendees(m *Meeting, users []*User) []*User {
	resolved := make([]*User, 0, len(m.AttendeeIDs))
	for _, id := range m.AttendeeIDs {
		if u := UserByID(users, id); u != nil {
			resolved = append(resolved, u)
		}
	}
	return resolved
}

// AttendeeNames returns display names for a meeting's attendees. Roster
// names win when any attendee ID resolves; otherwise the legacy
// free-text list is split on commas as a read-only fallback.
func AttendeeNames(m *Meeting, users []*User) []string {
	resolved := ResolveAttendees(m, users)
	if len(resolved) > 0 {
		names := make([]string, 0, len(resolved))
		for _, u := range resolved {
			names = append(names, u.Name)
		}
		return names
	}

	if strings.TrimSpace(m.Attendees) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(m.Attendees, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// UserByID returns the roster user with the given ID, or nil.
func UserByID(users []*User, id string) *User {
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByName looks up a roster user by display name, case-insensitively.
func UserByName(users []*User, name string) *User {
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			return u
		}
	}
	return nil
}
