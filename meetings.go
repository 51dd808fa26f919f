package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/borgmon/meeting-notes/pkg/models"
	"github.com/borgmon/meeting-notes/pkg/query"
)

func newListCmd(a *app) *cobra.Command {
	var search, filterBy, sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings := query.Filter(a.session.Meetings, a.session.Users, search, filterBy, time.Now())
			meetings = query.Sort(meetings, sortBy)

			if len(meetings) == 0 {
				fmt.Println("No meetings")
				return nil
			}
			for _, m := range meetings {
				actions := 0
				for _, n := range m.Notes {
					if n.IsActionItem {
						actions++
					}
				}
				line := fmt.Sprintf("%s  %-16s  %s (%d notes", m.ID, m.Date, m.Title, len(m.Notes))
				if actions > 0 {
					line += fmt.Sprintf(", %d action items", actions)
				}
				fmt.Println(line + ")")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive search over titles, attendees, tags and notes")
	cmd.Flags().StringVar(&filterBy, "filter", query.FilterAll, "Filter: all, today, week, month, actions or type-<name>")
	cmd.Flags().StringVar(&sortBy, "sort", query.SortRecent, "Sort: recent, oldest, title or notes")
	return cmd
}

func newNewCmd(a *app) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.CreateMeeting()
			if title != "" {
				m.SetTitle(title)
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Created meeting %s (%s)\n", m.ID, m.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Meeting title")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Show a meeting with its note IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}

			fmt.Printf("%s (%s)\n", m.Title, m.ID)
			fmt.Printf("  Start: %s  End: %s\n", m.Date, m.EndDate)
			if m.Location != "" {
				fmt.Printf("  Location: %s\n", m.Location)
			}
			if m.MeetingType != "" {
				fmt.Printf("  Type: %s\n", m.MeetingType)
			}
			if m.Tags != "" {
				fmt.Printf("  Tags: %s\n", m.Tags)
			}
			if names := models.AttendeeNames(m, a.session.Users); len(names) > 0 {
				fmt.Printf("  Attendees: %s\n", strings.Join(names, ", "))
			}
			for _, n := range m.Notes {
				marker := " "
				if n.IsActionItem {
					marker = "⚡"
				}
				fmt.Printf("  %s %s  %s\n", marker, n.ID, n.Content)
			}
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var title, date, end, location, tags, meetingType string

	cmd := &cobra.Command{
		Use:   "edit <meeting-id>",
		Short: "Edit meeting fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}

			if cmd.Flags().Changed("title") {
				m.SetTitle(title)
			}
			if cmd.Flags().Changed("date") {
				m.Date = date
				m.Touch()
			}
			if cmd.Flags().Changed("end") {
				m.EndDate = end
				m.Touch()
			}
			if cmd.Flags().Changed("location") {
				m.Location = location
				m.Touch()
			}
			if cmd.Flags().Changed("tags") {
				m.Tags = tags
				m.Touch()
			}
			if cmd.Flags().Changed("type") {
				m.MeetingType = meetingType
				m.Touch()
			}
			return a.save()
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Meeting title")
	cmd.Flags().StringVar(&date, "date", "", "Start (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&meetingType, "type", "", "Meeting type")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <meeting-id>",
		Short: "Delete a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.DeleteMeeting(args[0]); err != nil {
				return err
			}
			return a.save()
		},
	}
}

func newNoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage meeting notes",
	}
	cmd.AddCommand(newNoteAddCmd(a), newNoteEditCmd(a), newNoteRmCmd(a))
	return cmd
}

func newNoteAddCmd(a *app) *cobra.Command {
	var action bool

	cmd := &cobra.Command{
		Use:   "add <meeting-id> <content>",
		Short: "Add a timestamped note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}
			n := m.AddNote(strings.Join(args[1:], " "), action)
			if n == nil {
				// Blank content is a silent no-op, matching the UI behavior.
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Added note %s\n", n.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&action, "action", false, "Flag as action item")
	return cmd
}

func newNoteEditCmd(a *app) *cobra.Command {
	var action bool

	cmd := &cobra.Command{
		Use:   "edit <meeting-id> <note-id> <content>",
		Short: "Edit a note's content and action flag",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}
			flag := action
			if !cmd.Flags().Changed("action") {
				if n := m.NoteByID(args[1]); n != nil {
					flag = n.IsActionItem
				}
			}
			if err := m.EditNote(args[1], strings.Join(args[2:], " "), flag); err != nil {
				return err
			}
			return a.save()
		},
	}

	cmd.Flags().BoolVar(&action, "action", false, "Flag as action item")
	return cmd
}

func newNoteRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <meeting-id> <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}
			if err := m.DeleteNote(args[1]); err != nil {
				return err
			}
			return a.save()
		},
	}
}

func newAttendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attend <meeting-id> <user-id>",
		Short: "Toggle a user on a meeting's attendee list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}
			if a.session.UserByID(args[1]) == nil {
				return models.ErrUserNotFound
			}
			m.ToggleAttendee(args[1])
			return a.save()
		},
	}
}
