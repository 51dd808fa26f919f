package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/borgmon/meeting-notes/pkg/export"
	"github.com/borgmon/meeting-notes/pkg/ics"
	"github.com/borgmon/meeting-notes/pkg/models"
	"github.com/borgmon/meeting-notes/pkg/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stats.Compute(a.session.Meetings, time.Now())
			fmt.Printf("Meetings:      %d\n", s.TotalMeetings)
			fmt.Printf("Notes:         %d\n", s.TotalNotes)
			fmt.Printf("Action items:  %d\n", s.TotalActionItems)
			fmt.Printf("This week:     %d\n", s.MeetingsThisWeek)
			fmt.Printf("This month:    %d\n", s.MeetingsThisMonth)
			fmt.Printf("Notes/meeting: %.1f\n", s.AvgNotesPerMeeting)
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "export <meeting-id>",
		Short: "Export a meeting as plain text or iCalendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.session.MeetingByID(args[0])
			if m == nil {
				return models.ErrMeetingNotFound
			}

			now := time.Now()
			var content, name string
			switch format {
			case "txt":
				content = export.Text(m, a.session.Users)
				name = export.Filename(m.Title, "txt", now)
			case "ics":
				content = ics.Encode(m, a.session.Users, now)
				name = export.Filename(m.Title, "ics", now)
			default:
				return fmt.Errorf("unknown format %q (want txt or ics)", format)
			}

			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
			fmt.Printf("Exported %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "txt", "Export format: txt or ics")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Import the first event of an iCalendar file as a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			res := ics.Decode(string(data), a.session.Users, time.Now())
			if !res.EventFound {
				return fmt.Errorf("no event found in %s", args[0])
			}

			a.session.AddMeeting(res.Meeting)
			if err := a.save(); err != nil {
				return err
			}

			fmt.Printf("Imported %q as meeting %s\n", res.Meeting.Title, res.Meeting.ID)
			if len(res.Defaulted) > 0 {
				fmt.Printf("Defaulted fields: %s\n", strings.Join(res.Defaulted, ", "))
			}
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Manage email-delivery credentials",
	}
	cmd.AddCommand(newLoginSetCmd(a), newLoginShowCmd(a))
	return cmd
}

func newLoginSetCmd(a *app) *cobra.Command {
	cfg := &models.LoginConfig{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store email-delivery credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Login = cfg
			return a.save()
		},
	}

	cmd.Flags().StringVar(&cfg.Email, "email", "", "Sender email")
	cmd.Flags().StringVar(&cfg.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&cfg.ServiceID, "service", "", "Provider service ID")
	cmd.Flags().StringVar(&cfg.TemplateID, "template", "", "Provider template ID")
	cmd.Flags().StringVar(&cfg.PublicKey, "key", "", "Provider public key")
	return cmd
}

func newLoginShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.session.Login
			if cfg == nil {
				fmt.Println("No login config; email delivery falls back to mailto")
				return nil
			}
			fmt.Printf("Sender:     %s <%s>\n", cfg.Name, cfg.Email)
			fmt.Printf("Configured: %v\n", cfg.IsConfigured())
			return nil
		},
	}
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or set the stored theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if a.session.Theme == "" {
					fmt.Println("No theme set")
				} else {
					fmt.Println(a.session.Theme)
				}
				return nil
			}
			a.session.Theme = args[0]
			return a.save()
		},
	}
}
