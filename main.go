// Package main provides the meeting-notes binary entry point: a local
// meeting-notes manager backed by a single JSON data file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/borgmon/meeting-notes/pkg/session"
	"github.com/borgmon/meeting-notes/pkg/store"
)

const appName = "meeting-notes"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the open session into every subcommand.
type app struct {
	session *session.Session
}

// save persists the session after a mutating command.
func (a *app) save() error {
	return a.session.Save()
}

func rootCmd() *cobra.Command {
	var dataPath string
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Local meeting notes manager",
		Long: `Meeting Notes keeps meetings, timestamped notes and action items,
and a staff roster in a single local data file.

Meetings can be searched, filtered and sorted, exported as plain text
or iCalendar, and imported from iCalendar files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.session = session.Open(store.OpenFileStore(dataPath))
		},
	}

	cmd.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "Data file path")

	cmd.AddCommand(
		newListCmd(a),
		newNewCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newNoteCmd(a),
		newUserCmd(a),
		newAttendCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newLoginCmd(a),
		newThemeCmd(a),
	)
	return cmd
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appName + ".json"
	}
	return filepath.Join(home, "."+appName, "data.json")
}
