package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/borgmon/meeting-notes/pkg/models"
)

// Sort orders accepted by Sort.
const (
	SortRecent = "recent"
	SortOldest = "oldest"
	SortTitle  = "title"
	SortNotes  = "notes"
)

// titleCollator gives locale-aware title ordering, case-insensitive the
// way the browser's locale compare behaved.
var titleCollator = collate.New(language.English, collate.Loose)

// Sort returns a new stably-ordered slice; the input is left untouched.
// Unknown orders fall back to SortRecent.
func Sort(meetings []*models.Meeting, sortBy string) []*models.Meeting {
	sorted := make([]*models.Meeting, len(meetings))
	copy(sorted, meetings)

	switch sortBy {
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateTime().Before(sorted[j].DateTime())
		})
	case SortTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return titleCollator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case SortNotes:
		sort.SliceStable(sorted, func(i, j int) bool {
			return len(sorted[i].Notes) > len(sorted[j].Notes)
		})
	default: // SortRecent
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateTime().After(sorted[j].DateTime())
		})
	}
	return sorted
}
