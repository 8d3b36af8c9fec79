package lesson

import (
	"time"

	"github.com/abhisek/moneypath/internal/content"
	lsn "github.com/abhisek/moneypath/internal/lesson"
	"github.com/abhisek/moneypath/internal/progress"
)

// lessonLoadedMsg is sent once both the path and the lesson resolved.
// Path or Lesson is nil when the document does not exist.
type lessonLoadedMsg struct {
	Slug    string
	Path    *content.Path
	Lesson  *content.Lesson
	Record  *progress.Record
	Premium bool
	Err     error
}

// progressSavedMsg is sent when a progress write finished. Writes is
// empty for a resync after a rollback.
type progressSavedMsg struct {
	Writes []*lsn.Write
	Err    error
}

// slideTickMsg advances the page slide animation.
type slideTickMsg time.Time

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
