// Package content fetches learning paths and lessons from the CMS or a
// local bundle and exposes them as read-only trees keyed by slug.
package content

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Provider fetches content documents. A missing document is reported as
// (nil, nil) so callers can tell "not found" apart from a failure.
type Provider interface {
	FetchPath(ctx context.Context, slug string) (*Path, error)
	FetchLesson(ctx context.Context, slug string) (*Lesson, error)
}

// LoadLesson fetches a path and one of its lessons concurrently and
// returns once both have resolved. Either document may be nil.
func LoadLesson(ctx context.Context, p Provider, pathSlug, lessonSlug string) (*Path, *Lesson, error) {
	var (
		path   *Path
		lesson *Lesson
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		path, err = p.FetchPath(gctx, pathSlug)
		if err != nil {
			return fmt.Errorf("fetch path %q: %w", pathSlug, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		lesson, err = p.FetchLesson(gctx, lessonSlug)
		if err != nil {
			return fmt.Errorf("fetch lesson %q: %w", lessonSlug, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return path, lesson, nil
}
