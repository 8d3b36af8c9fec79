package milestones

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/moneypath/internal/content"
	"github.com/abhisek/moneypath/internal/logger"
	"github.com/abhisek/moneypath/internal/store"
)

// KindLesson triggers evaluation after a lesson is completed.
const KindLesson = "lesson"

// Trigger identifies what changed. Path is the learning path the lesson
// was completed in; without it only count milestones are evaluated.
type Trigger struct {
	UserID string
	Kind   string
	ID     string
	Path   *content.Path
}

// ProgressReader is the progress capability the evaluator needs.
type ProgressReader interface {
	CompletedCount(ctx context.Context, userID string) (int, error)
	CompletedLessonIDs(ctx context.Context, userID string) ([]string, error)
}

// Config configures the Service.
type Config struct {
	// Timeout bounds a single evaluation.
	Timeout time.Duration

	// QueueSize is how many triggers may wait before new ones are dropped.
	QueueSize int

	// Silent stores and logs earned milestones without publishing them on
	// Notifications. Set it when nothing reads the channel.
	Silent bool
}

// DefaultConfig returns the default Service configuration.
func DefaultConfig() Config {
	return Config{Timeout: 10 * time.Second, QueueSize: 32}
}

// Service evaluates milestones off the caller's goroutine and publishes
// newly earned ones on Notifications.
type Service struct {
	progress ProgressReader
	repo     store.MilestoneRepo
	log      *logger.Logger
	cfg      Config

	pending chan Trigger
	earned  chan Milestone
	done    chan struct{}
}

// NewService starts the evaluation loop. Call Close to stop it.
func NewService(progress ProgressReader, repo store.MilestoneRepo, log *logger.Logger, cfg Config) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	s := &Service{
		progress: progress,
		repo:     repo,
		log:      log.With("component", "milestones"),
		cfg:      cfg,
		pending:  make(chan Trigger, cfg.QueueSize),
		earned:   make(chan Milestone, cfg.QueueSize),
		done:     make(chan struct{}),
	}
	go s.processLoop()
	return s
}

// Evaluate queues t and returns immediately. Triggers are dropped when
// the queue is full.
func (s *Service) Evaluate(_ context.Context, t Trigger) {
	select {
	case s.pending <- t:
	default:
		s.log.Warn("milestone evaluation dropped", "kind", t.Kind, "id", t.ID, "user_id", t.UserID)
	}
}

// Notifications delivers milestones as they are earned. It stays empty
// for a Silent service.
func (s *Service) Notifications() <-chan Milestone {
	return s.earned
}

// List returns the user's earned milestones, oldest first.
func (s *Service) List(ctx context.Context, userID string) ([]Milestone, error) {
	recs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Milestone, len(recs))
	for i, r := range recs {
		out[i] = Milestone{Code: r.Code, Title: r.Title, LessonID: r.TriggerLessonID, UserID: r.UserID}
	}
	return out, nil
}

// Close stops the evaluation loop and waits for it to drain. Evaluate
// must not be called after Close.
func (s *Service) Close() {
	close(s.pending)
	<-s.done
}

func (s *Service) processLoop() {
	defer close(s.done)
	for t := range s.pending {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
		earned, err := s.evaluate(ctx, t)
		cancel()
		if err != nil {
			s.log.Error("milestone evaluation failed", "kind", t.Kind, "id", t.ID, "user_id", t.UserID, "error", err)
		}
		for _, m := range earned {
			s.log.Info("milestone earned", "code", m.Code, "user_id", m.UserID)
			if s.cfg.Silent {
				continue
			}
			select {
			case s.earned <- m:
			default:
				s.log.Warn("milestone notification dropped", "code", m.Code)
			}
		}
	}
}

// evaluate awards every milestone t qualifies for and returns the ones
// that were new.
func (s *Service) evaluate(ctx context.Context, t Trigger) ([]Milestone, error) {
	if t.Kind != KindLesson {
		return nil, nil
	}

	count, err := s.progress.CompletedCount(ctx, t.UserID)
	if err != nil {
		return nil, fmt.Errorf("count completed lessons: %w", err)
	}

	var candidates []Milestone
	for _, r := range countRules {
		if count >= r.count {
			candidates = append(candidates, Milestone{Code: r.code, Title: r.title})
		}
	}

	if t.Path != nil && t.Path.LessonCount() > 0 {
		done, err := s.progress.CompletedLessonIDs(ctx, t.UserID)
		if err != nil {
			return nil, fmt.Errorf("list completed lessons: %w", err)
		}
		if pathComplete(t.Path, done) {
			candidates = append(candidates, Milestone{Code: PathCode(t.Path.Slug), Title: pathTitle(t.Path.Title)})
		}
	}

	var earned []Milestone
	for _, m := range candidates {
		m.UserID = t.UserID
		m.LessonID = t.ID
		created, err := s.repo.Award(ctx, store.MilestoneRecord{
			UserID:          m.UserID,
			Code:            m.Code,
			Title:           m.Title,
			TriggerLessonID: m.LessonID,
		})
		if err != nil {
			return earned, fmt.Errorf("award %s: %w", m.Code, err)
		}
		if created {
			earned = append(earned, m)
		}
	}
	return earned, nil
}

func pathComplete(p *content.Path, completedIDs []string) bool {
	done := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		done[id] = true
	}
	for _, l := range p.Lessons() {
		if !done[l.ID] {
			return false
		}
	}
	return true
}
