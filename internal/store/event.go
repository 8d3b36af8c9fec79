package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/moneypath/ent"
	"github.com/abhisek/moneypath/ent/analyticsevent"
)

// sequenceCounter hands out one increasing sequence shared by every event
// table, so analytics and LLM events can be ordered against each other.
// Raw SQL because ent has no atomic counter; the mutex serializes within
// the process and RETURNING makes the increment atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by ent and the sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnalytics(ctx context.Context, data AnalyticsEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnalyticsEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetName(data.Name)
	if data.Properties != nil {
		builder = builder.SetProperties(data.Properties)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save analytics event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalytics(ctx context.Context, name string, opts QueryOpts) ([]AnalyticsEventRecord, error) {
	query := r.client.AnalyticsEvent.Query().
		Order(ent.Desc(analyticsevent.FieldSequence))

	if name != "" {
		query = query.Where(analyticsevent.Name(name))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(analyticsevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(analyticsevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(analyticsevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(analyticsevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analytics events: %w", err)
	}

	records := make([]AnalyticsEventRecord, len(events))
	for i, e := range events {
		records[i] = AnalyticsEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnalyticsEventData: AnalyticsEventData{
				UserID:     e.UserID,
				Name:       e.Name,
				Properties: e.Properties,
			},
		}
	}
	return records, nil
}
