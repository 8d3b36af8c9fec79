package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/abhisek/moneypath/ent"
	"github.com/abhisek/moneypath/ent/chatmessage"
)

type chatRepo struct {
	client *ent.Client
}

func (r *chatRepo) Append(ctx context.Context, msg ChatMessageRecord) error {
	create := r.client.ChatMessage.Create().
		SetThreadID(msg.ThreadID).
		SetUserID(msg.UserID).
		SetRole(chatmessage.Role(msg.Role)).
		SetContent(msg.Content).
		SetFallback(msg.Fallback)
	if !msg.CreatedAt.IsZero() {
		create = create.SetCreatedAt(msg.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save chat message: %w", err)
	}
	return nil
}

func (r *chatRepo) Recent(ctx context.Context, threadID string, limit int) ([]ChatMessageRecord, error) {
	query := r.client.ChatMessage.Query().
		Where(chatmessage.ThreadID(threadID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt), ent.Desc(chatmessage.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}

	out := make([]ChatMessageRecord, len(rows))
	for i, row := range rows {
		out[i] = ChatMessageRecord{
			ThreadID:  row.ThreadID,
			UserID:    row.UserID,
			Role:      string(row.Role),
			Content:   row.Content,
			Fallback:  row.Fallback,
			CreatedAt: row.CreatedAt,
		}
	}
	slices.Reverse(out)
	return out, nil
}

func (r *chatRepo) LatestThread(ctx context.Context, userID string) (string, error) {
	row, err := r.client.ChatMessage.Query().
		Where(chatmessage.UserID(userID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt), ent.Desc(chatmessage.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("latest chat thread: %w", err)
	}
	return row.ThreadID, nil
}
