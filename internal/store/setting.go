package store

import (
	"context"
	"fmt"

	"github.com/abhisek/moneypath/ent"
	"github.com/abhisek/moneypath/ent/setting"
)

type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.client.Setting.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	err := r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(setting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}
	return nil
}
