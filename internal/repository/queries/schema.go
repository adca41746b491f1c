package queries

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var Schema string

func (q *Queries) Migrate(ctx context.Context) error {
	_, err := q.db.Exec(ctx, Schema)
	return err
}
