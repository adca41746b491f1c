package queries

import (
	"context"

	"github.com/google/uuid"
)

const insertTicket = `INSERT INTO quote_tickets (id, pair, open_date, settlement_date, window_days, notional, client_rate, net_points, days_to_maturity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertTicket(ctx context.Context, arg QuoteTicket) error {
	_, err := q.db.Exec(ctx, insertTicket,
		arg.ID,
		arg.Pair,
		arg.OpenDate,
		arg.SettlementDate,
		arg.WindowDays,
		arg.Notional,
		arg.ClientRate,
		arg.NetPoints,
		arg.DaysToMaturity,
	)
	return err
}

const listTickets = `SELECT id, pair, open_date, settlement_date, window_days, notional, client_rate, net_points, days_to_maturity
FROM quote_tickets
ORDER BY seq`

func (q *Queries) ListTickets(ctx context.Context) ([]QuoteTicket, error) {
	rows, err := q.db.Query(ctx, listTickets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []QuoteTicket
	for rows.Next() {
		var i QuoteTicket
		if err := rows.Scan(
			&i.ID,
			&i.Pair,
			&i.OpenDate,
			&i.SettlementDate,
			&i.WindowDays,
			&i.Notional,
			&i.ClientRate,
			&i.NetPoints,
			&i.DaysToMaturity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteTicket = `DELETE FROM quote_tickets WHERE id = $1`

func (q *Queries) DeleteTicket(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteTicket, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteAllTickets = `DELETE FROM quote_tickets`

func (q *Queries) DeleteAllTickets(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllTickets)
	return err
}
