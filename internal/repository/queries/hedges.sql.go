package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const createHedge = `INSERT INTO hedges (client_id, hedge_type, notional, currency, strike, maturity, premium)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

type CreateHedgeParams struct {
	ClientID  int32
	HedgeType string
	Notional  decimal.Decimal
	Currency  string
	Strike    decimal.Decimal
	Maturity  time.Time
	Premium   decimal.Decimal
}

func (q *Queries) CreateHedge(ctx context.Context, arg CreateHedgeParams) (int32, error) {
	row := q.db.QueryRow(ctx, createHedge,
		arg.ClientID,
		arg.HedgeType,
		arg.Notional,
		arg.Currency,
		arg.Strike,
		arg.Maturity,
		arg.Premium,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const listHedges = `SELECT h.id, h.client_id, c.name, h.hedge_type, h.notional, h.currency, h.strike, h.maturity, h.premium
FROM hedges h
JOIN clients c ON c.id = h.client_id
ORDER BY h.maturity, h.id`

func (q *Queries) ListHedges(ctx context.Context) ([]Hedge, error) {
	rows, err := q.db.Query(ctx, listHedges)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Hedge
	for rows.Next() {
		var i Hedge
		if err := rows.Scan(
			&i.ID,
			&i.ClientID,
			&i.ClientName,
			&i.HedgeType,
			&i.Notional,
			&i.Currency,
			&i.Strike,
			&i.Maturity,
			&i.Premium,
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
