package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const createPayment = `INSERT INTO payments (client_id, amount, currency, direction, payment_date, notes, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

type CreatePaymentParams struct {
	ClientID    int32
	Amount      decimal.Decimal
	Currency    string
	Direction   string
	PaymentDate time.Time
	Notes       string
	Status      string
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (int32, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.ClientID,
		arg.Amount,
		arg.Currency,
		arg.Direction,
		arg.PaymentDate,
		arg.Notes,
		arg.Status,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const listPayments = `SELECT p.id, p.client_id, c.name, p.amount, p.currency, p.direction, p.payment_date, p.notes, p.status
FROM payments p
JOIN clients c ON c.id = p.client_id
WHERE ($1::text = '' OR p.status = $1)
ORDER BY p.payment_date, p.id`

// ListPayments returns every payment when status is empty.
func (q *Queries) ListPayments(ctx context.Context, status string) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPayments, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		var i Payment
		if err := rows.Scan(
			&i.ID,
			&i.ClientID,
			&i.ClientName,
			&i.Amount,
			&i.Currency,
			&i.Direction,
			&i.PaymentDate,
			&i.Notes,
			&i.Status,
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
