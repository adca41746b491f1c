package queries

import (
	"context"

	"github.com/shopspring/decimal"
)

const clientColumns = `id, name, base_currency, industry, email, phone, payment_terms, budget_rate, risk_profile, tags, notes, created_at`

const createClient = `INSERT INTO clients (name, base_currency, industry, email, phone, payment_terms, budget_rate, risk_profile, tags, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + clientColumns

type CreateClientParams struct {
	Name         string
	BaseCurrency string
	Industry     string
	Email        string
	Phone        string
	PaymentTerms string
	BudgetRate   decimal.Decimal
	RiskProfile  string
	Tags         string
	Notes        string
}

func scanClient(row interface{ Scan(...interface{}) error }) (Client, error) {
	var i Client
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BaseCurrency,
		&i.Industry,
		&i.Email,
		&i.Phone,
		&i.PaymentTerms,
		&i.BudgetRate,
		&i.RiskProfile,
		&i.Tags,
		&i.Notes,
		&i.CreatedAt,
	)
	return i, err
}

func (q *Queries) CreateClient(ctx context.Context, arg CreateClientParams) (Client, error) {
	row := q.db.QueryRow(ctx, createClient,
		arg.Name,
		arg.BaseCurrency,
		arg.Industry,
		arg.Email,
		arg.Phone,
		arg.PaymentTerms,
		arg.BudgetRate,
		arg.RiskProfile,
		arg.Tags,
		arg.Notes,
	)
	return scanClient(row)
}

const getClientByName = `SELECT ` + clientColumns + ` FROM clients WHERE name = $1`

func (q *Queries) GetClientByName(ctx context.Context, name string) (Client, error) {
	return scanClient(q.db.QueryRow(ctx, getClientByName, name))
}

const listClients = `SELECT ` + clientColumns + ` FROM clients ORDER BY name`

func (q *Queries) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := q.db.Query(ctx, listClients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Client
	for rows.Next() {
		i, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
