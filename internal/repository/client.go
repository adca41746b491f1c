package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fxdesk/internal/repository/queries"
	"fxdesk/types"

	"github.com/jackc/pgx/v5"
)

func (db *Database) CreateClient(ctx context.Context, client types.Client) (*types.Client, error) {
	name := strings.TrimSpace(client.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if client.RiskProfile == "" {
		client.RiskProfile = types.RiskProfileModerate
	}
	row, err := db.clients.CreateClient(ctx, queries.CreateClientParams{
		Name:         name,
		BaseCurrency: client.BaseCurrency,
		Industry:     client.Industry,
		Email:        client.Email,
		Phone:        client.Phone,
		PaymentTerms: client.PaymentTerms,
		BudgetRate:   client.BudgetRate,
		RiskProfile:  string(client.RiskProfile),
		Tags:         client.Tags,
		Notes:        client.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create client %s: %w", name, err)
	}
	c := convertClient(row)
	return &c, nil
}

// GetClientByName retrieves a types.Client by its unique name.
func (db *Database) GetClientByName(ctx context.Context, name string) (*types.Client, error) {
	row, err := db.clients.GetClientByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s %w", name, ErrClientNotFound)
		}
		return nil, err
	}
	c := convertClient(row)
	return &c, nil
}

func (db *Database) ListClients(ctx context.Context) ([]types.Client, error) {
	rows, err := db.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	clients := make([]types.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, convertClient(row))
	}
	return clients, nil
}

func convertClient(row queries.Client) types.Client {
	return types.Client{
		Id:           int(row.ID),
		Name:         row.Name,
		BaseCurrency: row.BaseCurrency,
		Industry:     row.Industry,
		Email:        row.Email,
		Phone:        row.Phone,
		PaymentTerms: row.PaymentTerms,
		BudgetRate:   row.BudgetRate,
		RiskProfile:  types.RiskProfile(row.RiskProfile),
		Tags:         row.Tags,
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt,
	}
}
