package repository

import (
	"context"
	"fmt"

	"fxdesk/internal/repository/queries"
	"fxdesk/types"

	"github.com/google/uuid"
)

func (db *Database) SaveTicket(ctx context.Context, ticket types.HedgeTicket) error {
	err := db.tickets.InsertTicket(ctx, queries.QuoteTicket{
		ID:             ticket.ID,
		Pair:           ticket.Pair,
		OpenDate:       ticket.OpenDate,
		SettlementDate: ticket.SettlementDate,
		WindowDays:     int32(ticket.WindowDays),
		Notional:       ticket.Notional,
		ClientRate:     ticket.ClientRate,
		NetPoints:      ticket.NetPoints,
		DaysToMaturity: int32(ticket.DaysToMaturity),
	})
	if err != nil {
		return fmt.Errorf("save ticket %s: %w", ticket.ID, err)
	}
	return nil
}

// ListTickets returns stored tickets in the order they were saved.
func (db *Database) ListTickets(ctx context.Context) ([]types.HedgeTicket, error) {
	rows, err := db.tickets.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	tickets := make([]types.HedgeTicket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, types.HedgeTicket{
			ID:             row.ID,
			Pair:           row.Pair,
			OpenDate:       row.OpenDate,
			SettlementDate: row.SettlementDate,
			WindowDays:     int(row.WindowDays),
			Notional:       row.Notional,
			ClientRate:     row.ClientRate,
			NetPoints:      row.NetPoints,
			DaysToMaturity: int(row.DaysToMaturity),
		})
	}
	return tickets, nil
}

func (db *Database) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	n, err := db.tickets.DeleteTicket(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("ticket %s %w", id, ErrTicketNotFound)
	}
	return nil
}

func (db *Database) ClearTickets(ctx context.Context) error {
	return db.tickets.DeleteAllTickets(ctx)
}
