package quotes

import (
	"context"
	"errors"
	"fmt"

	"fxdesk/internal/pricing"
	"fxdesk/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTicketNotFound  = errors.New("ticket not in quote list")
	ErrDuplicateTicket = errors.New("ticket already in quote list")
)

type ticketStore interface {
	ListTickets(ctx context.Context) ([]types.HedgeTicket, error)
	SaveTicket(ctx context.Context, ticket types.HedgeTicket) error
	DeleteTicket(ctx context.Context, id uuid.UUID) error
	ClearTickets(ctx context.Context) error
}

// QuoteList is the ordered set of hedge tickets quoted in a session. It has a
// single writer and is not safe for concurrent mutation.
type QuoteList struct {
	engine  *pricing.Engine
	tickets []types.HedgeTicket
	store   ticketStore
}

func NewQuoteList(engine *pricing.Engine) *QuoteList {
	return &QuoteList{engine: engine}
}

// LoadQuoteList restores a list from store. Every later mutation is written
// through to the store before the in-memory list changes.
func LoadQuoteList(ctx context.Context, engine *pricing.Engine, store ticketStore) (*QuoteList, error) {
	tickets, err := store.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	return &QuoteList{engine: engine, tickets: tickets, store: store}, nil
}

func (l *QuoteList) Add(ctx context.Context, ticket types.HedgeTicket) error {
	if ticket.ID == uuid.Nil {
		return fmt.Errorf("ticket without id: %w", pricing.ErrInvalidMarketInput)
	}
	if l.indexOf(ticket.ID) >= 0 {
		return fmt.Errorf("ticket %s: %w", ticket.ID, ErrDuplicateTicket)
	}
	if l.store != nil {
		if err := l.store.SaveTicket(ctx, ticket); err != nil {
			return fmt.Errorf("save ticket %s: %w", ticket.ID, err)
		}
	}
	l.tickets = append(l.tickets, ticket)
	return nil
}

func (l *QuoteList) Remove(ctx context.Context, id uuid.UUID) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("ticket %s: %w", id, ErrTicketNotFound)
	}
	if l.store != nil {
		if err := l.store.DeleteTicket(ctx, id); err != nil {
			return fmt.Errorf("delete ticket %s: %w", id, err)
		}
	}
	l.tickets = append(l.tickets[:idx], l.tickets[idx+1:]...)
	return nil
}

func (l *QuoteList) indexOf(id uuid.UUID) int {
	for i, t := range l.tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *QuoteList) Clear(ctx context.Context) error {
	if l.store != nil {
		if err := l.store.ClearTickets(ctx); err != nil {
			return fmt.Errorf("clear tickets: %w", err)
		}
	}
	l.tickets = nil
	return nil
}

// Tickets returns a copy in insertion order.
func (l *QuoteList) Tickets() []types.HedgeTicket {
	return append([]types.HedgeTicket(nil), l.tickets...)
}

func (l *QuoteList) Len() int {
	return len(l.tickets)
}

func (l *QuoteList) Summary(spot decimal.Decimal) (types.PortfolioSummary, error) {
	return l.engine.Summary(l.tickets, spot)
}
