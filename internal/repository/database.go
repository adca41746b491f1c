package repository

import (
	"context"
	"errors"
	"fmt"

	"fxdesk/internal/repository/queries"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Global error declarations.
var (
	ErrClientNotFound = errors.New("client not found in datasource")
	ErrTicketNotFound = errors.New("ticket not found in datasource")
	ErrEmptyName      = errors.New("client name must not be empty")
)

type clientsRepository interface {
	CreateClient(ctx context.Context, arg queries.CreateClientParams) (queries.Client, error)
	GetClientByName(ctx context.Context, name string) (queries.Client, error)
	ListClients(ctx context.Context) ([]queries.Client, error)
}
type paymentsRepository interface {
	CreatePayment(ctx context.Context, arg queries.CreatePaymentParams) (int32, error)
	ListPayments(ctx context.Context, status string) ([]queries.Payment, error)
}
type hedgesRepository interface {
	CreateHedge(ctx context.Context, arg queries.CreateHedgeParams) (int32, error)
	ListHedges(ctx context.Context) ([]queries.Hedge, error)
}
type ticketsRepository interface {
	InsertTicket(ctx context.Context, arg queries.QuoteTicket) error
	ListTickets(ctx context.Context) ([]queries.QuoteTicket, error)
	DeleteTicket(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteAllTickets(ctx context.Context) error
}
type migrator interface {
	Migrate(ctx context.Context) error
}

// Database struct that holds the database connection and queries.
type Database struct {
	clients  clientsRepository
	payments paymentsRepository
	hedges   hedgesRepository
	tickets  ticketsRepository
	schema   migrator
	conn     *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(ctx context.Context, dbURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	q := queries.New(conn)
	return &Database{
		clients:  q,
		payments: q,
		hedges:   q,
		tickets:  q,
		schema:   q,
		conn:     conn}, nil
}

// Migrate creates the hedge-book tables when they do not exist yet.
func (db *Database) Migrate(ctx context.Context) error {
	if err := db.schema.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (db *Database) Close() {
	if db.conn != nil {
		db.conn.Close()
	}
}
