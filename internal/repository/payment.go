package repository

import (
	"context"
	"fmt"

	"fxdesk/internal/repository/queries"
	"fxdesk/types"
)

// CreatePayment books a payment against an existing client, looked up by name.
func (db *Database) CreatePayment(ctx context.Context, payment types.Payment) (int, error) {
	client, err := db.GetClientByName(ctx, payment.ClientName)
	if err != nil {
		return 0, err
	}
	if payment.Status == "" {
		payment.Status = types.PaymentUnpaid
	}
	id, err := db.payments.CreatePayment(ctx, queries.CreatePaymentParams{
		ClientID:    int32(client.Id),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Direction:   string(payment.Direction),
		PaymentDate: payment.PaymentDate,
		Notes:       payment.Notes,
		Status:      string(payment.Status),
	})
	if err != nil {
		return 0, fmt.Errorf("create payment for %s: %w", payment.ClientName, err)
	}
	return int(id), nil
}

func (db *Database) ListPayments(ctx context.Context) ([]types.Payment, error) {
	return db.listPayments(ctx, "")
}

func (db *Database) ListUnpaidPayments(ctx context.Context) ([]types.Payment, error) {
	return db.listPayments(ctx, string(types.PaymentUnpaid))
}

func (db *Database) listPayments(ctx context.Context, status string) ([]types.Payment, error) {
	rows, err := db.payments.ListPayments(ctx, status)
	if err != nil {
		return nil, err
	}
	return convertPayments(rows), nil
}

func convertPayments(rows []queries.Payment) []types.Payment {
	payments := make([]types.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, types.Payment{
			Id:          int(row.ID),
			ClientName:  row.ClientName,
			Amount:      row.Amount,
			Currency:    row.Currency,
			Direction:   types.Direction(row.Direction),
			PaymentDate: row.PaymentDate,
			Notes:       row.Notes,
			Status:      types.PaymentStatus(row.Status),
		})
	}
	return payments
}
