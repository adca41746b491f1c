package repository

import (
	"context"
	"fmt"

	"fxdesk/internal/repository/queries"
	"fxdesk/types"
)

func (db *Database) CreateHedge(ctx context.Context, hedge types.Hedge) (int, error) {
	client, err := db.GetClientByName(ctx, hedge.ClientName)
	if err != nil {
		return 0, err
	}
	if hedge.HedgeType == "" {
		hedge.HedgeType = types.HedgeForward
	}
	id, err := db.hedges.CreateHedge(ctx, queries.CreateHedgeParams{
		ClientID:  int32(client.Id),
		HedgeType: string(hedge.HedgeType),
		Notional:  hedge.Notional,
		Currency:  hedge.Currency,
		Strike:    hedge.Strike,
		Maturity:  hedge.Maturity,
		Premium:   hedge.Premium,
	})
	if err != nil {
		return 0, fmt.Errorf("create hedge for %s: %w", hedge.ClientName, err)
	}
	return int(id), nil
}

func (db *Database) ListHedges(ctx context.Context) ([]types.Hedge, error) {
	rows, err := db.hedges.ListHedges(ctx)
	if err != nil {
		return nil, err
	}
	hedges := make([]types.Hedge, 0, len(rows))
	for _, row := range rows {
		hedges = append(hedges, types.Hedge{
			Id:         int(row.ID),
			ClientName: row.ClientName,
			HedgeType:  types.HedgeType(row.HedgeType),
			Notional:   row.Notional,
			Currency:   row.Currency,
			Strike:     row.Strike,
			Maturity:   row.Maturity,
			Premium:    row.Premium,
		})
	}
	return hedges, nil
}
