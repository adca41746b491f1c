package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fxdesk/internal/repository/queries"
	"fxdesk/types"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type mockClientsRepository struct {
	sqlError error
	created  *queries.CreateClientParams
}

func TestDatabase_GetClientByName(t *testing.T) {
	type args struct {
		name string
	}
	tests := []struct {
		name    string
		args    args
		want    *types.Client
		sqlErr  error
		wantErr error
	}{
		{"should throw ErrClientNotFound", args{"Acme"}, nil, pgx.ErrNoRows, ErrClientNotFound},
		{"should pass through driver errors", args{"Acme"}, nil, errors.New("conn closed"), nil},
		{"should return client", args{"Acme"}, &types.Client{Name: "Acme", Id: 1}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{
				clients: &mockClientsRepository{
					sqlError: tt.sqlErr,
				},
			}
			got, err := db.GetClientByName(context.Background(), tt.args.name)
			if tt.sqlErr != nil {
				if err == nil {
					t.Fatalf("GetClientByName() expected error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("GetClientByName() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetClientByName() unexpected error = %v", err)
			}
			if got.Name != tt.want.Name {
				t.Errorf("GetClientByName() name = %v, want %v", got, tt.want)
			}
			if got.Id != tt.want.Id {
				t.Errorf("GetClientByName() id = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatabase_CreateClient(t *testing.T) {
	tests := []struct {
		name        string
		client      types.Client
		wantErr     error
		wantProfile types.RiskProfile
	}{
		{"should reject empty name", types.Client{Name: "   "}, ErrEmptyName, ""},
		{"should default risk profile", types.Client{Name: " Acme "}, nil, types.RiskProfileModerate},
		{"should keep risk profile", types.Client{Name: "Beta", RiskProfile: types.RiskProfileHigh}, nil, types.RiskProfileHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockClientsRepository{}
			db := &Database{clients: repo}
			got, err := db.CreateClient(context.Background(), tt.client)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateClient() error = %v, wantErr %v", err, tt.wantErr)
				}
				if repo.created != nil {
					t.Errorf("CreateClient() reached the database")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateClient() unexpected error = %v", err)
			}
			if got.RiskProfile != tt.wantProfile {
				t.Errorf("CreateClient() risk profile = %v, want %v", got.RiskProfile, tt.wantProfile)
			}
			if want := strings.TrimSpace(tt.client.Name); repo.created.Name != want || got.Name != want {
				t.Errorf("CreateClient() stored name %q, returned %q, want %q", repo.created.Name, got.Name, want)
			}
		})
	}
}

func (m *mockClientsRepository) CreateClient(_ context.Context, arg queries.CreateClientParams) (queries.Client, error) {
	if m.sqlError != nil {
		return queries.Client{}, m.sqlError
	}
	m.created = &arg
	return queries.Client{
		ID:          7,
		Name:        arg.Name,
		RiskProfile: arg.RiskProfile,
		BudgetRate:  arg.BudgetRate,
		CreatedAt:   time.UnixMilli(1),
	}, nil
}

func (m *mockClientsRepository) GetClientByName(_ context.Context, name string) (queries.Client, error) {
	if m.sqlError != nil {
		return queries.Client{}, m.sqlError
	}
	curTime := time.UnixMilli(1)
	return queries.Client{
		ID:           1,
		Name:         name,
		BaseCurrency: "EUR",
		BudgetRate:   decimal.RequireFromString("4.30"),
		RiskProfile:  string(types.RiskProfileModerate),
		CreatedAt:    curTime,
	}, nil
}

func (m *mockClientsRepository) ListClients(_ context.Context) ([]queries.Client, error) {
	if m.sqlError != nil {
		return nil, m.sqlError
	}
	return []queries.Client{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Beta"}}, nil
}
