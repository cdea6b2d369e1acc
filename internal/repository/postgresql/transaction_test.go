package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/database"
)

type stubTx struct{ pgx.Tx }

func TestGetQuerierPrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))
	if got := GetQuerier(ctx, db); got != database.Querier(tx) {
		t.Errorf("expected the context transaction, got %T", got)
	}
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	if got := GetQuerier(context.Background(), db); got != database.Querier(db.Pool) {
		t.Errorf("expected the pool querier, got %T", got)
	}
}
