package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

// List implements shift.Repository. Catalog order is creation order, which
// is also the matcher's tie-break order.
func (s *shiftRepository) List(ctx context.Context) ([]shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, code, name, start_time, end_time, is_split_shift, break_start, break_end, created_at, updated_at
		FROM shifts
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		var def shift.Definition
		if err := rows.Scan(
			&def.ID, &def.Code, &def.Name, &def.StartTime, &def.EndTime,
			&def.IsSplitShift, &def.BreakStart, &def.BreakEnd, &def.CreatedAt, &def.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// GetByCode implements shift.Repository.
func (s *shiftRepository) GetByCode(ctx context.Context, code string) (shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, code, name, start_time, end_time, is_split_shift, break_start, break_end, created_at, updated_at
		FROM shifts
		WHERE code = $1
	`

	var def shift.Definition
	err := q.QueryRow(ctx, query, code).Scan(
		&def.ID, &def.Code, &def.Name, &def.StartTime, &def.EndTime,
		&def.IsSplitShift, &def.BreakStart, &def.BreakEnd, &def.CreatedAt, &def.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Definition{}, shift.ErrShiftNotFound
		}
		return shift.Definition{}, fmt.Errorf("failed to get shift by code: %w", err)
	}

	return def, nil
}

// Create implements shift.Repository.
func (s *shiftRepository) Create(ctx context.Context, def shift.Definition) (shift.Definition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (id, code, name, start_time, end_time, is_split_shift, break_start, break_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		def.ID, def.Code, def.Name, def.StartTime, def.EndTime,
		def.IsSplitShift, def.BreakStart, def.BreakEnd,
	).Scan(&def.ID, &def.CreatedAt, &def.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Definition{}, shift.ErrShiftCodeExists
		}
		return shift.Definition{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return def, nil
}

// Update implements shift.Repository.
func (s *shiftRepository) Update(ctx context.Context, def shift.Definition) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET code = $1, name = $2, start_time = $3, end_time = $4,
		    is_split_shift = $5, break_start = $6, break_end = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query,
		def.Code, def.Name, def.StartTime, def.EndTime,
		def.IsSplitShift, def.BreakStart, def.BreakEnd, def.ID,
	).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.Repository.
func (s *shiftRepository) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM shifts WHERE code = $1`

	commandTag, err := q.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}
