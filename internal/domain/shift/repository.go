package shift

import "context"

// Repository defines data access for the shift catalog. The catalog is small
// and admin-owned; List returns it in its configured order, which is also the
// tie-break order for matching.
type Repository interface {
	// List returns all shift definitions in catalog order.
	List(ctx context.Context) ([]Definition, error)

	// GetByCode retrieves a single definition
	GetByCode(ctx context.Context, code string) (Definition, error)

	Create(ctx context.Context, def Definition) (Definition, error)
	Update(ctx context.Context, def Definition) error
	Delete(ctx context.Context, code string) error
}
