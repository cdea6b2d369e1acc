package employee

import "context"

type Repository interface {
	// GetByID resolves a verified identity to a roster entry
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	// Deactivate soft-removes an employee from the roster
	Deactivate(ctx context.Context, id string) error
}
