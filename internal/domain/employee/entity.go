package employee

import "time"

type Employee struct {
	ID        string
	FullName  string
	Position  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
