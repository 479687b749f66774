package implements

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "implement not found" }

type Repo interface {
	Create(ctx context.Context, implement Implement) error
	GetByID(ctx context.Context, ownerID, id string) (Implement, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]Implement, error)
	Update(ctx context.Context, implement Implement) error
	Delete(ctx context.Context, ownerID, id string) error
}
