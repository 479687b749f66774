package tractors

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "tractor not found" }

type Repo interface {
	Create(ctx context.Context, tractor Tractor) error
	GetByID(ctx context.Context, ownerID, id string) (Tractor, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]Tractor, error)
	ListAvailable(ctx context.Context, ownerID string) ([]Tractor, error)
	Update(ctx context.Context, tractor Tractor) error
	Delete(ctx context.Context, ownerID, id string) error
}
