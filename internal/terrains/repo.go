package terrains

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "terrain not found" }

type Repo interface {
	Create(ctx context.Context, terrain Terrain) error
	GetByID(ctx context.Context, ownerID, id string) (Terrain, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]Terrain, error)
	Update(ctx context.Context, terrain Terrain) error
	Delete(ctx context.Context, ownerID, id string) error
}
